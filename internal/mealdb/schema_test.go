package mealdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/platter/internal/catalog"
)

func TestSchemaDecode(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		want      []catalog.Item
		malformed bool
	}{
		{
			name: "two records in server order",
			body: `{"meals":[{"idMeal":"2","strMeal":"B","strMealThumb":"b"},{"idMeal":"1","strMeal":"A","strMealThumb":"a"}]}`,
			want: []catalog.Item{{ID: "2", DisplayName: "B", ImageURL: "b"}, {ID: "1", DisplayName: "A", ImageURL: "a"}},
		},
		{name: "null list", body: `{"meals":null}`, want: []catalog.Item{}},
		{name: "absent list", body: `{"other":1}`, want: []catalog.Item{}},
		{name: "empty list", body: `{"meals":[]}`, want: []catalog.Item{}},
		{
			name: "extra keys are ignored",
			body: `{"meals":[{"idMeal":"7","strMeal":"C","strMealThumb":"c","strArea":"Thai"}]}`,
			want: []catalog.Item{{ID: "7", DisplayName: "C", ImageURL: "c"}},
		},
		{name: "invalid json", body: `{"meals":[`, malformed: true},
		{name: "top level array", body: `[]`, malformed: true},
		{name: "top level null", body: `null`, malformed: true},
		{name: "list is object", body: `{"meals":{"idMeal":"1"}}`, malformed: true},
		{name: "record is scalar", body: `{"meals":[1]}`, malformed: true},
		{name: "record is null", body: `{"meals":[null]}`, malformed: true},
		{name: "missing field", body: `{"meals":[{"idMeal":"1","strMeal":"A"}]}`, malformed: true},
		{name: "null field", body: `{"meals":[{"idMeal":"1","strMeal":null,"strMealThumb":"a"}]}`, malformed: true},
		{name: "numeric id", body: `{"meals":[{"idMeal":1,"strMeal":"A","strMealThumb":"a"}]}`, malformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DefaultSchema.Decode([]byte(tt.body))
			if tt.malformed {
				require.Error(t, err)
				assert.Equal(t, catalog.KindMalformed, catalog.KindOf(err), "err = %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchemaDecode_CustomKeys(t *testing.T) {
	s := Schema{ListKey: "drinks", IDField: "idDrink", NameField: "strDrink", ImageField: "strDrinkThumb"}
	got, err := s.Decode([]byte(`{"drinks":[{"idDrink":"11007","strDrink":"Margarita","strDrinkThumb":"m"}]}`))
	require.NoError(t, err)
	assert.Equal(t, []catalog.Item{{ID: "11007", DisplayName: "Margarita", ImageURL: "m"}}, got)

	// Blank fields fall back to the MealDB defaults.
	got, err = Schema{ListKey: " "}.Decode([]byte(`{"meals":[{"idMeal":"1","strMeal":"A","strMealThumb":"a"}]}`))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
