package mealdb

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/five82/platter/internal/catalog"
)

// Schema names the JSON keys used to locate and map records. The upstream
// API wraps its array under ListKey; each record exposes three string keys.
type Schema struct {
	ListKey    string
	IDField    string
	NameField  string
	ImageField string
}

// DefaultSchema matches TheMealDB's filter and search endpoints.
var DefaultSchema = Schema{
	ListKey:    "meals",
	IDField:    "idMeal",
	NameField:  "strMeal",
	ImageField: "strMealThumb",
}

func (s Schema) withDefaults() Schema {
	if strings.TrimSpace(s.ListKey) == "" {
		s.ListKey = DefaultSchema.ListKey
	}
	if strings.TrimSpace(s.IDField) == "" {
		s.IDField = DefaultSchema.IDField
	}
	if strings.TrimSpace(s.NameField) == "" {
		s.NameField = DefaultSchema.NameField
	}
	if strings.TrimSpace(s.ImageField) == "" {
		s.ImageField = DefaultSchema.ImageField
	}
	return s
}

// Decode maps a response body to items. A missing or null list key decodes
// to zero items. Records must be objects carrying all three keys as strings.
func (s Schema) Decode(body []byte) ([]catalog.Item, error) {
	s = s.withDefaults()

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &catalog.MalformedResponseError{Err: err}
	}
	if envelope == nil {
		// Body was the literal null.
		return nil, &catalog.MalformedResponseError{Reason: "top level is not an object"}
	}

	raw, ok := envelope[s.ListKey]
	if !ok || isNull(raw) {
		return []catalog.Item{}, nil
	}

	var records []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, &catalog.MalformedResponseError{Reason: fmt.Sprintf("%q is not an array of objects", s.ListKey), Err: err}
	}

	items := make([]catalog.Item, 0, len(records))
	for i, record := range records {
		if record == nil {
			return nil, &catalog.MalformedResponseError{Reason: fmt.Sprintf("%s[%d] is null", s.ListKey, i)}
		}
		var item catalog.Item
		fields := []struct {
			key  string
			dest *string
		}{
			{s.IDField, &item.ID},
			{s.NameField, &item.DisplayName},
			{s.ImageField, &item.ImageURL},
		}
		for _, f := range fields {
			value, ok := record[f.key]
			if !ok || isNull(value) {
				return nil, &catalog.MalformedResponseError{Reason: fmt.Sprintf("%s[%d] missing %q", s.ListKey, i, f.key)}
			}
			if err := json.Unmarshal(value, f.dest); err != nil {
				return nil, &catalog.MalformedResponseError{Reason: fmt.Sprintf("%s[%d].%s is not a string", s.ListKey, i, f.key), Err: err}
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}
