package catalog

// Item is one catalog record as returned by the upstream API.
type Item struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	ImageURL    string `json:"imageUrl"`
}

// Clone returns an independent copy of items. A nil or empty input yields nil.
func Clone(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
