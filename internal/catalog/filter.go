package catalog

import "strings"

// Filter returns the items whose DisplayName contains query, ignoring case.
// Order is preserved. An empty query returns a copy of every item; a query
// that matches nothing returns an empty, non-nil slice.
func Filter(items []Item, query string) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if Matches(item, query) {
			out = append(out, item)
		}
	}
	return out
}

// Matches reports whether item passes the filter for query.
func Matches(item Item, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(fold(item.DisplayName), fold(query))
}

// fold lower-cases s for comparison. strings.ToLower handles Unicode, which
// is enough for substring matching on display names.
func fold(s string) string {
	return strings.ToLower(s)
}
