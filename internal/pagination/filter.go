package pagination

import "strings"

// Named is implemented by anything that can be filtered by name.
// Implementations must tolerate a nil receiver and return "" for a missing name.
type Named interface {
	FilterName() string
}

// Filter returns the items whose lower-cased name contains the lower-cased query.
// An empty query keeps every item. Relative order is preserved and the input is not modified.
func Filter[T Named](items []T, query string) []T {
	if query == "" {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}

	q := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.FilterName()), q) {
			out = append(out, item)
		}
	}
	return out
}
