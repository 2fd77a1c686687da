package repositories

import "strings"

// parseSort splits a "field" or "field,desc" sort expression into the
// field name and a descending flag.
func parseSort(sort string) (field string, desc bool) {
	field, dir, found := strings.Cut(sort, ",")
	field = strings.TrimSpace(field)
	if found && strings.EqualFold(strings.TrimSpace(dir), "desc") {
		desc = true
	}
	return field, desc
}

// pageSlice returns the zero-based page [page*size, page*size+size) of
// items. Out-of-range pages yield an empty slice, not an error.
func pageSlice[T any](items []T, page, size int) []T {
	if page < 0 || size <= 0 {
		return []T{}
	}
	start := page * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
