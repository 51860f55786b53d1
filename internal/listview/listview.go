// Package listview implements the filterable, paginated collection pattern
// shared by every list screen: inventory, suppliers, purchase orders and
// shipments all present a store-filtered slice of one entity kind.
package listview

import "strings"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Query is the full client-driven query state for one collection: 0-based
// page index, page size, free-text search and categorical filters.
type Query struct {
	Page     int
	PageSize int
	Search   string
	Filters  map[string]string
}

// Filter returns the value for a categorical filter key, or "".
func (q Query) Filter(key string) string {
	if q.Filters == nil {
		return ""
	}
	return q.Filters[key]
}

// Normalize clamps page and page size into valid ranges.
func (q Query) Normalize() Query {
	if q.PageSize <= 0 || q.PageSize > MaxPageSize {
		q.PageSize = DefaultPageSize
	}
	if q.Page < 0 {
		q.Page = 0
	}
	return q
}

// MatchSearch reports whether any of the given fields contains the query's
// search term, case-insensitively. An empty term matches everything.
func (q Query) MatchSearch(fields ...string) bool {
	term := strings.ToLower(strings.TrimSpace(q.Search))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Page is one slice of a filtered collection plus the total count across all
// pages, so callers can render page controls.
type Page[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

// Paginate slices an already-filtered collection down to the requested page.
// Filtering must happen before this call so that the result is exactly
// "apply filters, then slice".
func Paginate[T any](items []T, q Query) Page[T] {
	q = q.Normalize()

	start := q.Page * q.PageSize
	end := start + q.PageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return Page[T]{
		Items:    out,
		Total:    len(items),
		Page:     q.Page,
		PageSize: q.PageSize,
	}
}
