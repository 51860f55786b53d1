package listview

import (
	"context"
	"sync"
)

// Fetcher loads one page of a collection for the given query.
type Fetcher[T any] func(ctx context.Context, q Query) (Page[T], error)

// View is a stateful controller for one collection: it owns the query state,
// fetches pages through a Fetcher, and keeps the displayed page consistent
// under rapid query changes.
//
// Changing any filter or the search term resets the page index to 0, and
// every query change bumps a generation counter: a fetch that completes for
// a stale generation is discarded, so a slow earlier request can never
// overwrite the result of a newer one. A failed fetch keeps the last good
// page visible and exposes the error instead.
type View[T any] struct {
	mu       sync.Mutex
	fetch    Fetcher[T]
	query    Query
	gen      uint64
	inflight int
	page     Page[T]
	err      error
}

func NewView[T any](fetch Fetcher[T]) *View[T] {
	return &View[T]{
		fetch: fetch,
		query: Query{PageSize: DefaultPageSize, Filters: map[string]string{}},
	}
}

// SetSearch updates the search term and resets the page index to 0.
func (v *View[T]) SetSearch(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.query.Search = term
	v.query.Page = 0
	v.gen++
}

// SetFilter updates one categorical filter and resets the page index to 0.
// An empty value clears the filter.
func (v *View[T]) SetFilter(key, value string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if value == "" {
		delete(v.query.Filters, key)
	} else {
		v.query.Filters[key] = value
	}
	v.query.Page = 0
	v.gen++
}

// SetPage moves to another page without touching filters.
func (v *View[T]) SetPage(index int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if index < 0 {
		index = 0
	}
	v.query.Page = index
	v.gen++
}

// SetPageSize changes the page size and resets the page index to 0, since
// the old index may be out of range under the new size.
func (v *View[T]) SetPageSize(size int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.query.PageSize = size
	v.query.Page = 0
	v.gen++
}

// Fetch loads the page for the current query state. If the query changes
// while the fetch is in flight, the response is discarded (last request
// wins). On error the previously displayed page stays visible.
func (v *View[T]) Fetch(ctx context.Context) error {
	v.mu.Lock()
	q := v.query.Normalize()
	// Snapshot the filters so the fetcher never sees later mutations.
	q.Filters = cloneFilters(v.query.Filters)
	gen := v.gen
	v.inflight++
	v.mu.Unlock()

	page, err := v.fetch(ctx, q)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.inflight--

	if gen != v.gen {
		// Stale response for an old query; a newer fetch owns the view now.
		return nil
	}
	if err != nil {
		v.err = err
		return err
	}
	v.page = page
	v.err = nil
	return nil
}

// Query returns a copy of the current query state.
func (v *View[T]) Query() Query {
	v.mu.Lock()
	defer v.mu.Unlock()
	q := v.query
	q.Filters = cloneFilters(v.query.Filters)
	return q
}

// Items returns the currently displayed page's items.
func (v *View[T]) Items() []T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page.Items
}

// Total returns the filtered total across all pages.
func (v *View[T]) Total() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page.Total
}

func (v *View[T]) TotalPages() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page.TotalPages()
}

// Loading reports whether a fetch is in flight.
func (v *View[T]) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.inflight > 0
}

// Err returns the error from the most recent completed fetch, if it failed.
func (v *View[T]) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

func cloneFilters(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, val := range in {
		out[k] = val
	}
	return out
}
