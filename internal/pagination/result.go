// Package pagination packages one page of query results together with the
// counters a client needs to navigate the rest of the result set.
package pagination

import "encoding/json"

// DefaultPageSize applies when the caller does not supply a page size.
const DefaultPageSize = 10

// Parameter names used in ValidationError.Field.
const (
	FieldPageResults      = "pageResults"
	FieldCurrentPage      = "currentPage"
	FieldTotalResultCount = "totalResultCount"
	FieldPageSize         = "pageSize"
)

// Result is an immutable page of items. Build it with New or Build; the zero
// value is not a valid page.
type Result[T any] struct {
	pageResults      []T
	currentPage      int
	totalResultCount int
	pageSize         int
	totalPageCount   int
}

type options struct {
	pageSize *int
}

// Option customises New.
type Option func(*options)

// WithPageSize sets the page size. It must be positive.
func WithPageSize(n int) Option {
	return func(o *options) { o.pageSize = &n }
}

// New validates the inputs and derives the total page count.
// Checks run in a fixed order and the first failure is returned:
// pageResults, currentPage, totalResultCount (range, then consistency), pageSize.
func New[T any](pageResults []T, currentPage, totalResultCount int, opts ...Option) (Result[T], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if pageResults == nil {
		return Result[T]{}, invalid(FieldPageResults)
	}
	if !isPositiveInteger(currentPage, false) {
		return Result[T]{}, invalid(FieldCurrentPage)
	}
	if !isPositiveInteger(totalResultCount, true) {
		return Result[T]{}, invalid(FieldTotalResultCount)
	}
	if totalResultCount < len(pageResults) {
		return Result[T]{}, inconsistent(totalResultCount, len(pageResults))
	}

	pageSize := DefaultPageSize
	if o.pageSize != nil {
		pageSize = *o.pageSize
	}
	if !isPositiveInteger(pageSize, false) {
		return Result[T]{}, invalid(FieldPageSize)
	}

	return Result[T]{
		pageResults:      pageResults,
		currentPage:      currentPage,
		totalResultCount: totalResultCount,
		pageSize:         pageSize,
		totalPageCount:   totalPageCount(totalResultCount, pageSize),
	}, nil
}

func totalPageCount(total, size int) int {
	if total == 0 {
		return 1
	}
	return (total + size - 1) / size
}

func isPositiveInteger(n int, allowZero bool) bool {
	if allowZero {
		return n >= 0
	}
	return n > 0
}

// PageResults returns the items on this page. The slice is shared with the
// caller that built the result and must not be modified.
func (r Result[T]) PageResults() []T      { return r.pageResults }
func (r Result[T]) CurrentPage() int      { return r.currentPage }
func (r Result[T]) TotalResultCount() int { return r.totalResultCount }
func (r Result[T]) PageSize() int         { return r.pageSize }
func (r Result[T]) TotalPageCount() int   { return r.totalPageCount }

// HasNext reports whether a page after the current one exists.
func (r Result[T]) HasNext() bool { return r.currentPage < r.totalPageCount }

// HasPrevious reports whether the current page is past the first one.
func (r Result[T]) HasPrevious() bool { return r.currentPage > 1 }

type resultJSON[T any] struct {
	PageResults      []T  `json:"page_results"`
	CurrentPage      int  `json:"current_page"`
	TotalResultCount int  `json:"total_result_count"`
	PageSize         int  `json:"page_size"`
	TotalPageCount   int  `json:"total_page_count"`
	HasNext          bool `json:"has_next"`
	HasPrevious      bool `json:"has_previous"`
}

// MarshalJSON exposes the five fields plus the navigation flags under snake_case keys.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON[T]{
		PageResults:      r.pageResults,
		CurrentPage:      r.currentPage,
		TotalResultCount: r.totalResultCount,
		PageSize:         r.pageSize,
		TotalPageCount:   r.totalPageCount,
		HasNext:          r.HasNext(),
		HasPrevious:      r.HasPrevious(),
	})
}
