package pagination

import "math"

// Request is a validated page request ready to be turned into a storage query.
type Request struct {
	Page     int
	PageSize int
}

// ParseRequest parses query-string page parameters. Empty strings take the
// defaults (page 1, defaultSize); anything else must be a positive integer.
func ParseRequest(page, pageSize string, defaultSize int) (Request, error) {
	req := Request{Page: 1, PageSize: defaultSize}
	if req.PageSize <= 0 {
		req.PageSize = DefaultPageSize
	}

	if page != "" {
		n, ok := coerceInt(page)
		if !ok || !isPositiveInteger(n, false) {
			return Request{}, invalid(FieldCurrentPage)
		}
		req.Page = n
	}
	if pageSize != "" {
		n, ok := coerceInt(pageSize)
		if !ok || !isPositiveInteger(n, false) {
			return Request{}, invalid(FieldPageSize)
		}
		req.PageSize = n
	}
	if req.Page-1 > math.MaxInt/req.PageSize {
		return Request{}, invalid(FieldCurrentPage)
	}
	return req, nil
}

// Limit is the maximum number of rows to fetch.
func (r Request) Limit() int { return r.PageSize }

// Offset is the number of rows to skip before the page starts.
func (r Request) Offset() int { return (r.Page - 1) * r.PageSize }
