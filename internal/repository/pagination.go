package repository

import "github.com/maxviazov/series-catalog-service/internal/pagination"

// Page represents a limit/offset window for listing operations.
type Page struct {
	Limit  int
	Offset int
}

// PageFor converts a validated page request into a storage window.
func PageFor(req pagination.Request) Page {
	return Page{Limit: req.Limit(), Offset: req.Offset()}
}
