package repository

import (
	"context"

	"github.com/maxviazov/series-catalog-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
// WithinSnapshot runs fn in a read-only repeatable-read transaction, so a page
// query and its count query observe the same rows.
type TxManager interface {
	WithinSnapshot(ctx context.Context, fn TxFunc) error
}

// SeriesRepository declares persistence operations for series.
// Implementations surface domain errors from errors.go rather than driver codes.
type SeriesRepository interface {
	Create(ctx context.Context, s model.Series) (model.Series, error)
	GetByID(ctx context.Context, id int64) (model.Series, error)
	// List returns one window of series ordered by id. A window past the last
	// row is empty; implementations may return it as nil.
	List(ctx context.Context, f model.SeriesFilter, p Page) ([]model.Series, error)
	Count(ctx context.Context, f model.SeriesFilter) (int, error)
}
