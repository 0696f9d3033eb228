package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/series-catalog-service/internal/model"
	"github.com/maxviazov/series-catalog-service/internal/repository"
)

type seriesRepository struct{ pool *pgxpool.Pool }

func NewSeriesRepository(pool *pgxpool.Pool) repository.SeriesRepository {
	return &seriesRepository{pool: pool}
}

const seriesColumns = `id, title, genre, release_year, seasons, created_at, updated_at`

func scanSeries(row pgx.Row) (model.Series, error) {
	var s model.Series
	err := row.Scan(&s.ID, &s.Title, &s.Genre, &s.ReleaseYear, &s.Seasons, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *seriesRepository) Create(ctx context.Context, s model.Series) (model.Series, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Series{}, err
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO series (title, genre, release_year, seasons) VALUES ($1, $2, $3, $4)
		 RETURNING `+seriesColumns,
		s.Title, s.Genre, s.ReleaseYear, s.Seasons,
	)
	out, err := scanSeries(row)
	if err != nil {
		return model.Series{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *seriesRepository) GetByID(ctx context.Context, id int64) (model.Series, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Series{}, err
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`SELECT `+seriesColumns+` FROM series WHERE id = $1`, id,
	)
	out, err := scanSeries(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Series{}, repository.ErrNotFound
		}
		return model.Series{}, repository.MapPgError(err)
	}
	return out, nil
}

// List never returns a nil slice, even for windows past the last row.
func (r *seriesRepository) List(ctx context.Context, f model.SeriesFilter, p repository.Page) ([]model.Series, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	rows, err := getQ(ctx, r.pool).Query(ctx,
		`SELECT `+seriesColumns+`
		 FROM series
		 WHERE ($1::text = '' OR genre = $1)
		 ORDER BY id
		 LIMIT $2 OFFSET $3`,
		f.Genre, p.Limit, p.Offset,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	out := make([]model.Series, 0, p.Limit)
	for rows.Next() {
		s, err := scanSeries(rows)
		if err != nil {
			return nil, repository.MapPgError(err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return out, nil
}

func (r *seriesRepository) Count(ctx context.Context, f model.SeriesFilter) (int, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	var total int
	err := getQ(ctx, r.pool).QueryRow(ctx,
		`SELECT COUNT(*) FROM series WHERE ($1::text = '' OR genre = $1)`, f.Genre,
	).Scan(&total)
	if err != nil {
		return 0, repository.MapPgError(err)
	}
	return total, nil
}

var _ repository.SeriesRepository = (*seriesRepository)(nil)
