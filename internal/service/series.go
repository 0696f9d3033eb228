package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/maxviazov/series-catalog-service/internal/model"
	"github.com/maxviazov/series-catalog-service/internal/pagination"
	"github.com/maxviazov/series-catalog-service/internal/repository"
	"github.com/rs/zerolog"
)

// seriesService holds series use-case logic: validation + orchestration, no transport / SQL details.
type seriesService struct {
	repo        repository.SeriesRepository
	tx          repository.TxManager
	validate    *validator.Validate
	maxPageSize int
	log         zerolog.Logger
}

// NewSeriesService wires the series use cases. maxPageSize <= 0 disables the upper bound.
func NewSeriesService(repo repository.SeriesRepository, tx repository.TxManager, maxPageSize int, logger zerolog.Logger) SeriesService {
	l := logger.With().Str("module", "service").Str("component", "series").Logger()
	return &seriesService{
		repo:        repo,
		tx:          tx,
		validate:    newValidator(),
		maxPageSize: maxPageSize,
		log:         l,
	}
}

func (s *seriesService) CreateSeries(ctx context.Context, in CreateSeriesInput) (model.Series, error) {
	start := time.Now()
	in.Title = strings.TrimSpace(in.Title)
	in.Genre = normalizeGenre(in.Genre)

	if err := s.validate.Struct(in); err != nil {
		ferrs := fieldErrors(err)
		s.log.Debug().Interface("field_errors", ferrs).Msg("series validation failed")
		return model.Series{}, newInvalidInput(ferrs)
	}

	out, err := s.repo.Create(ctx, model.Series{
		Title:       in.Title,
		Genre:       in.Genre,
		ReleaseYear: in.ReleaseYear,
		Seasons:     in.Seasons,
	})
	if err != nil {
		// Repository surfaces domain-level errors already, do not wrap.
		s.log.Error().Err(err).Str("title", in.Title).Msg("create series failed")
		return model.Series{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("series_id", out.ID).Msg("series created")
	return out, nil
}

func (s *seriesService) GetSeries(ctx context.Context, id int64) (model.Series, error) {
	if id <= 0 {
		return model.Series{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.repo.GetByID(ctx, id)
}

// ListSeries fetches one page and its total inside a single snapshot and
// packages them as a pagination.Result.
func (s *seriesService) ListSeries(ctx context.Context, f model.SeriesFilter, req pagination.Request) (pagination.Result[model.Series], error) {
	var ferrs []FieldError
	if req.Page < 1 {
		ferrs = append(ferrs, FieldError{Field: "page", Message: "must be >= 1"})
	}
	if req.PageSize < 1 {
		ferrs = append(ferrs, FieldError{Field: "page_size", Message: "must be >= 1"})
	} else if s.maxPageSize > 0 && req.PageSize > s.maxPageSize {
		ferrs = append(ferrs, FieldError{Field: "page_size", Message: "must be <= " + strconv.Itoa(s.maxPageSize)})
	}
	if f.Genre != "" {
		if !IsValidGenre(f.Genre) {
			ferrs = append(ferrs, FieldError{Field: "genre", Message: "unknown genre"})
		}
		f.Genre = normalizeGenre(f.Genre)
	}
	if err := newInvalidInput(ferrs); err != nil {
		return pagination.Result[model.Series]{}, err
	}

	var (
		items []model.Series
		total int
	)
	err := s.tx.WithinSnapshot(ctx, func(ctx context.Context) error {
		var err error
		if items, err = s.repo.List(ctx, f, repository.PageFor(req)); err != nil {
			return err
		}
		total, err = s.repo.Count(ctx, f)
		return err
	})
	if err != nil {
		s.log.Error().Err(err).Int("page", req.Page).Int("page_size", req.PageSize).Msg("list series failed")
		return pagination.Result[model.Series]{}, err
	}

	if items == nil {
		items = []model.Series{}
	}
	res, err := pagination.New(items, req.Page, total, pagination.WithPageSize(req.PageSize))
	if err != nil {
		// storage returned more rows than it counted; %v keeps this a 500
		s.log.Error().Err(err).Int("rows", len(items)).Int("total", total).Msg("inconsistent page")
		return pagination.Result[model.Series]{}, fmt.Errorf("list series: %v", err)
	}
	return res, nil
}
