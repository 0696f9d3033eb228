// Package contract holds behaviour suites every SeriesRepository implementation must pass.
package contract

import (
	"context"
	"fmt"
	"testing"

	"github.com/maxviazov/series-catalog-service/internal/model"
	"github.com/maxviazov/series-catalog-service/internal/repository"
)

type SeriesFactory func(t *testing.T) (repository.SeriesRepository, func())

type SnapshotFactory func(t *testing.T) (tx repository.TxManager, series repository.SeriesRepository, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

func seed(t *testing.T, repo repository.SeriesRepository, n int, genre string) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := repo.Create(context.Background(), model.Series{
			Title:       fmt.Sprintf("%s-%02d", genre, i),
			Genre:       genre,
			ReleaseYear: 2000 + i,
			Seasons:     1,
		})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func RunSeriesRepositoryContract(t *testing.T, makeRepo SeriesFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, model.Series{Title: "Dark", Genre: "sci-fi", ReleaseYear: 2017, Seasons: 3})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.ID != created.ID || got.Title != "Dark" || got.Seasons != 3 {
			t.Fatalf("mismatch: %+v", got)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), 999999)
		if err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("duplicate_title_year", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		s := model.Series{Title: "Dark", Genre: "sci-fi", ReleaseYear: 2017, Seasons: 3}
		if _, err := repo.Create(ctx, s); err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, err := repo.Create(ctx, s); err != repository.ErrAlreadyExists {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("list_window_and_count", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		seed(t, repo, 7, "drama")
		seed(t, repo, 2, "comedy")

		items, err := repo.List(ctx, model.SeriesFilter{}, repository.Page{Limit: 3, Offset: 3})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(items) != 3 {
			t.Fatalf("unexpected window: len=%d", len(items))
		}
		total, err := repo.Count(ctx, model.SeriesFilter{})
		if err != nil || total != 9 {
			t.Fatalf("count: total=%d err=%v", total, err)
		}
		comedies, err := repo.Count(ctx, model.SeriesFilter{Genre: "comedy"})
		if err != nil || comedies != 2 {
			t.Fatalf("filtered count: total=%d err=%v", comedies, err)
		}
	})

	t.Run("list_past_end_is_empty_not_nil", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		seed(t, repo, 2, "drama")
		items, err := repo.List(context.Background(), model.SeriesFilter{}, repository.Page{Limit: 10, Offset: 50})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if items == nil || len(items) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", items)
		}
	})
}

func RunSnapshotContract(t *testing.T, makeTx SnapshotFactory) {
	t.Helper()

	t.Run("reads_inside_snapshot", func(t *testing.T) {
		tx, repo, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		seed(t, repo, 4, "drama")

		var items []model.Series
		var total int
		err := tx.WithinSnapshot(context.Background(), func(ctx context.Context) error {
			var err error
			if items, err = repo.List(ctx, model.SeriesFilter{}, repository.Page{Limit: 2}); err != nil {
				return err
			}
			total, err = repo.Count(ctx, model.SeriesFilter{})
			return err
		})
		if err != nil {
			t.Fatalf("snapshot: %v", err)
		}
		if len(items) != 2 || total != 4 {
			t.Fatalf("unexpected: len=%d total=%d", len(items), total)
		}
	})

	t.Run("writes_rejected", func(t *testing.T) {
		tx, repo, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		err := tx.WithinSnapshot(context.Background(), func(ctx context.Context) error {
			_, err := repo.Create(ctx, model.Series{Title: "X", Genre: "drama", ReleaseYear: 2020, Seasons: 1})
			return err
		})
		if err == nil {
			t.Fatalf("expected read-only transaction to reject insert")
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	p, cleanup := makePinger(t)
	t.Cleanup(cleanup)
	if err := p.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
