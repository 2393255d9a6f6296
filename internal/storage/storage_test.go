package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/deltahub/go-hub/pkg/testsupport"
)

func newTestBunRepository(t *testing.T) *BunRepository {
	t.Helper()

	sqlDB, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db := bun.NewDB(sqlDB, sqlitedialect.New())
	repo := NewBunRepository(db)
	if err := repo.Init(context.Background()); err != nil {
		t.Fatalf("init table: %v", err)
	}
	return repo
}

func TestRepositories(t *testing.T) {
	repos := map[string]func(t *testing.T) Repository{
		"memory": func(t *testing.T) Repository {
			return NewMemoryRepository()
		},
		"bun": func(t *testing.T) Repository {
			return newTestBunRepository(t)
		},
	}

	for name, build := range repos {
		t.Run(name, func(t *testing.T) {
			repo := build(t)
			ctx := context.Background()

			if _, err := repo.Get(ctx, "deltahub_news"); !errors.Is(err, ErrKeyNotFound) {
				t.Fatalf("expected ErrKeyNotFound, got %v", err)
			}

			if err := repo.Put(ctx, "deltahub_news", []byte(`[{"id":1}]`)); err != nil {
				t.Fatalf("put: %v", err)
			}
			if err := repo.Put(ctx, "deltahub_workshops", []byte(`[]`)); err != nil {
				t.Fatalf("put: %v", err)
			}

			data, err := repo.Get(ctx, "deltahub_news")
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if string(data) != `[{"id":1}]` {
				t.Fatalf("unexpected payload: %s", data)
			}

			if err := repo.Put(ctx, "deltahub_news", []byte(`[{"id":2}]`)); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			data, err = repo.Get(ctx, "deltahub_news")
			if err != nil {
				t.Fatalf("get after overwrite: %v", err)
			}
			if string(data) != `[{"id":2}]` {
				t.Fatalf("overwrite not applied: %s", data)
			}

			keys, err := repo.Keys(ctx)
			if err != nil {
				t.Fatalf("keys: %v", err)
			}
			if len(keys) != 2 || keys[0] != "deltahub_news" || keys[1] != "deltahub_workshops" {
				t.Fatalf("unexpected keys: %v", keys)
			}

			if err := repo.Delete(ctx, "deltahub_news"); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if _, err := repo.Get(ctx, "deltahub_news"); !errors.Is(err, ErrKeyNotFound) {
				t.Fatalf("expected ErrKeyNotFound after delete, got %v", err)
			}

			// deleting a missing key is not an error
			if err := repo.Delete(ctx, "deltahub_missing"); err != nil {
				t.Fatalf("delete missing: %v", err)
			}
		})
	}
}

func TestMemoryRepositoryCopiesData(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	payload := []byte(`[1,2,3]`)
	if err := repo.Put(ctx, "deltahub_measurements", payload); err != nil {
		t.Fatalf("put: %v", err)
	}
	payload[1] = 'x'

	data, err := repo.Get(ctx, "deltahub_measurements")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(data) != `[1,2,3]` {
		t.Fatalf("stored payload mutated: %s", data)
	}

	data[0] = 'x'
	again, err := repo.Get(ctx, "deltahub_measurements")
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if string(again) != `[1,2,3]` {
		t.Fatalf("returned payload aliased storage: %s", again)
	}
}
