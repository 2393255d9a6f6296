package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"
)

// CollectionRecord is the persisted row backing one collection payload.
type CollectionRecord struct {
	bun.BaseModel `bun:"table:hub_collections,alias:hc"`

	Key       string    `bun:"key,pk"`
	Data      []byte    `bun:"data,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

type BunRepository struct {
	db  *bun.DB
	now func() time.Time
}

// NewBunRepository constructs a repository backed by a bun database handle.
// Call Init before use to ensure the table exists.
func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{
		db:  db,
		now: time.Now,
	}
}

// Init creates the backing table when it does not exist yet.
func (r *BunRepository) Init(ctx context.Context) error {
	_, err := r.db.NewCreateTable().
		Model((*CollectionRecord)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

func (r *BunRepository) Get(ctx context.Context, key string) ([]byte, error) {
	record := new(CollectionRecord)
	err := r.db.NewSelect().
		Model(record).
		Where("hc.key = ?", key).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return append([]byte(nil), record.Data...), nil
}

func (r *BunRepository) Put(ctx context.Context, key string, data []byte) error {
	record := &CollectionRecord{
		Key:       key,
		Data:      append([]byte(nil), data...),
		UpdatedAt: r.now().UTC(),
	}
	_, err := r.db.NewInsert().
		Model(record).
		On("CONFLICT (key) DO UPDATE").
		Set("data = EXCLUDED.data").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

func (r *BunRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.NewDelete().
		Model((*CollectionRecord)(nil)).
		Where("hc.key = ?", key).
		Exec(ctx)
	return err
}

func (r *BunRepository) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := r.db.NewSelect().
		Model((*CollectionRecord)(nil)).
		Column("key").
		Order("key ASC").
		Scan(ctx, &keys)
	if err != nil {
		return nil, err
	}
	return keys, nil
}

var _ Repository = (*BunRepository)(nil)
