package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/storage"
	"github.com/jackc/pgx/v5"
)

const createKVStore = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

type blobStoreImpl struct {
	db *database.DB
}

// NewBlobStore returns a storage.BlobStore backed by the kv_store table,
// creating the table when it does not exist.
func NewBlobStore(ctx context.Context, db *database.DB) (storage.BlobStore, error) {
	if _, err := db.Exec(ctx, createKVStore); err != nil {
		return nil, fmt.Errorf("create kv_store: %w", err)
	}
	return &blobStoreImpl{db: db}, nil
}

func (r *blobStoreImpl) Get(ctx context.Context, key string) ([]byte, error) {
	q := GetQuerier(ctx, r.db)

	var value []byte
	err := q.QueryRow(ctx, `SELECT value::text FROM kv_store WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return value, nil
}

func (r *blobStoreImpl) Put(ctx context.Context, key string, value []byte) error {
	return r.put(ctx, GetQuerier(ctx, r.db), key, value)
}

func (r *blobStoreImpl) PutAll(ctx context.Context, entries map[string][]byte) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for key, value := range entries {
			if err := r.put(ctx, tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *blobStoreImpl) Close() error {
	r.db.Close()
	return nil
}

func (r *blobStoreImpl) put(ctx context.Context, q database.Querier, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`
	if _, err := q.Exec(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}
