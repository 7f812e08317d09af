package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/storage"
)

const createKVStore = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)
`

const upsertKV = `
	INSERT INTO kv_store (key, value, updated_at)
	VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT (key) DO UPDATE
	SET value = excluded.value, updated_at = excluded.updated_at
`

type blobStoreImpl struct {
	db *sql.DB
}

// NewBlobStore returns a storage.BlobStore backed by a kv_store table in db.
func NewBlobStore(ctx context.Context, db *sql.DB) (storage.BlobStore, error) {
	if _, err := db.ExecContext(ctx, createKVStore); err != nil {
		return nil, fmt.Errorf("create kv_store: %w", err)
	}
	return &blobStoreImpl{db: db}, nil
}

func (r *blobStoreImpl) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return value, nil
}

func (r *blobStoreImpl) Put(ctx context.Context, key string, value []byte) error {
	if _, err := r.db.ExecContext(ctx, upsertKV, key, value); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (r *blobStoreImpl) PutAll(ctx context.Context, entries map[string][]byte) error {
	return withTransaction(ctx, r.db, func(tx *sql.Tx) error {
		for key, value := range entries {
			if _, err := tx.ExecContext(ctx, upsertKV, key, value); err != nil {
				return fmt.Errorf("upsert %s: %w", key, err)
			}
		}
		return nil
	})
}

func (r *blobStoreImpl) Close() error {
	return r.db.Close()
}

func withTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				slog.Error("rollback error during panic recovery", "error", rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
