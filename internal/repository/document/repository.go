package document

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/backup"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/store"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jsonx"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/storage"
)

type repositoryImpl struct {
	mu    sync.Mutex
	blobs storage.BlobStore
	now   func() time.Time

	// preserved is the corrupt document last copied aside, cleared once a
	// readable document is stored again.
	preserved []byte
}

// corruptCopy wraps the raw bytes of an undecodable document. Data encodes
// as base64 so arbitrary bytes survive any backend.
type corruptCopy struct {
	Encoding string `json:"encoding"`
	Data     []byte `json:"data"`
}

// NewRepository returns a store.Repository over blobs. All access goes through
// one mutex so each Update is a serialized load-mutate-save.
func NewRepository(blobs storage.BlobStore, now func() time.Time) store.Repository {
	return &repositoryImpl{blobs: blobs, now: now}
}

func (r *repositoryImpl) View(ctx context.Context, fn func(doc *store.Document) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	return fn(doc)
}

func (r *repositoryImpl) Update(ctx context.Context, fn func(doc *store.Document) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}

	doc.Revision++
	return r.save(ctx, doc)
}

func (r *repositoryImpl) Replace(ctx context.Context, doc *store.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.load(ctx)
	if err != nil {
		return err
	}

	doc.Normalize()
	doc.Revision = current.Revision + 1
	return r.save(ctx, doc)
}

func (r *repositoryImpl) LastSnapshot(ctx context.Context) (time.Time, bool, error) {
	raw, err := r.blobs.Get(ctx, store.LastAutoBackupKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("failed to read %s: %w", store.LastAutoBackupKey, err)
	}

	var at jsonx.Time
	if err := json.Unmarshal(raw, &at); err != nil || at.Std().IsZero() {
		slog.Warn("unreadable snapshot timestamp, treating as absent", "key", store.LastAutoBackupKey, "error", err)
		return time.Time{}, false, nil
	}
	return at.Std(), true, nil
}

func (r *repositoryImpl) WriteSnapshot(ctx context.Context, snap backup.AutoSnapshot) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	stamp, err := json.Marshal(snap.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot timestamp: %w", err)
	}

	return r.blobs.PutAll(ctx, map[string][]byte{
		store.AutoBackupKey:     body,
		store.LastAutoBackupKey: stamp,
	})
}

// load reads the document. An undecodable document is preserved under a
// separate key and replaced by an empty one.
func (r *repositoryImpl) load(ctx context.Context) (*store.Document, error) {
	raw, err := r.blobs.Get(ctx, store.DocumentKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return store.New(), nil
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var doc store.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		r.preserveCorrupt(ctx, raw, err)
		return store.New(), nil
	}
	r.preserved = nil
	doc.Normalize()
	return &doc, nil
}

// preserveCorrupt copies raw aside once per corruption; later loads of the
// same bytes reuse the earlier copy.
func (r *repositoryImpl) preserveCorrupt(ctx context.Context, raw []byte, cause error) {
	if r.preserved != nil && bytes.Equal(r.preserved, raw) {
		return
	}

	key := fmt.Sprintf("%s.corrupt.%d", store.DocumentKey, r.now().Unix())
	body, err := json.Marshal(corruptCopy{Encoding: "base64", Data: raw})
	if err == nil {
		err = r.blobs.Put(ctx, key, body)
	}
	if err != nil {
		slog.Error("failed to preserve corrupt document", "key", key, "error", err)
		return
	}
	r.preserved = bytes.Clone(raw)

	slog.Warn("stored document is corrupt, starting from an empty one",
		"error", fmt.Errorf("%w: %v", store.ErrCorruptDocument, cause),
		"preserved_as", key,
	)
}

func (r *repositoryImpl) save(ctx context.Context, doc *store.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := r.blobs.Put(ctx, store.DocumentKey, body); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	r.preserved = nil
	return nil
}
