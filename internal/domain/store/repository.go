package store

import (
	"context"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/backup"
)

// Repository gives load-mutate-save access to the single document.
// Implementations serialize callers so no two mutations interleave.
type Repository interface {
	// View loads the document and hands it to fn. Changes made by fn are discarded.
	View(ctx context.Context, fn func(doc *Document) error) error

	// Update loads the document, applies fn and saves the result only when
	// fn returns nil.
	Update(ctx context.Context, fn func(doc *Document) error) error

	// Replace overwrites the stored document with doc.
	Replace(ctx context.Context, doc *Document) error

	// LastSnapshot returns when the last auto snapshot was written.
	LastSnapshot(ctx context.Context) (at time.Time, ok bool, err error)

	// WriteSnapshot stores snap and its timestamp as one batch.
	WriteSnapshot(ctx context.Context, snap backup.AutoSnapshot) error
}
