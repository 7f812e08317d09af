package backup

import "context"

type BackupService interface {
	// Export wraps the live document in a versioned backup
	Export(ctx context.Context) (Backup, error)

	// Restore replaces the live document wholesale
	Restore(ctx context.Context, req RestoreRequest) error

	// AutoSnapshot writes a snapshot if the last one is older than the
	// configured interval. It reports whether a snapshot was written.
	AutoSnapshot(ctx context.Context) (bool, error)
}
