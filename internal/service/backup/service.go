package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/activity"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/backup"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/store"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/utils"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
)

type BackupServiceImpl struct {
	repo     store.Repository
	interval time.Duration
	now      func() time.Time
}

// NewBackupService returns the backup service. interval gates AutoSnapshot.
func NewBackupService(repo store.Repository, interval time.Duration, now func() time.Time) backup.BackupService {
	return &BackupServiceImpl{repo: repo, interval: interval, now: now}
}

// Export implements backup.BackupService.
func (s *BackupServiceImpl) Export(ctx context.Context) (backup.Backup, error) {
	if _, err := user.RequireFromContext(ctx, user.PermissionBackupManage); err != nil {
		return backup.Backup{}, err
	}

	data, err := s.snapshot(ctx, true)
	if err != nil {
		return backup.Backup{}, err
	}
	return backup.Backup{Version: backup.Version, Timestamp: s.now(), Data: data}, nil
}

// Restore implements backup.BackupService.
func (s *BackupServiceImpl) Restore(ctx context.Context, req backup.RestoreRequest) error {
	actor, err := user.RequireFromContext(ctx, user.PermissionBackupManage)
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	doc := store.New()
	if err := json.Unmarshal(req.Backup.Data, doc); err != nil {
		return validator.ValidationErrors{{Field: "data", Message: backup.ErrInvalidData.Error()}}
	}

	details := fmt.Sprintf("backup from %s", req.Backup.Timestamp.Format(time.RFC3339))
	doc.Log(activity.NewEntry(utils.NewID(), actor, activity.ActionRestored, details, s.now()))

	if err := s.repo.Replace(ctx, doc); err != nil {
		return fmt.Errorf("failed to replace document: %w", err)
	}
	return nil
}

// AutoSnapshot implements backup.BackupService.
func (s *BackupServiceImpl) AutoSnapshot(ctx context.Context) (bool, error) {
	now := s.now()

	last, ok, err := s.repo.LastSnapshot(ctx)
	if err != nil {
		return false, err
	}
	if ok && now.Sub(last) < s.interval {
		return false, nil
	}

	data, err := s.snapshot(ctx, false)
	if err != nil {
		return false, err
	}
	if err := s.repo.WriteSnapshot(ctx, backup.AutoSnapshot{Timestamp: now, Data: data}); err != nil {
		return false, fmt.Errorf("failed to write auto snapshot: %w", err)
	}

	slog.Info("auto snapshot written", "at", now)
	return true, nil
}

func (s *BackupServiceImpl) snapshot(ctx context.Context, indent bool) (json.RawMessage, error) {
	var data []byte
	err := s.repo.View(ctx, func(doc *store.Document) error {
		var err error
		if indent {
			data, err = json.MarshalIndent(doc, "", "  ")
		} else {
			data, err = json.Marshal(doc)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, nil
}
