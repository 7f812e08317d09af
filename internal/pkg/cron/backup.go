package cron

import (
	"context"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/backup"
)

// snapshotCheckInterval is how often the auto snapshot gate is re-evaluated.
// The snapshot itself is only written once per configured backup interval.
const snapshotCheckInterval = time.Hour

// RegisterBackupJobs schedules the periodic auto snapshot.
func RegisterBackupJobs(scheduler *Scheduler, backupService backup.BackupService) {
	scheduler.AddJob("auto_snapshot", snapshotCheckInterval, func(ctx context.Context) error {
		_, err := backupService.AutoSnapshot(ctx)
		return err
	})
}
