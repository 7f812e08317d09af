package activity

import (
	"context"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/activity"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/store"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
)

type ActivityServiceImpl struct {
	repo store.Repository
}

func NewActivityService(repo store.Repository) activity.ActivityService {
	return &ActivityServiceImpl{repo: repo}
}

// List implements activity.ActivityService.
func (s *ActivityServiceImpl) List(ctx context.Context, limit int) ([]activity.Entry, error) {
	if _, err := user.RequireFromContext(ctx, user.PermissionActivityView); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = activity.DefaultListLimit
	}

	var result []activity.Entry
	err := s.repo.View(ctx, func(doc *store.Document) error {
		result = activity.Newest(doc.ActivityLog, limit)
		return nil
	})
	return result, err
}
