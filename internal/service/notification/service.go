package notification

import (
	"context"
	"slices"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/notification"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/store"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
)

type service struct {
	repo store.Repository
	now  func() time.Time
}

// NewNotificationService returns the in-document notification inbox.
func NewNotificationService(repo store.Repository, now func() time.Time) notification.NotificationService {
	return &service{repo: repo, now: now}
}

// List returns the actor's notifications, newest first.
func (s *service) List(ctx context.Context, req notification.ListRequest) (notification.ListResponse, error) {
	actor, err := user.ActorFromContext(ctx)
	if err != nil {
		return notification.ListResponse{}, err
	}

	resp := notification.ListResponse{Notifications: []notification.Notification{}}
	err = s.repo.View(ctx, func(doc *store.Document) error {
		for _, n := range doc.Notifications {
			if n.RecipientID != actor.ID {
				continue
			}
			if !n.IsRead {
				resp.UnreadCount++
			} else if req.UnreadOnly {
				continue
			}
			resp.Notifications = append(resp.Notifications, n)
		}
		return nil
	})
	if err != nil {
		return notification.ListResponse{}, err
	}

	slices.SortStableFunc(resp.Notifications, func(a, b notification.Notification) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return resp, nil
}

// MarkAsRead marks one of the actor's notifications as read. Marking an
// already read notification is a no-op.
func (s *service) MarkAsRead(ctx context.Context, id string) error {
	actor, err := user.ActorFromContext(ctx)
	if err != nil {
		return err
	}
	now := s.now()

	return s.repo.Update(ctx, func(doc *store.Document) error {
		i := slices.IndexFunc(doc.Notifications, func(n notification.Notification) bool { return n.ID == id })
		if i < 0 {
			return notification.ErrNotificationNotFound
		}
		n := &doc.Notifications[i]
		if n.RecipientID != actor.ID {
			return notification.ErrUnauthorized
		}
		if !n.IsRead {
			n.IsRead = true
			n.ReadAt = &now
		}
		return nil
	})
}
