package notification

import (
	"context"
)

// NotificationService defines the notification service interface
type NotificationService interface {
	// List returns the authenticated actor's notifications
	List(ctx context.Context, req ListRequest) (ListResponse, error)

	// MarkAsRead marks one of the actor's notifications as read
	MarkAsRead(ctx context.Context, id string) error
}
