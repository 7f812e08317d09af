package activity

import "context"

type ActivityService interface {
	// List returns the newest entries (admin only)
	List(ctx context.Context, limit int) ([]Entry, error)
}
