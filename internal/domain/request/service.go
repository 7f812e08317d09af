package request

import "context"

type RequestService interface {
	// Create files a request for the authenticated member
	Create(ctx context.Context, req CreateRequest) (Request, error)

	// List returns all requests for admins and own requests for members, newest first
	List(ctx context.Context, filter ListFilter) ([]Request, error)

	PendingCount(ctx context.Context) (int, error)

	Approve(ctx context.Context, id string) (ReviewResponse, error)
	Reject(ctx context.Context, id string, req RejectRequest) (ReviewResponse, error)
}
