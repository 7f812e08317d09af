package task

import "context"

type TaskService interface {
	// Create assigns a task to a member; assignedBy is the actor's name
	Create(ctx context.Context, req CreateTaskRequest) (Task, error)

	// UpdateStatus moves a task; members may only move their own tasks
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (Task, error)

	Delete(ctx context.Context, id string) error

	// List returns own tasks for members and all tasks otherwise, newest first
	List(ctx context.Context, filter ListFilter) ([]Task, error)

	Stats(ctx context.Context) (Stats, error)
}
