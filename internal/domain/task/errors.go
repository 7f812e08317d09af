package task

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidStatus   = errors.New("status must be pending, inProgress or completed")
	ErrNotTaskAssignee = errors.New("task is assigned to another member")
)
