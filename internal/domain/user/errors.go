package user

import "errors"

var (
	ErrActorMissing            = errors.New("no authenticated actor in context")
	ErrInvalidRole             = errors.New("invalid role")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
