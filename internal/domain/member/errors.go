package member

import "errors"

var (
	ErrMemberNotFound   = errors.New("member not found")
	ErrLeaderNotFound   = errors.New("leader not found")
	ErrMemberNameExists = errors.New("a member with this name is already registered")
	ErrLeaderNameExists = errors.New("a leader with this name is already registered")
	ErrInvalidPresence  = errors.New("presence filter must be all, present or absent")
)
