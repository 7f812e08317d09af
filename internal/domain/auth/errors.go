package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid name or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrAdminRegistration  = errors.New("the admin account cannot be registered")
)
