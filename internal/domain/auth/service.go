package auth

import (
	"context"
)

type AuthService interface {
	// Register self-registers a member or leader and signs them in
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// Logout revokes the presented token and clears the current user
	Logout(ctx context.Context, token string) error
}
