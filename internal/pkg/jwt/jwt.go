package jwt

import (
	"fmt"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(actor user.Actor) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string, expiresAt time.Time)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	accessTokenExpiration time.Duration
	tokenAuth             *jwtauth.JWTAuth
	revokedTokens         map[string]time.Time
	mu                    sync.RWMutex
	now                   func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, now func() time.Time) (Service, error) {
	expDuration, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil {
		return nil, fmt.Errorf("invalid access token expiration: %w", err)
	}
	return &JWTService{
		accessTokenExpiration: expDuration,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:         make(map[string]time.Time),
		now:                   now,
	}, nil
}

func (j *JWTService) GenerateAccessToken(actor user.Actor) (token string, expiresAt int64, err error) {
	now := j.now()
	expiresAt = now.Add(j.accessTokenExpiration).Unix()

	claims := map[string]interface{}{
		"user_id": actor.ID,
		"name":    actor.Name,
		"role":    string(actor.Role),
		"type":    "access",
		"iat":     now.Unix(),
		"exp":     expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// RevokeToken remembers token until it would have expired anyway. Expired
// entries are pruned on each call.
func (j *JWTService) RevokeToken(token string, expiresAt time.Time) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now()
	for t, exp := range j.revokedTokens {
		if exp.Before(now) {
			delete(j.revokedTokens, t)
		}
	}
	j.revokedTokens[token] = expiresAt
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

// ActorFromClaims rebuilds the actor carried by an access token.
func ActorFromClaims(claims map[string]interface{}) (user.Actor, error) {
	if typ, _ := claims["type"].(string); typ != "access" {
		return user.Actor{}, fmt.Errorf("unexpected token type %q", typ)
	}

	id, _ := claims["user_id"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	actor := user.Actor{ID: id, Name: name, Role: user.Role(role)}
	if actor.ID == "" || !actor.Role.Valid() {
		return user.Actor{}, fmt.Errorf("token is missing identity claims")
	}
	return actor, nil
}
