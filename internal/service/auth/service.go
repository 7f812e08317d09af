package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/config"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/activity"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/member"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/store"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/utils"
)

// AdminID is the fixed identity of the configured admin account.
const AdminID = "admin"

type AuthServiceImpl struct {
	repo  store.Repository
	admin config.AdminConfig
	jwt.Service
	now func() time.Time
}

func NewAuthService(repo store.Repository, admin config.AdminConfig, jwtService jwt.Service, now func() time.Time) auth.AuthService {
	return &AuthServiceImpl{
		repo:    repo,
		admin:   admin,
		Service: jwtService,
		now:     now,
	}
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	now := a.now()
	actor := user.Actor{ID: utils.NewID(), Name: req.Name, Role: req.Role}

	err = a.repo.Update(ctx, func(doc *store.Document) error {
		switch req.Role {
		case user.RoleMember:
			mr := req.MemberRequest()
			if err := doc.AddMember(mr.ToMember(actor.ID, hash, now)); err != nil {
				return err
			}
		case user.RoleLeader:
			lr := req.LeaderRequest()
			if err := doc.AddLeader(lr.ToLeader(actor.ID, hash, now)); err != nil {
				return err
			}
		}
		doc.CurrentUser = &actor
		doc.Log(activity.NewEntry(utils.NewID(), actor, activity.ActionRegistered,
			fmt.Sprintf("%s %s registered", actor.Role, actor.Name), now))
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return a.issue(actor)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	var (
		actor    user.Actor
		migrated string
		err      error
	)
	if req.Role == user.RoleAdmin {
		actor, err = a.authenticateAdmin(req)
	} else {
		actor, migrated, err = a.authenticateAccount(ctx, req)
	}
	if err != nil {
		return auth.TokenResponse{}, err
	}
	now := a.now()

	err = a.repo.Update(ctx, func(doc *store.Document) error {
		if migrated != "" {
			if err := upgradePassword(doc, actor, migrated); err != nil {
				return err
			}
		}
		doc.CurrentUser = &actor
		doc.Log(activity.NewEntry(utils.NewID(), actor, activity.ActionLogin,
			fmt.Sprintf("%s %s signed in", actor.Role, actor.Name), now))
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return a.issue(actor)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	tok, err := a.JWTAuth().Decode(token)
	if err != nil || tok == nil {
		return auth.ErrInvalidToken
	}
	claims, err := tok.AsMap(ctx)
	if err != nil {
		return auth.ErrInvalidToken
	}
	actor, err := jwt.ActorFromClaims(claims)
	if err != nil {
		return auth.ErrInvalidToken
	}

	a.RevokeToken(token, tok.Expiration())
	now := a.now()

	return a.repo.Update(ctx, func(doc *store.Document) error {
		if doc.CurrentUser != nil && doc.CurrentUser.ID == actor.ID {
			doc.CurrentUser = nil
		}
		doc.Log(activity.NewEntry(utils.NewID(), actor, activity.ActionLogout,
			fmt.Sprintf("%s %s signed out", actor.Role, actor.Name), now))
		return nil
	})
}

func (a *AuthServiceImpl) issue(actor user.Actor) (auth.TokenResponse, error) {
	token, expiresAt, err := a.GenerateAccessToken(actor)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
		User:                 actor,
	}, nil
}

func (a *AuthServiceImpl) authenticateAdmin(req auth.LoginRequest) (user.Actor, error) {
	name := strings.TrimSpace(req.Name)
	for _, candidate := range a.admin.Names {
		if !strings.EqualFold(strings.TrimSpace(candidate), name) {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(a.admin.Password), []byte(req.Password)) != 1 {
			break
		}
		return user.Actor{ID: AdminID, Name: candidate, Role: user.RoleAdmin}, nil
	}
	return user.Actor{}, auth.ErrInvalidCredentials
}

// authenticateAccount checks a member or leader login outside the document
// lock. When the account still stores a plaintext password, the returned
// hash replaces it.
func (a *AuthServiceImpl) authenticateAccount(ctx context.Context, req auth.LoginRequest) (user.Actor, string, error) {
	var (
		actor                user.Actor
		hash, legacyPassword string
		found                bool
	)
	err := a.repo.View(ctx, func(doc *store.Document) error {
		switch req.Role {
		case user.RoleMember:
			for _, m := range doc.Members {
				if member.SameName(m.Name, req.Name) {
					actor = user.Actor{ID: m.ID, Name: m.Name, Role: user.RoleMember}
					hash, legacyPassword, found = m.PasswordHash, m.LegacyPassword, true
					break
				}
			}
		case user.RoleLeader:
			for _, l := range doc.Leaders {
				if member.SameName(l.Name, req.Name) {
					actor = user.Actor{ID: l.ID, Name: l.Name, Role: user.RoleLeader}
					hash, legacyPassword, found = l.PasswordHash, l.LegacyPassword, true
					break
				}
			}
		}
		return nil
	})
	if err != nil {
		return user.Actor{}, "", err
	}

	if !found || !utils.CheckPassword(hash, legacyPassword, req.Password) {
		return user.Actor{}, "", auth.ErrInvalidCredentials
	}
	if hash != "" {
		return actor, "", nil
	}

	upgraded, err := utils.HashPassword(req.Password)
	if err != nil {
		return user.Actor{}, "", err
	}
	return actor, upgraded, nil
}

func upgradePassword(doc *store.Document, actor user.Actor, hash string) error {
	switch actor.Role {
	case user.RoleMember:
		m, err := doc.Member(actor.ID)
		if err != nil {
			return auth.ErrInvalidCredentials
		}
		m.PasswordHash, m.LegacyPassword = hash, ""
	case user.RoleLeader:
		l, err := doc.Leader(actor.ID)
		if err != nil {
			return auth.ErrInvalidCredentials
		}
		l.PasswordHash, l.LegacyPassword = hash, ""
	}
	return nil
}
