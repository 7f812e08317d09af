package auth

import (
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/member"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
)

// RegisterRequest carries the union of member and leader registration
// fields; Role selects which set is validated.
type RegisterRequest struct {
	Role     user.Role `json:"role"`
	Name     string    `json:"name"`
	Password string    `json:"password"`
	WhatsApp string    `json:"whatsapp"`
	Email    string    `json:"email"`

	// member
	DayOff   string `json:"dayOff,omitempty"`
	CheckIn  string `json:"checkIn,omitempty"`
	CheckOut string `json:"checkOut,omitempty"`

	// leader
	Shift string `json:"shift,omitempty"`
}

func (r *RegisterRequest) Validate() error {
	switch r.Role {
	case user.RoleMember:
		req := r.MemberRequest()
		return req.Validate()
	case user.RoleLeader:
		req := r.LeaderRequest()
		return req.Validate()
	case user.RoleAdmin:
		return validator.ValidationErrors{{Field: "role", Message: ErrAdminRegistration.Error()}}
	}
	return validator.ValidationErrors{{Field: "role", Message: "role must be member or leader"}}
}

func (r *RegisterRequest) MemberRequest() member.RegisterMemberRequest {
	return member.RegisterMemberRequest{
		Name:     r.Name,
		Password: r.Password,
		WhatsApp: r.WhatsApp,
		Email:    r.Email,
		DayOff:   r.DayOff,
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
	}
}

func (r *RegisterRequest) LeaderRequest() member.RegisterLeaderRequest {
	return member.RegisterLeaderRequest{
		Name:     r.Name,
		Password: r.Password,
		WhatsApp: r.WhatsApp,
		Email:    r.Email,
		Shift:    r.Shift,
	}
}

type LoginRequest struct {
	Role     user.Role `json:"role"`
	Name     string    `json:"name"`
	Password string    `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Role.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be admin, leader or member",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken          string     `json:"access_token"`
	AccessTokenExpiresIn int64      `json:"access_token_expires_in"`
	User                 user.Actor `json:"user"`
}
