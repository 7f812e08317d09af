package user

import (
	"encoding/json"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jsonx"
)

type Role string

const (
	RoleAdmin  Role = "admin"  // Full access, single built-in account
	RoleLeader Role = "leader" // Team leader, rates and supervises members
	RoleMember Role = "member" // Regular member, checks in and files requests
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleLeader, RoleMember:
		return true
	}
	return false
}

// Actor is the authenticated identity an operation is performed by.
type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// UnmarshalJSON accepts the numeric ids browser-written sessions carry.
func (a *Actor) UnmarshalJSON(b []byte) error {
	type plain Actor
	aux := struct {
		*plain
		ID jsonx.ID `json:"id"`
	}{plain: (*plain)(a)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	a.ID = string(aux.ID)
	return nil
}

// IsAdmin checks if actor is the admin
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// IsSupervisor checks if actor is admin or leader
func (a Actor) IsSupervisor() bool {
	return a.Role == RoleAdmin || a.Role == RoleLeader
}

// Can checks the actor's role against the permission table.
func (a Actor) Can(p Permission) bool {
	return HasPermission(a.Role, p)
}

// Require returns ErrInsufficientPermissions unless the actor holds p.
func (a Actor) Require(p Permission) error {
	if !a.Can(p) {
		return ErrInsufficientPermissions
	}
	return nil
}
