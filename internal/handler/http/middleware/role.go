package middleware

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/response"
)

// RequirePermission checks if the actor has a specific permission. It must
// run after AuthRequired.
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := user.ActorFromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if !actor.Can(permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", permission, actor.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAnyPermission passes when the actor holds at least one of permissions.
func RequireAnyPermission(permissions ...user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := user.ActorFromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			for _, p := range permissions {
				if actor.Can(p) {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Forbidden(w, fmt.Sprintf("Insufficient permissions for role '%s'", actor.Role))
		})
	}
}
