package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/member"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/notification"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/request"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/task"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth and permission errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenRevoked),
		errors.Is(err, user.ErrActorMissing):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrInsufficientPermissions),
		errors.Is(err, notification.ErrUnauthorized),
		errors.Is(err, task.ErrNotTaskAssignee):
		Forbidden(w, err.Error())

	// Not found
	case errors.Is(err, member.ErrMemberNotFound),
		errors.Is(err, member.ErrLeaderNotFound),
		errors.Is(err, task.ErrTaskNotFound),
		errors.Is(err, request.ErrRequestNotFound),
		errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, err.Error())

	// State conflicts
	case errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrAlreadyCheckedOut),
		errors.Is(err, attendance.ErrNotCheckedIn),
		errors.Is(err, attendance.ErrCheckOutBeforeCheckIn),
		errors.Is(err, request.ErrRequestAlreadyProcessed),
		errors.Is(err, member.ErrMemberNameExists),
		errors.Is(err, member.ErrLeaderNameExists):
		Conflict(w, err.Error())

	case errors.Is(err, payroll.ErrBaseSalaryNotConfigured):
		UnprocessableEntity(w, err.Error())

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
