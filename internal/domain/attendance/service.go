package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records the authenticated member's arrival for today
	CheckIn(ctx context.Context) (CheckResponse, error)

	// CheckOut records the authenticated member's departure for today
	CheckOut(ctx context.Context) (CheckResponse, error)

	// GetMyAttendance lists the authenticated member's records
	GetMyAttendance(ctx context.Context, filter MonthFilter) ([]Record, error)

	// ListMemberAttendance lists a member's records (admin/leader)
	ListMemberAttendance(ctx context.Context, memberID string, filter MonthFilter) ([]Record, error)
}
