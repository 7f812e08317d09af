package attendance

import (
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jsonx"
)

type Status string

const (
	StatusOnTime     Status = "onTime"
	StatusLate       Status = "late"
	StatusEarlyLeave Status = "earlyLeave"
)

// Record is one member's attendance for a single calendar date.
type Record struct {
	Date              string        `json:"date"`
	ScheduledCheckIn  string        `json:"scheduledCheckIn"`
	ScheduledCheckOut string        `json:"scheduledCheckOut"`
	ActualCheckIn     *string       `json:"actualCheckIn"`
	ActualCheckOut    *string       `json:"actualCheckOut"`
	LateMinutes       int           `json:"lateMinutes"`
	EarlyMinutes      int           `json:"earlyMinutes"`
	WorkHours         *jsonx.Fixed2 `json:"workHours"`
	Status            Status        `json:"status"`
	CheckedInBy       string        `json:"checkedInBy,omitempty"`
}

// Schedule is the contractual shift a record is measured against.
type Schedule struct {
	CheckIn  string
	CheckOut string
}

// IsCheckedIn reports whether the record has an actual check-in time.
func (r Record) IsCheckedIn() bool {
	return r.ActualCheckIn != nil
}

// IsCheckedOut reports whether the record has an actual check-out time.
func (r Record) IsCheckedOut() bool {
	return r.ActualCheckOut != nil
}
