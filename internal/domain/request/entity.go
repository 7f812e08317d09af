package request

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jsonx"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
)

type Type string

const (
	TypeVacation  Type = "vacation"
	TypeBreak     Type = "break"
	TypeException Type = "exception"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Request is a member's vacation, break or exception request. Only the
// payload fields of its Type are populated.
type Request struct {
	ID             string `json:"id"`
	Type           Type   `json:"type"`
	MemberID       string `json:"memberId"`
	MemberName     string `json:"memberName"`
	MemberWhatsApp string `json:"memberWhatsapp"`

	// vacation
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Days      int    `json:"days,omitempty"`

	// vacation, exception
	Reason string `json:"reason,omitempty"`

	// break
	Duration int    `json:"duration,omitempty"`
	Notes    string `json:"notes,omitempty"`

	// exception
	Time string `json:"time,omitempty"`

	Status          Status     `json:"status"`
	Date            time.Time  `json:"date"`
	ReviewedBy      string     `json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
}

// UnmarshalJSON also reads browser-written requests: numeric ids and
// timestamps, a string break duration, and requestDate on vacations.
func (r *Request) UnmarshalJSON(b []byte) error {
	type plain Request
	aux := struct {
		*plain
		ID          jsonx.ID    `json:"id"`
		MemberID    jsonx.ID    `json:"memberId"`
		Duration    jsonx.Int   `json:"duration"`
		Date        jsonx.Time  `json:"date"`
		RequestDate jsonx.Time  `json:"requestDate"`
		ReviewedAt  *jsonx.Time `json:"reviewedAt"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	r.ID = string(aux.ID)
	r.MemberID = string(aux.MemberID)
	r.Duration = int(aux.Duration)
	r.Date = aux.Date.Std()
	if r.Date.IsZero() {
		r.Date = aux.RequestDate.Std()
	}
	r.ReviewedAt = aux.ReviewedAt.Ptr()
	return nil
}

// EffectiveStatus treats a request stored without a status as pending.
func (r Request) EffectiveStatus() Status {
	if r.Status == "" {
		return StatusPending
	}
	return r.Status
}

// Review moves a pending request to approved or rejected.
func (r *Request) Review(to Status, by string, now time.Time, reason string) error {
	if !to.IsTerminal() {
		return ErrInvalidTransition
	}
	if r.EffectiveStatus() != StatusPending {
		return ErrRequestAlreadyProcessed
	}
	r.Status = to
	r.ReviewedBy = by
	r.ReviewedAt = &now
	if to == StatusRejected {
		r.RejectionReason = reason
	}
	return nil
}

// VacationDays counts calendar days from start to end inclusive.
func VacationDays(start, end string) (int, error) {
	s, ok := validator.IsValidDate(start)
	if !ok {
		return 0, ErrInvalidDate
	}
	e, ok := validator.IsValidDate(end)
	if !ok {
		return 0, ErrInvalidDate
	}
	days := int(math.Ceil(e.Sub(s).Hours()/24)) + 1
	if days <= 0 {
		return 0, ErrEndBeforeStart
	}
	return days, nil
}

// Label is the Arabic name of the request type shown to members.
func (t Type) Label() string {
	switch t {
	case TypeVacation:
		return "إجازة"
	case TypeBreak:
		return "بريك"
	case TypeException:
		return "استئذان"
	}
	return string(t)
}

// DecisionMessage is the text sent to the member once r has been reviewed.
func DecisionMessage(r Request) string {
	var body string
	switch r.Status {
	case StatusApproved:
		body = fmt.Sprintf("تمت الموافقة على طلب %s الخاص بك.", r.Type.Label())
	case StatusRejected:
		body = fmt.Sprintf("تم رفض طلب %s الخاص بك.", r.Type.Label())
		if r.RejectionReason != "" {
			body += "\nالسبب: " + r.RejectionReason
		}
	default:
		body = fmt.Sprintf("تم استلام طلب %s الخاص بك وهو قيد المراجعة.", r.Type.Label())
	}
	return fmt.Sprintf("مرحباً %s،\n\n%s\n\nشكراً لك.", r.MemberName, body)
}
