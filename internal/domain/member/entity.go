package member

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/evaluation"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jsonx"
	"github.com/shopspring/decimal"
)

// Member is a scheduled employee. LegacyPassword holds the plaintext field of
// older documents and is replaced by PasswordHash on the next successful login.
type Member struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	PasswordHash   string           `json:"passwordHash,omitempty"`
	LegacyPassword string           `json:"password,omitempty"`
	WhatsApp       string           `json:"whatsapp"`
	Email          string           `json:"email"`
	DayOff         string           `json:"dayOff"`
	CheckIn        string           `json:"checkIn"`
	CheckOut       string           `json:"checkOut"`
	BaseSalary     *decimal.Decimal `json:"baseSalary,omitempty"`

	Attendance    []attendance.Record `json:"attendance"`
	Ratings       []evaluation.Rating `json:"ratings"`
	Notes         []evaluation.Note   `json:"notes"`
	AverageRating *jsonx.Fixed2       `json:"averageRating"`
	WarningsCount int                 `json:"warningsCount"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// UnmarshalJSON also reads browser-written members: numeric ids and
// timestamps, and an empty string for an unset salary or rating.
func (m *Member) UnmarshalJSON(b []byte) error {
	type plain Member
	aux := struct {
		*plain
		ID            jsonx.ID              `json:"id"`
		BaseSalary    jsonx.OptionalDecimal `json:"baseSalary"`
		AverageRating jsonx.OptionalDecimal `json:"averageRating"`
		CreatedAt     jsonx.Time            `json:"createdAt"`
	}{plain: (*plain)(m)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	m.ID = string(aux.ID)
	m.BaseSalary = aux.BaseSalary.Value
	m.AverageRating = nil
	if aux.AverageRating.Value != nil {
		avg := jsonx.NewFixed2(*aux.AverageRating.Value)
		m.AverageRating = &avg
	}
	m.CreatedAt = aux.CreatedAt.Std()
	return nil
}

// Schedule returns the member's contractual shift.
func (m *Member) Schedule() attendance.Schedule {
	return attendance.Schedule{CheckIn: m.CheckIn, CheckOut: m.CheckOut}
}

// AddRating appends r and recomputes AverageRating.
func (m *Member) AddRating(r evaluation.Rating) {
	m.Ratings = append(m.Ratings, r)
	m.AverageRating = evaluation.AverageOf(m.Ratings)
}

// AddNote appends n and recomputes WarningsCount.
func (m *Member) AddNote(n evaluation.Note) {
	m.Notes = append(m.Notes, n)
	m.WarningsCount = evaluation.CountWarnings(m.Notes)
}

// Matches is a case-insensitive substring search over name and email, and a
// plain substring search over the WhatsApp number.
func (m *Member) Matches(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(m.Name), q) ||
		strings.Contains(m.WhatsApp, q) ||
		strings.Contains(strings.ToLower(m.Email), q)
}

// AttendanceDays counts records with an actual check-in.
func (m *Member) AttendanceDays() int {
	n := 0
	for _, r := range m.Attendance {
		if r.IsCheckedIn() {
			n++
		}
	}
	return n
}

type Leader struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	PasswordHash   string    `json:"passwordHash,omitempty"`
	LegacyPassword string    `json:"password,omitempty"`
	WhatsApp       string    `json:"whatsapp"`
	Email          string    `json:"email"`
	Shift          string    `json:"shift"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (l *Leader) UnmarshalJSON(b []byte) error {
	type plain Leader
	aux := struct {
		*plain
		ID        jsonx.ID   `json:"id"`
		CreatedAt jsonx.Time `json:"createdAt"`
	}{plain: (*plain)(l)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	l.ID = string(aux.ID)
	l.CreatedAt = aux.CreatedAt.Std()
	return nil
}

// SameName compares display names the way registration uniqueness does.
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// IsPresent classifies a member as present when now falls inside their shift.
func IsPresent(m Member, now time.Time) bool {
	return attendance.IsOnShift(m.CheckIn, m.CheckOut, now)
}

// Filter applies the search query and presence filter, preserving order.
func Filter(members []Member, f ListFilter, now time.Time) []Member {
	result := make([]Member, 0, len(members))
	for _, m := range members {
		if !m.Matches(f.Query) {
			continue
		}
		switch f.Presence {
		case PresencePresent:
			if !IsPresent(m, now) {
				continue
			}
		case PresenceAbsent:
			if IsPresent(m, now) {
				continue
			}
		}
		result = append(result, m)
	}
	return result
}
