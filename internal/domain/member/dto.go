package member

import (
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// RegisterMemberRequest is used for both self-registration and admin creation.
type RegisterMemberRequest struct {
	Name       string           `json:"name"`
	Password   string           `json:"password"`
	WhatsApp   string           `json:"whatsapp"`
	Email      string           `json:"email"`
	DayOff     string           `json:"dayOff"`
	CheckIn    string           `json:"checkIn"`
	CheckOut   string           `json:"checkOut"`
	BaseSalary *decimal.Decimal `json:"baseSalary,omitempty"`
}

func (r *RegisterMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	validateIdentity(&errs, r.Name, r.Password, r.WhatsApp, r.Email)

	if validator.IsEmpty(r.DayOff) {
		errs = append(errs, validator.ValidationError{
			Field:   "dayOff",
			Message: "dayOff is required",
		})
	}
	validateShift(&errs, r.CheckIn, r.CheckOut)

	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "baseSalary",
			Message: "baseSalary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToMember builds a fresh member with empty derived collections.
func (r *RegisterMemberRequest) ToMember(id, passwordHash string, now time.Time) Member {
	return Member{
		ID:           id,
		Name:         r.Name,
		PasswordHash: passwordHash,
		WhatsApp:     r.WhatsApp,
		Email:        r.Email,
		DayOff:       r.DayOff,
		CheckIn:      r.CheckIn,
		CheckOut:     r.CheckOut,
		BaseSalary:   r.BaseSalary,
		CreatedAt:    now,
	}
}

type RegisterLeaderRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
	Shift    string `json:"shift"`
}

func (r *RegisterLeaderRequest) Validate() error {
	var errs validator.ValidationErrors

	validateIdentity(&errs, r.Name, r.Password, r.WhatsApp, r.Email)

	if validator.IsEmpty(r.Shift) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *RegisterLeaderRequest) ToLeader(id, passwordHash string, now time.Time) Leader {
	return Leader{
		ID:           id,
		Name:         r.Name,
		PasswordHash: passwordHash,
		WhatsApp:     r.WhatsApp,
		Email:        r.Email,
		Shift:        r.Shift,
		CreatedAt:    now,
	}
}

// UpdateMemberRequest merges non-nil fields into the stored member.
type UpdateMemberRequest struct {
	Name       *string          `json:"name,omitempty"`
	Password   *string          `json:"password,omitempty"`
	WhatsApp   *string          `json:"whatsapp,omitempty"`
	Email      *string          `json:"email,omitempty"`
	DayOff     *string          `json:"dayOff,omitempty"`
	CheckIn    *string          `json:"checkIn,omitempty"`
	CheckOut   *string          `json:"checkOut,omitempty"`
	BaseSalary *decimal.Decimal `json:"baseSalary,omitempty"`
}

func (r *UpdateMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	validateOptionalIdentity(&errs, r.Name, r.Password, r.WhatsApp, r.Email)

	if r.DayOff != nil && validator.IsEmpty(*r.DayOff) {
		errs = append(errs, validator.ValidationError{Field: "dayOff", Message: "dayOff must not be empty"})
	}
	if r.CheckIn != nil && !validator.IsValidClock(*r.CheckIn) {
		errs = append(errs, validator.ValidationError{Field: "checkIn", Message: "checkIn must be HH:MM"})
	}
	if r.CheckOut != nil && !validator.IsValidClock(*r.CheckOut) {
		errs = append(errs, validator.ValidationError{Field: "checkOut", Message: "checkOut must be HH:MM"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "baseSalary", Message: "baseSalary must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply copies every set field except Password onto m.
func (r *UpdateMemberRequest) Apply(m *Member) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.WhatsApp != nil {
		m.WhatsApp = *r.WhatsApp
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.DayOff != nil {
		m.DayOff = *r.DayOff
	}
	if r.CheckIn != nil {
		m.CheckIn = *r.CheckIn
	}
	if r.CheckOut != nil {
		m.CheckOut = *r.CheckOut
	}
	if r.BaseSalary != nil {
		m.BaseSalary = r.BaseSalary
	}
}

type UpdateLeaderRequest struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
	WhatsApp *string `json:"whatsapp,omitempty"`
	Email    *string `json:"email,omitempty"`
	Shift    *string `json:"shift,omitempty"`
}

func (r *UpdateLeaderRequest) Validate() error {
	var errs validator.ValidationErrors

	validateOptionalIdentity(&errs, r.Name, r.Password, r.WhatsApp, r.Email)
	if r.Shift != nil && validator.IsEmpty(*r.Shift) {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "shift must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply copies every set field except Password onto l.
func (r *UpdateLeaderRequest) Apply(l *Leader) {
	if r.Name != nil {
		l.Name = *r.Name
	}
	if r.WhatsApp != nil {
		l.WhatsApp = *r.WhatsApp
	}
	if r.Email != nil {
		l.Email = *r.Email
	}
	if r.Shift != nil {
		l.Shift = *r.Shift
	}
}

type Presence string

const (
	PresenceAll     Presence = "all"
	PresencePresent Presence = "present"
	PresenceAbsent  Presence = "absent"
)

type ListFilter struct {
	Query    string   `json:"q"`
	Presence Presence `json:"presence"`
}

func (f *ListFilter) Validate() error {
	switch f.Presence {
	case "", PresenceAll, PresencePresent, PresenceAbsent:
		return nil
	}
	return validator.ValidationErrors{{Field: "presence", Message: ErrInvalidPresence.Error()}}
}

// MemberResponse is the outward view of a member, without credentials.
type MemberResponse struct {
	Member
	Present bool `json:"present"`
}

// NewMemberResponse strips credentials and attaches the present-now flag.
func NewMemberResponse(m Member, now time.Time) MemberResponse {
	m.PasswordHash = ""
	m.LegacyPassword = ""
	return MemberResponse{Member: m, Present: IsPresent(m, now)}
}

// NewLeaderResponse strips credentials.
func NewLeaderResponse(l Leader) Leader {
	l.PasswordHash = ""
	l.LegacyPassword = ""
	return l
}

func validateIdentity(errs *validator.ValidationErrors, name, password, whatsapp, email string) {
	if validator.IsEmpty(name) {
		*errs = append(*errs, validator.ValidationError{Field: "name", Message: "name is required"})
	} else if len(name) > 255 {
		*errs = append(*errs, validator.ValidationError{Field: "name", Message: "name must not exceed 255 characters"})
	}

	if validator.IsEmpty(password) {
		*errs = append(*errs, validator.ValidationError{Field: "password", Message: "password is required"})
	} else if len(password) < 4 {
		*errs = append(*errs, validator.ValidationError{Field: "password", Message: "password must be at least 4 characters"})
	}

	if validator.IsEmpty(whatsapp) {
		*errs = append(*errs, validator.ValidationError{Field: "whatsapp", Message: "whatsapp is required"})
	} else if !validator.IsValidWhatsApp(whatsapp) {
		*errs = append(*errs, validator.ValidationError{Field: "whatsapp", Message: "whatsapp must be a phone number"})
	}

	if validator.IsEmpty(email) {
		*errs = append(*errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(email) {
		*errs = append(*errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}
}

func validateOptionalIdentity(errs *validator.ValidationErrors, name, password, whatsapp, email *string) {
	if name != nil && validator.IsEmpty(*name) {
		*errs = append(*errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if password != nil && len(*password) < 4 {
		*errs = append(*errs, validator.ValidationError{Field: "password", Message: "password must be at least 4 characters"})
	}
	if whatsapp != nil && !validator.IsValidWhatsApp(*whatsapp) {
		*errs = append(*errs, validator.ValidationError{Field: "whatsapp", Message: "whatsapp must be a phone number"})
	}
	if email != nil && !validator.IsValidEmail(*email) {
		*errs = append(*errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}
}

func validateShift(errs *validator.ValidationErrors, checkIn, checkOut string) {
	if !validator.IsValidClock(checkIn) {
		*errs = append(*errs, validator.ValidationError{Field: "checkIn", Message: "checkIn is required as HH:MM"})
	}
	if !validator.IsValidClock(checkOut) {
		*errs = append(*errs, validator.ValidationError{Field: "checkOut", Message: "checkOut is required as HH:MM"})
	}
}
