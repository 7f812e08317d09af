package request

import "github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"

type CreateRequest struct {
	Type      Type   `json:"type"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Duration  int    `json:"duration,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Time      string `json:"time,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	switch r.Type {
	case TypeVacation:
		errs.Required("startDate", r.StartDate)
		errs.Required("endDate", r.EndDate)
		errs.Required("reason", r.Reason)
		if len(errs) == 0 {
			if _, err := VacationDays(r.StartDate, r.EndDate); err != nil {
				errs = append(errs, validator.ValidationError{Field: "endDate", Message: err.Error()})
			}
		}
	case TypeBreak:
		if r.Duration <= 0 {
			errs = append(errs, validator.ValidationError{Field: "duration", Message: "duration must be a positive number of minutes"})
		}
	case TypeException:
		if !validator.IsValidClock(r.Time) {
			errs = append(errs, validator.ValidationError{Field: "time", Message: "time is required as HH:MM"})
		}
		errs.Required("reason", r.Reason)
	default:
		errs = append(errs, validator.ValidationError{Field: "type", Message: ErrInvalidType.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

func (r *RejectRequest) Validate() error {
	if len(r.Reason) > 1000 {
		return validator.ValidationErrors{{Field: "reason", Message: "reason must not exceed 1000 characters"}}
	}
	return nil
}

type ListFilter struct {
	Status Status `json:"status"`
	Type   Type   `json:"type"`
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	switch f.Status {
	case "", StatusPending, StatusApproved, StatusRejected:
	default:
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be pending, approved or rejected"})
	}
	switch f.Type {
	case "", TypeVacation, TypeBreak, TypeException:
	default:
		errs = append(errs, validator.ValidationError{Field: "type", Message: ErrInvalidType.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReviewResponse carries the decided request and a prefilled WhatsApp link
// the reviewer can use to tell the member.
type ReviewResponse struct {
	Request      Request `json:"request"`
	WhatsAppLink string  `json:"whatsappLink,omitempty"`
}
