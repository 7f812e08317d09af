package task

import "github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"

type CreateTaskRequest struct {
	MemberID string `json:"memberId"`
	Type     string `json:"type"`
	Details  string `json:"details"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("memberId", r.MemberID)
	errs.Required("type", r.Type)
	if len(r.Details) > 2000 {
		errs = append(errs, validator.ValidationError{
			Field:   "details",
			Message: "details must not exceed 2000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	if !r.Status.Valid() {
		return validator.ValidationErrors{{Field: "status", Message: ErrInvalidStatus.Error()}}
	}
	return nil
}

type ListFilter struct {
	Status Status `json:"status"`
}

func (f *ListFilter) Validate() error {
	if f.Status != "" && !f.Status.Valid() {
		return validator.ValidationErrors{{Field: "status", Message: ErrInvalidStatus.Error()}}
	}
	return nil
}
