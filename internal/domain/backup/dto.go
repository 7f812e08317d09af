package backup

import "github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"

type RestoreRequest struct {
	Confirm bool   `json:"confirm"`
	Backup  Backup `json:"backup"`
}

func (r *RestoreRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Confirm {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm",
			Message: ErrConfirmationRequired.Error(),
		})
	}
	if err := r.Backup.Validate(); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "backup",
			Message: err.Error(),
		})
	} else if r.Backup.Version != Version {
		errs = append(errs, validator.ValidationError{
			Field:   "version",
			Message: ErrUnsupportedVersion.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
