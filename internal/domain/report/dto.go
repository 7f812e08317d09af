package report

import (
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
)

// MonthlyReportRequest selects the period; zero values mean the current month.
type MonthlyReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 0 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: ErrInvalidMonth.Error(),
		})
	}
	if r.Year != 0 && (r.Year < 2000 || r.Year > 9999) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: ErrInvalidYear.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Period resolves zero fields against now.
func (r MonthlyReportRequest) Period(now time.Time) (int, time.Month) {
	year, month := r.Year, time.Month(r.Month)
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}
	return year, month
}
