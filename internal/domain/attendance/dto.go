package attendance

import (
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
)

type CheckResponse struct {
	MemberID   string `json:"memberId"`
	MemberName string `json:"memberName"`
	Record     Record `json:"record"`
}

// MonthFilter narrows a listing to one month. Zero values mean "all".
type MonthFilter struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (f *MonthFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month < 0 || f.Month > 12 {
		errs.Add("month", "month must be between 1 and 12")
	}
	if f.Year < 0 {
		errs.Add("year", "year must be positive")
	}
	if (f.Month == 0) != (f.Year == 0) {
		errs.Add("month", "month and year must be given together")
	}

	return errs.Err()
}

func (f MonthFilter) IsZero() bool {
	return f.Month == 0 && f.Year == 0
}
