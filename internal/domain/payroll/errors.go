package payroll

import "errors"

var (
	ErrBaseSalaryNotConfigured = errors.New("base salary is not configured for this member")
)
