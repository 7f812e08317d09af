package payroll

import "context"

// PayrollService computes salary statements (admin only)
type PayrollService interface {
	// CalculateSalary computes the current month's statement for a member
	CalculateSalary(ctx context.Context, memberID string) (SalaryReport, error)
}
