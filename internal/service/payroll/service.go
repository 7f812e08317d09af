package payroll

import (
	"context"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/store"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
)

type PayrollServiceImpl struct {
	repo   store.Repository
	policy payroll.Policy
	now    func() time.Time
}

func NewPayrollService(repo store.Repository, policy payroll.Policy, now func() time.Time) payroll.PayrollService {
	return &PayrollServiceImpl{repo: repo, policy: policy, now: now}
}

// CalculateSalary implements payroll.PayrollService. Attendance is taken from
// the current month; rating and warnings are the member's running totals.
func (s *PayrollServiceImpl) CalculateSalary(ctx context.Context, memberID string) (payroll.SalaryReport, error) {
	if _, err := user.RequireFromContext(ctx, user.PermissionSalaryView); err != nil {
		return payroll.SalaryReport{}, err
	}
	now := s.now()

	var result payroll.SalaryReport
	err := s.repo.View(ctx, func(doc *store.Document) error {
		m, err := doc.Member(memberID)
		if err != nil {
			return err
		}
		if m.BaseSalary == nil {
			return payroll.ErrBaseSalaryNotConfigured
		}

		in := payroll.Input{
			BaseSalary:    *m.BaseSalary,
			Records:       attendance.InMonth(m.Attendance, now.Year(), now.Month()),
			WarningsCount: m.WarningsCount,
		}
		if m.AverageRating != nil {
			in.AverageRating = &m.AverageRating.Decimal
		}
		breakdown := s.policy.Calculate(in)
		result = payroll.SalaryReport{
			MemberID:    m.ID,
			MemberName:  m.Name,
			Month:       int(now.Month()),
			Year:        now.Year(),
			GeneratedAt: now,
			Breakdown:   breakdown,
		}
		return nil
	})
	if err != nil {
		return payroll.SalaryReport{}, err
	}
	return result, nil
}
