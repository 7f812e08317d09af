package report

import (
	"context"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/request"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/store"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
)

type ReportServiceImpl struct {
	repo store.Repository
	now  func() time.Time
}

func NewReportService(repo store.Repository, now func() time.Time) report.ReportService {
	return &ReportServiceImpl{repo: repo, now: now}
}

// MonthlyReport implements report.ReportService.
func (s *ReportServiceImpl) MonthlyReport(ctx context.Context, memberID string, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if _, err := user.RequireFromContext(ctx, user.PermissionReportsView); err != nil {
		return report.MonthlyReport{}, err
	}
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}
	year, month := req.Period(s.now())

	var result report.MonthlyReport
	err := s.repo.View(ctx, func(doc *store.Document) error {
		m, err := doc.Member(memberID)
		if err != nil {
			return err
		}
		result = report.Monthly(m.Attendance, year, month)
		result.MemberID = m.ID
		result.MemberName = m.Name
		return nil
	})
	if err != nil {
		return report.MonthlyReport{}, err
	}
	return result, nil
}

// Overview implements report.ReportService.
func (s *ReportServiceImpl) Overview(ctx context.Context) (report.Overview, error) {
	if _, err := user.RequireFromContext(ctx, user.PermissionDashboardView); err != nil {
		return report.Overview{}, err
	}
	now := s.now()

	var result report.Overview
	err := s.repo.View(ctx, func(doc *store.Document) error {
		pending := 0
		for _, r := range doc.Requests {
			if r.EffectiveStatus() == request.StatusPending {
				pending++
			}
		}
		result = report.BuildOverview(doc.Members, len(doc.Leaders), doc.Tasks, pending, now)
		return nil
	})
	return result, err
}
