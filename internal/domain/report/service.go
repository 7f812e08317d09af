package report

import "context"

// ReportService defines the interface for report generation
type ReportService interface {
	// MonthlyReport aggregates one member's attendance for a month
	MonthlyReport(ctx context.Context, memberID string, req MonthlyReportRequest) (MonthlyReport, error)

	// Overview builds the admin dashboard counters
	Overview(ctx context.Context) (Overview, error)
}
