package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	// Monthly attendance summary for one member
	GetMonthlyReport(w http.ResponseWriter, r *http.Request)

	// Admin dashboard counters
	GetOverview(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetMonthlyReport handles GET /members/{id}/report
func (h *reportHandlerImpl) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "id")
	if memberID == "" {
		response.BadRequest(w, "Member ID is required", nil)
		return
	}

	var req report.MonthlyReportRequest
	var ok bool
	if req.Month, ok = queryInt(w, r, "month"); !ok {
		return
	}
	if req.Year, ok = queryInt(w, r, "year"); !ok {
		return
	}

	result, err := h.reportService.MonthlyReport(r.Context(), memberID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetOverview handles GET /dashboard
func (h *reportHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Overview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
