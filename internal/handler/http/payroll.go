package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	GetSalary(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// GetSalary handles GET /members/{id}/salary
func (h *payrollHandlerImpl) GetSalary(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "id")
	if memberID == "" {
		response.BadRequest(w, "Member ID is required", nil)
		return
	}

	result, err := h.payrollService.CalculateSalary(r.Context(), memberID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
