package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/evaluation"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EvaluationHandler interface {
	Rate(w http.ResponseWriter, r *http.Request)
	AddNote(w http.ResponseWriter, r *http.Request)
}

type evaluationHandlerImpl struct {
	evaluationService evaluation.EvaluationService
}

func NewEvaluationHandler(evaluationService evaluation.EvaluationService) EvaluationHandler {
	return &evaluationHandlerImpl{evaluationService: evaluationService}
}

// Rate handles POST /members/{id}/ratings
func (h *evaluationHandlerImpl) Rate(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "id")

	var req evaluation.RateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Rate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.evaluationService.RateMember(r.Context(), memberID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Rating saved", result)
}

// AddNote handles POST /members/{id}/notes
func (h *evaluationHandlerImpl) AddNote(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "id")

	var req evaluation.AddNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddNote decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.evaluationService.AddNote(r.Context(), memberID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Note saved", result)
}
