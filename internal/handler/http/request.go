package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/request"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RequestHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	PendingCount(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type requestHandlerImpl struct {
	requestService request.RequestService
}

func NewRequestHandler(requestService request.RequestService) RequestHandler {
	return &requestHandlerImpl{requestService: requestService}
}

// List implements RequestHandler.
func (h *requestHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := request.ListFilter{
		Status: request.Status(r.URL.Query().Get("status")),
		Type:   request.Type(r.URL.Query().Get("type")),
	}

	requests, err := h.requestService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, requests, &response.Meta{Total: len(requests)})
}

// Create implements RequestHandler.
func (h *requestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.requestService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Request submitted", created)
}

// PendingCount implements RequestHandler.
func (h *requestHandlerImpl) PendingCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.requestService.PendingCount(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int{"count": count})
}

// Approve implements RequestHandler.
func (h *requestHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	result, err := h.requestService.Approve(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request approved", result)
}

// Reject implements RequestHandler. The body is optional.
func (h *requestHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var req request.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("RejectRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.requestService.Reject(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request rejected", result)
}
