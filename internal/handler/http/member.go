package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/member"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type MemberHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	ListLeaders(w http.ResponseWriter, r *http.Request)
	CreateLeader(w http.ResponseWriter, r *http.Request)
	UpdateLeader(w http.ResponseWriter, r *http.Request)
	DeleteLeader(w http.ResponseWriter, r *http.Request)
}

type memberHandlerImpl struct {
	directoryService member.DirectoryService
}

func NewMemberHandler(directoryService member.DirectoryService) MemberHandler {
	return &memberHandlerImpl{directoryService: directoryService}
}

// List implements MemberHandler.
func (h *memberHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := member.ListFilter{
		Query:    r.URL.Query().Get("q"),
		Presence: member.Presence(r.URL.Query().Get("presence")),
	}

	members, err := h.directoryService.ListMembers(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, members, &response.Meta{Total: len(members)})
}

// Get implements MemberHandler.
func (h *memberHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Member ID is required", nil)
		return
	}

	m, err := h.directoryService.GetMember(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, m)
}

// Create implements MemberHandler.
func (h *memberHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req member.RegisterMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateMember decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	m, err := h.directoryService.CreateMember(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Member created", m)
}

// Update implements MemberHandler.
func (h *memberHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Member ID is required", nil)
		return
	}

	var req member.UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateMember decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	m, err := h.directoryService.UpdateMember(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Member updated", m)
}

// Delete implements MemberHandler.
func (h *memberHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Member ID is required", nil)
		return
	}

	if err := h.directoryService.DeleteMember(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Member deleted", nil)
}

// ListLeaders implements MemberHandler.
func (h *memberHandlerImpl) ListLeaders(w http.ResponseWriter, r *http.Request) {
	leaders, err := h.directoryService.ListLeaders(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, leaders, &response.Meta{Total: len(leaders)})
}

// CreateLeader implements MemberHandler.
func (h *memberHandlerImpl) CreateLeader(w http.ResponseWriter, r *http.Request) {
	var req member.RegisterLeaderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateLeader decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	l, err := h.directoryService.CreateLeader(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leader created", l)
}

// UpdateLeader implements MemberHandler.
func (h *memberHandlerImpl) UpdateLeader(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leader ID is required", nil)
		return
	}

	var req member.UpdateLeaderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateLeader decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	l, err := h.directoryService.UpdateLeader(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leader updated", l)
}

// DeleteLeader implements MemberHandler.
func (h *memberHandlerImpl) DeleteLeader(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leader ID is required", nil)
		return
	}

	if err := h.directoryService.DeleteLeader(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leader deleted", nil)
}
