package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/task"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TaskHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &taskHandlerImpl{taskService: taskService}
}

// List implements TaskHandler.
func (h *taskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := task.ListFilter{Status: task.Status(r.URL.Query().Get("status"))}

	tasks, err := h.taskService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, tasks, &response.Meta{Total: len(tasks)})
}

// Create implements TaskHandler.
func (h *taskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req task.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateTask decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	t, err := h.taskService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task assigned", t)
}

// Stats implements TaskHandler.
func (h *taskHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.taskService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// UpdateStatus implements TaskHandler.
func (h *taskHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Task ID is required", nil)
		return
	}

	var req task.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateTaskStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	t, err := h.taskService.UpdateStatus(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task status updated", t)
}

// Delete implements TaskHandler.
func (h *taskHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Task ID is required", nil)
		return
	}

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task deleted", nil)
}
