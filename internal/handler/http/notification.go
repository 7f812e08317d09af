package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/notification"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// NotificationHandler defines the notification handler interface
type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkAsRead(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notifService notification.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notifService notification.NotificationService) NotificationHandler {
	return &notificationHandlerImpl{
		notifService: notifService,
	}
}

// getIntQueryParam gets an int query parameter with a default value
func getIntQueryParam(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// getBoolQueryParam gets a bool query parameter with a default value
func getBoolQueryParam(r *http.Request, key string, defaultVal bool) bool {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	return val == "true" || val == "1"
}

// List returns the authenticated actor's notifications
func (h *notificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := notification.ListRequest{
		UnreadOnly: getBoolQueryParam(r, "unread_only", false),
	}

	result, err := h.notifService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Notifications, &response.Meta{
		Total:       len(result.Notifications),
		UnreadCount: result.UnreadCount,
	})
}

// MarkAsRead marks a single notification as read
func (h *notificationHandlerImpl) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Notification ID is required", nil)
		return
	}

	if err := h.notifService.MarkAsRead(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification marked as read", nil)
}
