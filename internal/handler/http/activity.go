package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/activity"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/response"
)

type ActivityHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type activityHandlerImpl struct {
	activityService activity.ActivityService
}

func NewActivityHandler(activityService activity.ActivityService) ActivityHandler {
	return &activityHandlerImpl{activityService: activityService}
}

// List handles GET /activity?limit=N
func (h *activityHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	limit := getIntQueryParam(r, "limit", activity.DefaultListLimit)

	entries, err := h.activityService.List(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, entries, &response.Meta{Total: len(entries)})
}
