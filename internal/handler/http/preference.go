package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/preference"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/response"
)

type PreferenceHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type preferenceHandlerImpl struct {
	preferenceService preference.PreferenceService
}

func NewPreferenceHandler(preferenceService preference.PreferenceService) PreferenceHandler {
	return &preferenceHandlerImpl{preferenceService: preferenceService}
}

// Get implements PreferenceHandler.
func (h *preferenceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.preferenceService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, prefs)
}

// Update implements PreferenceHandler.
func (h *preferenceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req preference.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdatePreferences decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	prefs, err := h.preferenceService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Preferences updated", prefs)
}
