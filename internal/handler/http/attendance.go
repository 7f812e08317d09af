package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	ListMemberAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.CheckIn(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked in", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.CheckOut(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out", result)
}

// GetMyAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseMonthFilter(w, r)
	if !ok {
		return
	}

	records, err := h.attendanceService.GetMyAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, records, &response.Meta{Total: len(records)})
}

// ListMemberAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListMemberAttendance(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "id")
	if memberID == "" {
		response.BadRequest(w, "Member ID is required", nil)
		return
	}

	filter, ok := parseMonthFilter(w, r)
	if !ok {
		return
	}

	records, err := h.attendanceService.ListMemberAttendance(r.Context(), memberID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, records, &response.Meta{Total: len(records)})
}

func parseMonthFilter(w http.ResponseWriter, r *http.Request) (attendance.MonthFilter, bool) {
	var filter attendance.MonthFilter
	var ok bool

	if filter.Month, ok = queryInt(w, r, "month"); !ok {
		return filter, false
	}
	if filter.Year, ok = queryInt(w, r, "year"); !ok {
		return filter, false
	}
	return filter, true
}

// queryInt reads an optional integer query parameter. A malformed value is
// answered with 400 and reported as not ok.
func queryInt(w http.ResponseWriter, r *http.Request, key string) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		response.BadRequest(w, "Invalid query parameter", map[string]string{key: "must be an integer"})
		return 0, false
	}
	return n, true
}
