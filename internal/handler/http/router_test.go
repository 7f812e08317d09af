package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/config"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/testutil"
	activityService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/activity"
	attendanceService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/attendance"
	authService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/auth"
	backupService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/backup"
	evaluationService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/evaluation"
	exportService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/export"
	memberService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/member"
	notificationService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/notification"
	payrollService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/payroll"
	preferenceService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/preference"
	reportService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/report"
	requestService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/request"
	taskService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/task"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	handlerTestAccessExp = "1h"
	handlerTestSecret    = "test-secret-key-for-jwt"
	handlerTestAdminPass = "s3cret"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	// 10:00 on a Monday, inside the 09:00-17:00 shift
	clock := testutil.NewClock(time.Date(2025, 3, 10, 10, 0, 0, 0, time.Local))
	repo := testutil.NewRepository(t, clock)

	// Tokens are verified against the wall clock.
	jwtService, err := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, time.Now)
	require.NoError(t, err)

	admin := config.AdminConfig{Names: []string{"fares akram"}, Password: handlerTestAdminPass}
	handlers := Handlers{
		Auth:         NewAuthHandler(authService.NewAuthService(repo, admin, jwtService, clock.Now)),
		Preference:   NewPreferenceHandler(preferenceService.NewPreferenceService(repo)),
		Attendance:   NewAttendanceHandler(attendanceService.NewAttendanceService(repo, clock.Now)),
		Member:       NewMemberHandler(memberService.NewDirectoryService(repo, clock.Now)),
		Evaluation:   NewEvaluationHandler(evaluationService.NewEvaluationService(repo, clock.Now)),
		Report:       NewReportHandler(reportService.NewReportService(repo, clock.Now)),
		Payroll:      NewPayrollHandler(payrollService.NewPayrollService(repo, payroll.DefaultPolicy(), clock.Now)),
		Task:         NewTaskHandler(taskService.NewTaskService(repo, clock.Now)),
		Request:      NewRequestHandler(requestService.NewRequestService(repo, clock.Now)),
		Notification: NewNotificationHandler(notificationService.NewNotificationService(repo, clock.Now)),
		Activity:     NewActivityHandler(activityService.NewActivityService(repo)),
		Backup: NewBackupHandler(
			backupService.NewBackupService(repo, 24*time.Hour, clock.Now),
			exportService.NewExportService(repo, clock.Now),
		),
	}

	cfg := RouterConfig{Env: "test", LogLevel: slog.LevelError, AllowedOrigins: []string{"http://localhost:3000"}}
	return NewRouter(cfg, jwtService, handlers)
}

func do(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if data != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func registerMember(t *testing.T, router http.Handler) string {
	t.Helper()
	rec := do(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"role":     "member",
		"name":     "Sara",
		"password": "2388",
		"whatsapp": "+966501234567",
		"email":    "sara@example.com",
		"dayOff":   "Friday",
		"checkIn":  "09:00",
		"checkOut": "17:00",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var tokens auth.TokenResponse
	decode(t, rec, &tokens)
	require.NotEmpty(t, tokens.AccessToken)
	return tokens.AccessToken
}

func loginAdmin(t *testing.T, router http.Handler) string {
	t.Helper()
	rec := do(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"role":     "admin",
		"name":     "Fares Akram",
		"password": handlerTestAdminPass,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var tokens auth.TokenResponse
	decode(t, rec, &tokens)
	return tokens.AccessToken
}

func TestMemberAttendanceFlow(t *testing.T) {
	router := newTestRouter(t)
	token := registerMember(t, router)

	rec := do(t, router, http.MethodPost, "/api/v1/attendance/check-in", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decode(t, rec, nil).Success)

	rec = do(t, router, http.MethodPost, "/api/v1/attendance/check-in", token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decode(t, rec, nil)
	assert.False(t, env.Success)
	assert.Equal(t, "CONFLICT", env.Error.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/attendance/me?month=3&year=2025", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var records []map[string]any
	decode(t, rec, &records)
	assert.Len(t, records, 1)

	rec = do(t, router, http.MethodGet, "/api/v1/attendance/me?month=march", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	router := newTestRouter(t)
	token := registerMember(t, router)

	rec := do(t, router, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/api/v1/preferences", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthorization(t *testing.T) {
	router := newTestRouter(t)
	member := registerMember(t, router)
	admin := loginAdmin(t, router)

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"anonymous", http.MethodGet, "/api/v1/tasks", "", http.StatusUnauthorized},
		{"garbage token", http.MethodGet, "/api/v1/tasks", "nope", http.StatusUnauthorized},
		{"member dashboard", http.MethodGet, "/api/v1/dashboard", member, http.StatusForbidden},
		{"member directory", http.MethodGet, "/api/v1/members", member, http.StatusForbidden},
		{"member backup", http.MethodGet, "/api/v1/backup", member, http.StatusForbidden},
		{"admin check-in", http.MethodPost, "/api/v1/attendance/check-in", admin, http.StatusForbidden},
		{"admin dashboard", http.MethodGet, "/api/v1/dashboard", admin, http.StatusOK},
		{"admin activity", http.MethodGet, "/api/v1/activity?limit=5", admin, http.StatusOK},
		{"member tasks", http.MethodGet, "/api/v1/tasks", member, http.StatusOK},
		{"unknown member", http.MethodGet, "/api/v1/members/missing", admin, http.StatusNotFound},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := do(t, router, c.method, c.path, c.token, nil)
			assert.Equal(t, c.want, rec.Code, rec.Body.String())
		})
	}
}

func TestAdminDirectoryAndExports(t *testing.T) {
	router := newTestRouter(t)
	registerMember(t, router)
	admin := loginAdmin(t, router)

	rec := do(t, router, http.MethodPost, "/api/v1/members", admin, map[string]string{"name": ""})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decode(t, rec, nil)
	assert.Contains(t, env.Error.Details, "name")

	rec = do(t, router, http.MethodPost, "/api/v1/members", admin, map[string]string{
		"name": "sara", "password": "1234", "whatsapp": "+966500000002", "email": "s2@example.com",
		"dayOff": "Friday", "checkIn": "09:00", "checkOut": "17:00",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/members?q=SAR&presence=present", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var members []map[string]any
	decode(t, rec, &members)
	require.Len(t, members, 1)
	assert.Equal(t, "Sara", members[0]["name"])
	assert.NotContains(t, members[0], "passwordHash")

	rec = do(t, router, http.MethodGet, "/api/v1/exports/members.csv?variant=basic", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/csv"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte{0xEF, 0xBB, 0xBF}))

	rec = do(t, router, http.MethodGet, "/api/v1/exports/members.csv?variant=fancy", admin, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/backup", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var b struct {
		Version string          `json:"version"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	assert.Equal(t, "1.0", b.Version)

	rec = do(t, router, http.MethodPost, "/api/v1/backup/restore", admin, map[string]any{"confirm": false, "backup": b})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/v1/backup/restore", admin, map[string]any{"confirm": true, "backup": b})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRequestReviewFlow(t *testing.T) {
	router := newTestRouter(t)
	member := registerMember(t, router)
	admin := loginAdmin(t, router)

	rec := do(t, router, http.MethodPost, "/api/v1/requests", member, map[string]any{
		"type": "break", "duration": 30, "reason": "prayer",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	decode(t, rec, &created)

	rec = do(t, router, http.MethodGet, "/api/v1/requests/pending-count", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var count map[string]int
	decode(t, rec, &count)
	assert.Equal(t, 1, count["count"])

	rec = do(t, router, http.MethodPost, "/api/v1/requests/"+created.ID+"/reject", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodPost, "/api/v1/requests/"+created.ID+"/approve", admin, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/notifications", member, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var notes []struct {
		ID string `json:"id"`
	}
	decode(t, rec, &notes)
	require.Len(t, notes, 1)

	rec = do(t, router, http.MethodPost, "/api/v1/notifications/"+notes[0].ID+"/read", admin, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/v1/notifications/"+notes[0].ID+"/read", member, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
