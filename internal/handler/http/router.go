package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterConfig carries the settings the router needs from the app config.
type RouterConfig struct {
	Env            string
	LogLevel       slog.Level
	AllowedOrigins []string
}

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth         AuthHandler
	Preference   PreferenceHandler
	Attendance   AttendanceHandler
	Member       MemberHandler
	Evaluation   EvaluationHandler
	Report       ReportHandler
	Payroll      PayrollHandler
	Task         TaskHandler
	Request      RequestHandler
	Notification NotificationHandler
	Activity     ActivityHandler
	Backup       BackupHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-tracker"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/auth/logout", h.Auth.Logout)

			r.Route("/preferences", func(r chi.Router) {
				r.Get("/", h.Preference.Get)
				r.Put("/", h.Preference.Update)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAttendanceRecord)).Post("/check-in", h.Attendance.CheckIn)
				r.With(middleware.RequirePermission(user.PermissionAttendanceRecord)).Post("/check-out", h.Attendance.CheckOut)
				r.With(middleware.RequirePermission(user.PermissionAttendanceViewOwn)).Get("/me", h.Attendance.GetMyAttendance)
			})

			r.Route("/members", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionMemberView)).Get("/", h.Member.List)
				r.With(middleware.RequirePermission(user.PermissionMemberManage)).Post("/", h.Member.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionMemberView)).Get("/", h.Member.Get)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionMemberManage))
						r.Put("/", h.Member.Update)
						r.Delete("/", h.Member.Delete)
					})

					r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).Get("/attendance", h.Attendance.ListMemberAttendance)
					r.With(middleware.RequirePermission(user.PermissionReportsView)).Get("/report", h.Report.GetMonthlyReport)
					r.With(middleware.RequirePermission(user.PermissionSalaryView)).Get("/salary", h.Payroll.GetSalary)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionEvaluationCreate))
						r.Post("/ratings", h.Evaluation.Rate)
						r.Post("/notes", h.Evaluation.AddNote)
					})
				})
			})

			r.Route("/leaders", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionLeaderManage))
				r.Get("/", h.Member.ListLeaders)
				r.Post("/", h.Member.CreateLeader)
				r.Put("/{id}", h.Member.UpdateLeader)
				r.Delete("/{id}", h.Member.DeleteLeader)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.Task.List)
				r.Get("/stats", h.Task.Stats)
				r.With(middleware.RequirePermission(user.PermissionTaskAssign)).Post("/", h.Task.Create)
				r.With(middleware.RequireAnyPermission(user.PermissionTaskUpdateAll, user.PermissionTaskUpdateOwn)).Patch("/{id}/status", h.Task.UpdateStatus)
				r.With(middleware.RequirePermission(user.PermissionTaskDelete)).Delete("/{id}", h.Task.Delete)
			})

			r.Route("/requests", func(r chi.Router) {
				r.With(middleware.RequireAnyPermission(user.PermissionRequestViewAll, user.PermissionRequestViewOwn)).Get("/", h.Request.List)
				r.With(middleware.RequirePermission(user.PermissionRequestCreate)).Post("/", h.Request.Create)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionRequestReview))
					r.Get("/pending-count", h.Request.PendingCount)
					r.Post("/{id}/approve", h.Request.Approve)
					r.Post("/{id}/reject", h.Request.Reject)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Post("/{id}/read", h.Notification.MarkAsRead)
			})

			r.With(middleware.RequirePermission(user.PermissionDashboardView)).Get("/dashboard", h.Report.GetOverview)
			r.With(middleware.RequirePermission(user.PermissionActivityView)).Get("/activity", h.Activity.List)

			r.Route("/backup", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionBackupManage))
				r.Get("/", h.Backup.Download)
				r.Post("/restore", h.Backup.Restore)
			})

			r.Route("/exports", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionExport))
				r.Get("/members.csv", h.Backup.MembersCSV)
				r.Get("/members.xlsx", h.Backup.MembersXLSX)
			})
		})
	})
	return r
}
