package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/config"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/payroll"
	appHTTP "github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/storage"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/repository/document"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/repository/sqlite"
	activityService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/activity"
	attendanceService "github.com/cmlabs-hris/attendance-tracker-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/attendance-tracker-go/internal/service/auth"
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
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	blobs, err := openBlobStore(ctx, cfg.Storage, cfg.DatabaseURL())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := blobs.Close(); cerr != nil {
			slog.Error("failed to close storage", "error", cerr)
		}
	}()

	now := time.Now
	repo := document.NewRepository(blobs, now)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, now)
	if err != nil {
		return err
	}

	backupSvc := backupService.NewBackupService(repo, cfg.Storage.AutoBackupInterval, now)
	if _, err := backupSvc.AutoSnapshot(ctx); err != nil {
		slog.Warn("auto snapshot failed", "error", err)
	}

	authService := serviceAuth.NewAuthService(repo, cfg.Admin, JWTService, now)
	attendanceSvc := attendanceService.NewAttendanceService(repo, now)
	directoryService := memberService.NewDirectoryService(repo, now)
	evaluationSvc := evaluationService.NewEvaluationService(repo, now)
	reportSvc := reportService.NewReportService(repo, now)
	payrollSvc := payrollService.NewPayrollService(repo, payroll.DefaultPolicy(), now)
	taskSvc := taskService.NewTaskService(repo, now)
	requestSvc := requestService.NewRequestService(repo, now)
	notificationSvc := notificationService.NewNotificationService(repo, now)
	activitySvc := activityService.NewActivityService(repo)
	preferenceSvc := preferenceService.NewPreferenceService(repo)
	exportSvc := exportService.NewExportService(repo, now)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:            cfg.App.Env,
			LogLevel:       cfg.SlogLevel(),
			AllowedOrigins: cfg.App.CORSAllowedOrigins,
		},
		JWTService,
		appHTTP.Handlers{
			Auth:         appHTTP.NewAuthHandler(authService),
			Preference:   appHTTP.NewPreferenceHandler(preferenceSvc),
			Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
			Member:       appHTTP.NewMemberHandler(directoryService),
			Evaluation:   appHTTP.NewEvaluationHandler(evaluationSvc),
			Report:       appHTTP.NewReportHandler(reportSvc),
			Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
			Task:         appHTTP.NewTaskHandler(taskSvc),
			Request:      appHTTP.NewRequestHandler(requestSvc),
			Notification: appHTTP.NewNotificationHandler(notificationSvc),
			Activity:     appHTTP.NewActivityHandler(activitySvc),
			Backup:       appHTTP.NewBackupHandler(backupSvc, exportSvc),
		},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	scheduler := cron.NewScheduler()
	cron.RegisterBackupJobs(scheduler, backupSvc)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return scheduler.Run(gCtx)
	})
	g.Go(func() error {
		slog.Info("server running", "addr", server.Addr, "storage", cfg.Storage.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		slog.Info("shutting down server")
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openBlobStore opens the backend selected by STORAGE_DRIVER.
func openBlobStore(ctx context.Context, cfg config.StorageConfig, dsn string) (storage.BlobStore, error) {
	switch cfg.Driver {
	case config.StorageFile:
		blobs, err := storage.NewLocalStorage(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
		return blobs, nil

	case config.StoragePostgres:
		db, err := database.NewPostgreSQLDB(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("error connecting to database: %w", err)
		}
		blobs, err := postgresql.NewBlobStore(ctx, db)
		if err != nil {
			db.Close()
			return nil, err
		}
		return blobs, nil

	case config.StorageSQLite:
		db, err := database.NewSQLiteDB(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("error opening sqlite: %w", err)
		}
		blobs, err := sqlite.NewBlobStore(ctx, db)
		if err != nil {
			db.Close()
			return nil, err
		}
		return blobs, nil
	}
	return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
}
