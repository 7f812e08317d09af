package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/backup"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/export"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/handler/http/response"
)

// maxRestoreBytes bounds an uploaded backup.
const maxRestoreBytes = 32 << 20

type BackupHandler interface {
	Download(w http.ResponseWriter, r *http.Request)
	Restore(w http.ResponseWriter, r *http.Request)

	MembersCSV(w http.ResponseWriter, r *http.Request)
	MembersXLSX(w http.ResponseWriter, r *http.Request)
}

type backupHandlerImpl struct {
	backupService backup.BackupService
	exportService export.ExportService
}

func NewBackupHandler(backupService backup.BackupService, exportService export.ExportService) BackupHandler {
	return &backupHandlerImpl{
		backupService: backupService,
		exportService: exportService,
	}
}

// Download handles GET /backup
func (h *backupHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	b, err := h.backupService.Export(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	body, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		response.HandleError(w, fmt.Errorf("failed to encode backup: %w", err))
		return
	}

	name := fmt.Sprintf("backup-%s.json", b.Timestamp.Format("2006-01-02"))
	response.Attachment(w, name, "application/json", body)
}

// Restore handles POST /backup/restore
func (h *backupHandlerImpl) Restore(w http.ResponseWriter, r *http.Request) {
	var req backup.RestoreRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRestoreBytes)).Decode(&req); err != nil {
		slog.Error("Restore decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.backupService.Restore(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Backup restored", nil)
}

// MembersCSV handles GET /exports/members.csv?variant=basic|enhanced
func (h *backupHandlerImpl) MembersCSV(w http.ResponseWriter, r *http.Request) {
	variant := export.Variant(r.URL.Query().Get("variant"))

	file, err := h.exportService.MembersCSV(r.Context(), variant)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, file.Name, file.ContentType, file.Body)
}

// MembersXLSX handles GET /exports/members.xlsx
func (h *backupHandlerImpl) MembersXLSX(w http.ResponseWriter, r *http.Request) {
	file, err := h.exportService.MembersXLSX(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, file.Name, file.ContentType, file.Body)
}
