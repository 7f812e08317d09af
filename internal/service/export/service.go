package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/export"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/member"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/store"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
	"github.com/xuri/excelize/v2"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	sheetName       = "الأعضاء"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type ExportServiceImpl struct {
	repo store.Repository
	now  func() time.Time
}

func NewExportService(repo store.Repository, now func() time.Time) export.ExportService {
	return &ExportServiceImpl{repo: repo, now: now}
}

// MembersCSV implements export.ExportService.
func (s *ExportServiceImpl) MembersCSV(ctx context.Context, variant export.Variant) (export.File, error) {
	if _, err := user.RequireFromContext(ctx, user.PermissionExport); err != nil {
		return export.File{}, err
	}
	if variant == "" {
		variant = export.VariantBasic
	}
	if variant != export.VariantBasic && variant != export.VariantEnhanced {
		return export.File{}, validator.ValidationErrors{{Field: "variant", Message: export.ErrInvalidVariant.Error()}}
	}

	now := s.now()
	members, err := s.members(ctx)
	if err != nil {
		return export.File{}, err
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)

	header, row := export.BasicHeader, basicRow
	if variant == export.VariantEnhanced {
		header, row = export.EnhancedHeader, enhancedRow
	}
	if err := w.Write(header); err != nil {
		return export.File{}, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, m := range members {
		if err := w.Write(row(m, now)); err != nil {
			return export.File{}, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return export.File{}, fmt.Errorf("failed to flush csv: %w", err)
	}

	return export.File{
		Name:        fileName(variant, now, "csv"),
		ContentType: contentTypeCSV,
		Body:        buf.Bytes(),
	}, nil
}

// MembersXLSX implements export.ExportService.
func (s *ExportServiceImpl) MembersXLSX(ctx context.Context) (export.File, error) {
	if _, err := user.RequireFromContext(ctx, user.PermissionExport); err != nil {
		return export.File{}, err
	}

	now := s.now()
	members, err := s.members(ctx)
	if err != nil {
		return export.File{}, err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return export.File{}, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return export.File{}, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	rtl := true
	if err := f.SetSheetView(sheetName, -1, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
		return export.File{}, fmt.Errorf("failed to set sheet view: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return export.File{}, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := setRow(f, 1, export.EnhancedHeader); err != nil {
		return export.File{}, err
	}
	last, _ := excelize.ColumnNumberToName(len(export.EnhancedHeader))
	f.SetCellStyle(sheetName, "A1", last+"1", headerStyle)
	f.SetColWidth(sheetName, "A", last, 18)

	for i, m := range members {
		if err := setRow(f, i+2, enhancedRow(m, now)); err != nil {
			return export.File{}, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return export.File{}, fmt.Errorf("failed to write workbook: %w", err)
	}

	return export.File{
		Name:        fileName(export.VariantEnhanced, now, "xlsx"),
		ContentType: contentTypeXLSX,
		Body:        buf.Bytes(),
	}, nil
}

func (s *ExportServiceImpl) members(ctx context.Context) ([]member.Member, error) {
	var members []member.Member
	err := s.repo.View(ctx, func(doc *store.Document) error {
		members = doc.Members
		return nil
	})
	return members, err
}

func setRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

func basicRow(m member.Member, now time.Time) []string {
	presence := export.LabelAbsent
	if member.IsPresent(m, now) {
		presence = export.LabelPresent
	}
	return []string{m.Name, m.WhatsApp, m.Email, m.DayOff, m.CheckIn, m.CheckOut, presence}
}

func enhancedRow(m member.Member, _ time.Time) []string {
	salary, rating := "", ""
	if m.BaseSalary != nil {
		salary = m.BaseSalary.StringFixed(2)
	}
	if m.AverageRating != nil {
		rating = m.AverageRating.StringFixed(2)
	}
	return []string{
		m.Name, m.WhatsApp, m.Email, m.DayOff, m.CheckIn, m.CheckOut,
		salary, rating, strconv.Itoa(m.WarningsCount), strconv.Itoa(m.AttendanceDays()),
	}
}

func fileName(variant export.Variant, now time.Time, ext string) string {
	return fmt.Sprintf("members-%s-%s.%s", variant, now.Format(time.DateOnly), ext)
}
