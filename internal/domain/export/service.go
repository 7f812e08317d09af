package export

import "context"

// ExportService renders the member directory as spreadsheets (admin only)
type ExportService interface {
	MembersCSV(ctx context.Context, variant Variant) (File, error)
	MembersXLSX(ctx context.Context) (File, error)
}
