package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/export"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/member"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jsonx"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func seed(t *testing.T) (*ExportServiceImpl, *testutil.Clock) {
	t.Helper()
	clock := testutil.NewClock(time.Date(2025, 3, 10, 10, 0, 0, 0, time.Local))
	repo := testutil.NewRepository(t, clock)

	sara := testutil.Sara()
	salary := decimal.NewFromInt(5000)
	rating := jsonx.NewFixed2(decimal.RequireFromString("4.5"))
	sara.BaseSalary = &salary
	sara.AverageRating = &rating
	sara.WarningsCount = 1
	in1, in2 := "09:00", "09:05"
	sara.Attendance = []attendance.Record{
		{Date: "2025-03-09", ActualCheckIn: &in1},
		{Date: "2025-03-10", ActualCheckIn: &in2},
		{Date: "2025-03-11"},
	}

	night := member.Member{ID: "m2", Name: "Omar, Jr.", WhatsApp: "+966500000000", Email: "omar@example.com", DayOff: "Saturday", CheckIn: "22:00", CheckOut: "06:00"}
	testutil.Seed(t, repo, []member.Member{sara, night})

	return NewExportService(repo, clock.Now).(*ExportServiceImpl), clock
}

func TestMembersCSV_Basic(t *testing.T) {
	svc, _ := seed(t)

	file, err := svc.MembersCSV(testutil.As(testutil.Admin), export.VariantBasic)
	require.NoError(t, err)
	assert.Equal(t, "members-basic-2025-03-10.csv", file.Name)
	require.True(t, bytes.HasPrefix(file.Body, utf8BOM))

	rows, err := csv.NewReader(bytes.NewReader(file.Body[len(utf8BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, export.BasicHeader, rows[0])
	assert.Equal(t, []string{"Sara", "+966501234567", "sara@example.com", "Friday", "09:00", "17:00", export.LabelPresent}, rows[1])
	assert.Equal(t, "Omar, Jr.", rows[2][0], "commas survive escaping")
	assert.Equal(t, export.LabelAbsent, rows[2][6])
}

func TestMembersCSV_Enhanced(t *testing.T) {
	svc, _ := seed(t)

	file, err := svc.MembersCSV(testutil.As(testutil.Admin), export.VariantEnhanced)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(file.Body[len(utf8BOM):])).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, export.EnhancedHeader, rows[0])
	assert.Equal(t, []string{"5000.00", "4.50", "1", "2"}, rows[1][6:])
	assert.Equal(t, []string{"", "", "0", "0"}, rows[2][6:])
}

func TestMembersCSV_Rejected(t *testing.T) {
	svc, _ := seed(t)

	_, err := svc.MembersCSV(testutil.As(testutil.Admin), "fancy")
	assert.ErrorContains(t, err, export.ErrInvalidVariant.Error())

	_, err = svc.MembersCSV(testutil.As(testutil.Leader), export.VariantBasic)
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)
}

func TestMembersXLSX(t *testing.T) {
	svc, _ := seed(t)

	file, err := svc.MembersXLSX(testutil.As(testutil.Admin))
	require.NoError(t, err)
	assert.Equal(t, contentTypeXLSX, file.ContentType)

	f, err := excelize.OpenReader(bytes.NewReader(file.Body))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, export.EnhancedHeader, rows[0])
	assert.Equal(t, "Sara", rows[1][0])
	assert.Equal(t, "5000.00", rows[1][6])
}
