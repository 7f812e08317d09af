package report

import (
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/member"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/task"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jsonx"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// MonthlyReport aggregates one member's attendance for a calendar month.
// NoData is set instead of dividing when the month has no records.
type MonthlyReport struct {
	MemberID          string       `json:"memberId"`
	MemberName        string       `json:"memberName"`
	Month             int          `json:"month"`
	Year              int          `json:"year"`
	TotalDays         int          `json:"totalDays"`
	OnTimeDays        int          `json:"onTimeDays"`
	LateDays          int          `json:"lateDays"`
	EarlyLeaveDays    int          `json:"earlyLeaveDays"`
	TotalLateMinutes  int          `json:"totalLateMinutes"`
	TotalEarlyMinutes int          `json:"totalEarlyMinutes"`
	TotalWorkHours    jsonx.Fixed2 `json:"totalWorkHours"`
	AverageWorkHours  jsonx.Fixed2 `json:"averageWorkHours"`
	AttendanceRate    jsonx.Fixed1 `json:"attendanceRate"`
	NoData            bool         `json:"noData"`
}

// Monthly builds the report over the records dated in month/year.
func Monthly(records []attendance.Record, year int, month time.Month) MonthlyReport {
	r := MonthlyReport{Month: int(month), Year: year}
	total := decimal.Zero

	monthly := attendance.InMonth(records, year, month)
	r.TotalDays = len(monthly)
	for _, rec := range monthly {
		switch rec.Status {
		case attendance.StatusOnTime:
			r.OnTimeDays++
		case attendance.StatusLate:
			r.LateDays++
		case attendance.StatusEarlyLeave:
			r.EarlyLeaveDays++
		}
		r.TotalLateMinutes += rec.LateMinutes
		r.TotalEarlyMinutes += rec.EarlyMinutes
		if rec.WorkHours != nil {
			total = total.Add(rec.WorkHours.Decimal)
		}
	}
	total = total.Round(2)
	r.TotalWorkHours = jsonx.NewFixed2(total)

	if r.TotalDays == 0 {
		r.NoData = true
		r.AverageWorkHours = jsonx.NewFixed2(decimal.Zero)
		r.AttendanceRate = jsonx.NewFixed1(decimal.Zero)
		return r
	}

	days := decimal.NewFromInt(int64(r.TotalDays))
	r.AverageWorkHours = jsonx.NewFixed2(total.Div(days).Round(2))
	r.AttendanceRate = jsonx.NewFixed1(decimal.NewFromInt(int64(r.OnTimeDays)).Mul(hundred).Div(days).Round(1))
	return r
}

// Overview is the admin dashboard snapshot.
type Overview struct {
	TotalMembers    int           `json:"totalMembers"`
	TotalLeaders    int           `json:"totalLeaders"`
	PresentNow      int           `json:"presentNow"`
	AbsentNow       int           `json:"absentNow"`
	AttendanceRate  jsonx.Fixed1  `json:"attendanceRate"`
	AverageRating   *jsonx.Fixed2 `json:"averageRating"`
	TotalTasks      int           `json:"totalTasks"`
	CompletedTasks  int           `json:"completedTasks"`
	TotalWarnings   int           `json:"totalWarnings"`
	PendingRequests int           `json:"pendingRequests"`
	GeneratedAt     time.Time     `json:"generatedAt"`
}

// BuildOverview computes the dashboard over all members' full history. The
// attendance rate is the share of on-time records; the average rating is
// taken over rated members only.
func BuildOverview(members []member.Member, leaders int, tasks []task.Task, pendingRequests int, now time.Time) Overview {
	o := Overview{
		TotalMembers:    len(members),
		TotalLeaders:    leaders,
		AttendanceRate:  jsonx.NewFixed1(decimal.Zero),
		TotalTasks:      len(tasks),
		PendingRequests: pendingRequests,
		GeneratedAt:     now,
	}

	records, onTime := 0, 0
	ratingSum, rated := decimal.Zero, 0
	for _, m := range members {
		if member.IsPresent(m, now) {
			o.PresentNow++
		} else {
			o.AbsentNow++
		}
		for _, r := range m.Attendance {
			records++
			if r.Status == attendance.StatusOnTime {
				onTime++
			}
		}
		if m.AverageRating != nil {
			ratingSum = ratingSum.Add(m.AverageRating.Decimal)
			rated++
		}
		o.TotalWarnings += m.WarningsCount
	}

	if records > 0 {
		rate := decimal.NewFromInt(int64(onTime)).Mul(hundred).Div(decimal.NewFromInt(int64(records))).Round(1)
		o.AttendanceRate = jsonx.NewFixed1(rate)
	}
	if rated > 0 {
		avg := jsonx.NewFixed2(ratingSum.Div(decimal.NewFromInt(int64(rated))).Round(2))
		o.AverageRating = &avg
	}
	o.CompletedTasks = task.Tally(tasks).Completed
	return o
}
