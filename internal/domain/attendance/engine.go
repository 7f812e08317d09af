package attendance

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jsonx"
	"github.com/shopspring/decimal"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ParseClock converts "HH:MM" to minutes since midnight.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return h*60 + m, nil
}

// DateKey is the local calendar date of t, used as the per-day record key.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// Clock is the local "HH:MM" of t.
func Clock(t time.Time) string {
	return t.Format(ClockLayout)
}

func minutesOf(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// IndexOf returns the position of the record for date, or -1.
func IndexOf(records []Record, date string) int {
	return slices.IndexFunc(records, func(r Record) bool { return r.Date == date })
}

// CheckIn records the actual check-in for now's date. An existing record for
// the date without a check-in is updated in place; otherwise one is appended.
func CheckIn(records []Record, sched Schedule, now time.Time, by string) ([]Record, Record, error) {
	date := DateKey(now)
	idx := IndexOf(records, date)
	if idx >= 0 && records[idx].IsCheckedIn() {
		return records, Record{}, ErrAlreadyCheckedIn
	}

	scheduled, err := ParseClock(sched.CheckIn)
	if err != nil {
		return records, Record{}, fmt.Errorf("scheduled check-in: %w", err)
	}

	actual := Clock(now)
	late := max(0, minutesOf(now)-scheduled)
	status := StatusOnTime
	if late > 0 {
		status = StatusLate
	}

	rec := Record{
		Date:              date,
		ScheduledCheckIn:  sched.CheckIn,
		ScheduledCheckOut: sched.CheckOut,
		ActualCheckIn:     &actual,
		LateMinutes:       late,
		Status:            status,
		CheckedInBy:       by,
	}

	out := slices.Clone(records)
	if idx >= 0 {
		out[idx] = rec
	} else {
		out = append(out, rec)
	}
	return out, rec, nil
}

// CheckOut completes now's record. A positive early-leave overwrites the
// status set at check-in, even when that status was late.
func CheckOut(records []Record, sched Schedule, now time.Time) ([]Record, Record, error) {
	idx := IndexOf(records, DateKey(now))
	if idx < 0 || !records[idx].IsCheckedIn() {
		return records, Record{}, ErrNotCheckedIn
	}
	rec := records[idx]
	if rec.IsCheckedOut() {
		return records, Record{}, ErrAlreadyCheckedOut
	}

	in, err := ParseClock(*rec.ActualCheckIn)
	if err != nil {
		return records, Record{}, fmt.Errorf("recorded check-in: %w", err)
	}
	scheduledOut, err := ParseClock(sched.CheckOut)
	if err != nil {
		return records, Record{}, fmt.Errorf("scheduled check-out: %w", err)
	}

	outMinutes := minutesOf(now)
	if outMinutes < in {
		return records, Record{}, ErrCheckOutBeforeCheckIn
	}

	actual := Clock(now)
	rec.ActualCheckOut = &actual
	rec.ScheduledCheckOut = sched.CheckOut
	rec.EarlyMinutes = max(0, scheduledOut-outMinutes)
	if rec.EarlyMinutes > 0 {
		rec.Status = StatusEarlyLeave
	}
	hours := jsonx.NewFixed2(WorkHours(in, outMinutes))
	rec.WorkHours = &hours

	out := slices.Clone(records)
	out[idx] = rec
	return out, rec, nil
}

// WorkHours is (out - in) / 60 rounded to two decimals.
func WorkHours(inMinutes, outMinutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(outMinutes - inMinutes)).
		Div(decimal.NewFromInt(60)).
		Round(2)
}

// InMonth returns the records dated in the given month and year.
func InMonth(records []Record, year int, month time.Month) []Record {
	var result []Record
	for _, r := range records {
		d, err := time.Parse(DateLayout, r.Date)
		if err != nil {
			continue
		}
		if d.Year() == year && d.Month() == month {
			result = append(result, r)
		}
	}
	return result
}

// IsOnShift reports whether now's hour falls within [checkIn hour, checkOut hour).
// A member without a parseable schedule is never on shift.
func IsOnShift(checkIn, checkOut string, now time.Time) bool {
	in, err := ParseClock(checkIn)
	if err != nil {
		return false
	}
	out, err := ParseClock(checkOut)
	if err != nil {
		return false
	}
	hour := now.Hour()
	return hour >= in/60 && hour < out/60
}
