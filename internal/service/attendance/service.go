package attendance

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/activity"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/store"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/utils"
)

type AttendanceServiceImpl struct {
	repo store.Repository
	now  func() time.Time
}

func NewAttendanceService(repo store.Repository, now func() time.Time) attendance.AttendanceService {
	return &AttendanceServiceImpl{repo: repo, now: now}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.CheckResponse, error) {
	actor, err := user.RequireFromContext(ctx, user.PermissionAttendanceRecord)
	if err != nil {
		return attendance.CheckResponse{}, err
	}
	now := s.now()

	var resp attendance.CheckResponse
	err = s.repo.Update(ctx, func(doc *store.Document) error {
		m, err := doc.Member(actor.ID)
		if err != nil {
			return err
		}

		records, rec, err := attendance.CheckIn(m.Attendance, m.Schedule(), now, m.Name)
		if err != nil {
			return err
		}
		m.Attendance = records

		details := fmt.Sprintf("%s checked in at %s", m.Name, *rec.ActualCheckIn)
		if rec.LateMinutes > 0 {
			details += fmt.Sprintf(" (%d minutes late)", rec.LateMinutes)
		}
		doc.Log(activity.NewEntry(utils.NewID(), actor, activity.ActionCheckIn, details, now))

		resp = attendance.CheckResponse{MemberID: m.ID, MemberName: m.Name, Record: rec}
		return nil
	})
	if err != nil {
		return attendance.CheckResponse{}, err
	}
	return resp, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.CheckResponse, error) {
	actor, err := user.RequireFromContext(ctx, user.PermissionAttendanceRecord)
	if err != nil {
		return attendance.CheckResponse{}, err
	}
	now := s.now()

	var resp attendance.CheckResponse
	err = s.repo.Update(ctx, func(doc *store.Document) error {
		m, err := doc.Member(actor.ID)
		if err != nil {
			return err
		}

		records, rec, err := attendance.CheckOut(m.Attendance, m.Schedule(), now)
		if err != nil {
			return err
		}
		m.Attendance = records

		details := fmt.Sprintf("%s checked out at %s, worked %s hours", m.Name, *rec.ActualCheckOut, rec.WorkHours.StringFixed(2))
		if rec.EarlyMinutes > 0 {
			details += fmt.Sprintf(" (left %d minutes early)", rec.EarlyMinutes)
		}
		doc.Log(activity.NewEntry(utils.NewID(), actor, activity.ActionCheckOut, details, now))

		resp = attendance.CheckResponse{MemberID: m.ID, MemberName: m.Name, Record: rec}
		return nil
	})
	if err != nil {
		return attendance.CheckResponse{}, err
	}
	return resp, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MonthFilter) ([]attendance.Record, error) {
	actor, err := user.RequireFromContext(ctx, user.PermissionAttendanceViewOwn)
	if err != nil {
		return nil, err
	}
	return s.listRecords(ctx, actor.ID, filter)
}

// ListMemberAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListMemberAttendance(ctx context.Context, memberID string, filter attendance.MonthFilter) ([]attendance.Record, error) {
	if _, err := user.RequireFromContext(ctx, user.PermissionAttendanceViewAll); err != nil {
		return nil, err
	}
	return s.listRecords(ctx, memberID, filter)
}

func (s *AttendanceServiceImpl) listRecords(ctx context.Context, memberID string, filter attendance.MonthFilter) ([]attendance.Record, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var records []attendance.Record
	err := s.repo.View(ctx, func(doc *store.Document) error {
		m, err := doc.Member(memberID)
		if err != nil {
			return err
		}
		if filter.IsZero() {
			records = slices.Clone(m.Attendance)
		} else {
			records = attendance.InMonth(m.Attendance, filter.Year, time.Month(filter.Month))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []attendance.Record{}
	}
	return records, nil
}
