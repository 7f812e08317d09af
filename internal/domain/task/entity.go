package task

import (
	"encoding/json"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jsonx"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "inProgress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID              string     `json:"id"`
	MemberID        string     `json:"memberId"`
	MemberName      string     `json:"memberName"`
	Type            string     `json:"type"`
	Details         string     `json:"details"`
	AssignedBy      string     `json:"assignedBy"`
	Date            time.Time  `json:"date"`
	Status          Status     `json:"status,omitempty"`
	StatusUpdatedAt *time.Time `json:"statusUpdatedAt,omitempty"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
}

func (t *Task) UnmarshalJSON(b []byte) error {
	type plain Task
	aux := struct {
		*plain
		ID              jsonx.ID    `json:"id"`
		MemberID        jsonx.ID    `json:"memberId"`
		Date            jsonx.Time  `json:"date"`
		StatusUpdatedAt *jsonx.Time `json:"statusUpdatedAt"`
		CompletedAt     *jsonx.Time `json:"completedAt"`
	}{plain: (*plain)(t)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	t.ID = string(aux.ID)
	t.MemberID = string(aux.MemberID)
	t.Date = aux.Date.Std()
	t.StatusUpdatedAt = aux.StatusUpdatedAt.Ptr()
	t.CompletedAt = aux.CompletedAt.Ptr()
	return nil
}

// EffectiveStatus treats a task stored without a status as pending.
func (t Task) EffectiveStatus() Status {
	if t.Status == "" {
		return StatusPending
	}
	return t.Status
}

// SetStatus moves the task to s. CompletedAt is set on entering completed and
// cleared on leaving it, so it is non-nil exactly when the task is completed.
func (t *Task) SetStatus(s Status, now time.Time) {
	t.Status = s
	t.StatusUpdatedAt = &now
	if s == StatusCompleted {
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
}

type Stats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

// Tally counts tasks per effective status.
func Tally(tasks []Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.EffectiveStatus() {
		case StatusPending:
			s.Pending++
		case StatusInProgress:
			s.InProgress++
		case StatusCompleted:
			s.Completed++
		}
	}
	return s
}
