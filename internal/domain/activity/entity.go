package activity

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jsonx"
)

// MaxEntries bounds the log; the oldest entries are evicted first.
const MaxEntries = 500

// DefaultListLimit is how many entries a listing returns when unspecified.
const DefaultListLimit = 50

type Action string

const (
	ActionCheckIn         Action = "attendance.check_in"
	ActionCheckOut        Action = "attendance.check_out"
	ActionMemberCreated   Action = "member.created"
	ActionMemberUpdated   Action = "member.updated"
	ActionMemberDeleted   Action = "member.deleted"
	ActionLeaderCreated   Action = "leader.created"
	ActionLeaderUpdated   Action = "leader.updated"
	ActionLeaderDeleted   Action = "leader.deleted"
	ActionRated           Action = "evaluation.rated"
	ActionNoteAdded       Action = "evaluation.note_added"
	ActionRequestCreated  Action = "request.created"
	ActionRequestApproved Action = "request.approved"
	ActionRequestRejected Action = "request.rejected"
	ActionTaskAssigned    Action = "task.assigned"
	ActionTaskStatus      Action = "task.status_changed"
	ActionTaskDeleted     Action = "task.deleted"
	ActionLogin           Action = "auth.login"
	ActionLogout          Action = "auth.logout"
	ActionRegistered      Action = "auth.registered"
	ActionRestored        Action = "backup.restored"
)

type Entry struct {
	ID        string    `json:"id"`
	Action    Action    `json:"action"`
	Details   string    `json:"details"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	UserRole  user.Role `json:"userRole"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *Entry) UnmarshalJSON(b []byte) error {
	type plain Entry
	aux := struct {
		*plain
		ID        jsonx.ID   `json:"id"`
		UserID    jsonx.ID   `json:"userId"`
		Timestamp jsonx.Time `json:"timestamp"`
	}{plain: (*plain)(e)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	e.ID = string(aux.ID)
	e.UserID = string(aux.UserID)
	e.Timestamp = aux.Timestamp.Std()
	return nil
}

// NewEntry attributes an action to actor.
func NewEntry(id string, actor user.Actor, action Action, details string, now time.Time) Entry {
	return Entry{
		ID:        id,
		Action:    action,
		Details:   details,
		UserID:    actor.ID,
		UserName:  actor.Name,
		UserRole:  actor.Role,
		Timestamp: now,
	}
}

// Append adds e and truncates the log to the MaxEntries most recent.
func Append(log []Entry, e Entry) []Entry {
	log = append(log, e)
	if len(log) > MaxEntries {
		log = slices.Clone(log[len(log)-MaxEntries:])
	}
	return log
}

// Newest returns up to limit entries, most recent first.
func Newest(log []Entry, limit int) []Entry {
	sorted := slices.Clone(log)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
