package store

import (
	"encoding/json"
	"slices"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/activity"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/member"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/notification"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/preference"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/request"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/task"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
)

// Blob keys the document and its snapshots are stored under.
const (
	DocumentKey       = "employeeManagementSystem"
	AutoBackupKey     = "autoBackup"
	LastAutoBackupKey = "lastAutoBackup"
)

// Document is the whole persisted state. It is always loaded, mutated and
// saved as a unit.
type Document struct {
	Members       []member.Member             `json:"members"`
	Leaders       []member.Leader             `json:"leaders"`
	Tasks         []task.Task                 `json:"tasks"`
	Requests      []request.Request           `json:"requests"`
	Notifications []notification.Notification `json:"notifications"`
	ActivityLog   []activity.Entry            `json:"activityLog"`
	CurrentUser   *user.Actor                 `json:"currentUser"`
	Language      string                      `json:"language"`
	DarkMode      bool                        `json:"darkMode"`
	Revision      int64                       `json:"revision"`

	// Keys kept for compatibility with older documents. Their contents are
	// carried through untouched.
	Attendance  json.RawMessage `json:"attendance"`
	Leaves      json.RawMessage `json:"leaves"`
	Evaluations json.RawMessage `json:"evaluations"`
	Notes       json.RawMessage `json:"notes"`
	Teams       json.RawMessage `json:"teams"`
	Salary      json.RawMessage `json:"salary"`
}

var emptyList = json.RawMessage(`[]`)

// New returns an empty document with defaults applied.
func New() *Document {
	d := &Document{}
	d.Normalize()
	return d
}

// Normalize fills defaults for keys absent from older documents.
func (d *Document) Normalize() {
	if d.Members == nil {
		d.Members = []member.Member{}
	}
	if d.Leaders == nil {
		d.Leaders = []member.Leader{}
	}
	if d.Tasks == nil {
		d.Tasks = []task.Task{}
	}
	if d.Requests == nil {
		d.Requests = []request.Request{}
	}
	if d.Notifications == nil {
		d.Notifications = []notification.Notification{}
	}
	if d.ActivityLog == nil {
		d.ActivityLog = []activity.Entry{}
	}
	if d.Language == "" {
		d.Language = preference.LanguageArabic
	}
	for _, raw := range []*json.RawMessage{&d.Attendance, &d.Leaves, &d.Evaluations, &d.Notes, &d.Teams, &d.Salary} {
		if len(*raw) == 0 || string(*raw) == "null" {
			*raw = slices.Clone(emptyList)
		}
	}
}

// Member returns a pointer into d.Members so callers can mutate in place.
func (d *Document) Member(id string) (*member.Member, error) {
	i := slices.IndexFunc(d.Members, func(m member.Member) bool { return m.ID == id })
	if i < 0 {
		return nil, member.ErrMemberNotFound
	}
	return &d.Members[i], nil
}

func (d *Document) Leader(id string) (*member.Leader, error) {
	i := slices.IndexFunc(d.Leaders, func(l member.Leader) bool { return l.ID == id })
	if i < 0 {
		return nil, member.ErrLeaderNotFound
	}
	return &d.Leaders[i], nil
}

func (d *Document) Task(id string) (*task.Task, error) {
	i := slices.IndexFunc(d.Tasks, func(t task.Task) bool { return t.ID == id })
	if i < 0 {
		return nil, task.ErrTaskNotFound
	}
	return &d.Tasks[i], nil
}

func (d *Document) Request(id string) (*request.Request, error) {
	i := slices.IndexFunc(d.Requests, func(r request.Request) bool { return r.ID == id })
	if i < 0 {
		return nil, request.ErrRequestNotFound
	}
	return &d.Requests[i], nil
}

// MemberNameTaken reports whether another member (not exceptID) uses name.
func (d *Document) MemberNameTaken(name, exceptID string) bool {
	return slices.ContainsFunc(d.Members, func(m member.Member) bool {
		return m.ID != exceptID && member.SameName(m.Name, name)
	})
}

// LeaderNameTaken reports whether another leader (not exceptID) uses name.
func (d *Document) LeaderNameTaken(name, exceptID string) bool {
	return slices.ContainsFunc(d.Leaders, func(l member.Leader) bool {
		return l.ID != exceptID && member.SameName(l.Name, name)
	})
}

// AddMember appends m unless its name is already registered.
func (d *Document) AddMember(m member.Member) error {
	if d.MemberNameTaken(m.Name, "") {
		return member.ErrMemberNameExists
	}
	d.Members = append(d.Members, m)
	return nil
}

// AddLeader appends l unless its name is already registered.
func (d *Document) AddLeader(l member.Leader) error {
	if d.LeaderNameTaken(l.Name, "") {
		return member.ErrLeaderNameExists
	}
	d.Leaders = append(d.Leaders, l)
	return nil
}

// RemoveMember deletes the member and the tasks assigned to them. Requests
// filed by the member are kept.
func (d *Document) RemoveMember(id string) error {
	if _, err := d.Member(id); err != nil {
		return err
	}
	d.Members = slices.DeleteFunc(d.Members, func(m member.Member) bool { return m.ID == id })
	d.Tasks = slices.DeleteFunc(d.Tasks, func(t task.Task) bool { return t.MemberID == id })
	return nil
}

func (d *Document) RemoveLeader(id string) error {
	if _, err := d.Leader(id); err != nil {
		return err
	}
	d.Leaders = slices.DeleteFunc(d.Leaders, func(l member.Leader) bool { return l.ID == id })
	return nil
}

// Log appends an activity entry, keeping the log bounded.
func (d *Document) Log(e activity.Entry) {
	d.ActivityLog = activity.Append(d.ActivityLog, e)
}
