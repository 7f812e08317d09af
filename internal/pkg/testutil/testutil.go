// Package testutil builds the fixtures service and handler tests share.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/member"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/store"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/storage"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/repository/document"
	"github.com/stretchr/testify/require"
)

// Clock is a settable time source.
type Clock struct {
	T time.Time
}

func NewClock(t time.Time) *Clock { return &Clock{T: t} }

func (c *Clock) Now() time.Time { return c.T }

func (c *Clock) Set(t time.Time) { c.T = t }

// NewRepository returns a document repository over a temp directory.
func NewRepository(t *testing.T, clock *Clock) store.Repository {
	t.Helper()
	blobs, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return document.NewRepository(blobs, clock.Now)
}

var (
	Admin  = user.Actor{ID: "admin", Name: "fares akram", Role: user.RoleAdmin}
	Leader = user.Actor{ID: "l1", Name: "Omar", Role: user.RoleLeader}
	Member = user.Actor{ID: "m1", Name: "Sara", Role: user.RoleMember}
)

func As(a user.Actor) context.Context {
	return user.ContextWithActor(context.Background(), a)
}

// Seed stores members and leaders in the repository.
func Seed(t *testing.T, repo store.Repository, members []member.Member, leaders ...member.Leader) {
	t.Helper()
	err := repo.Update(context.Background(), func(doc *store.Document) error {
		doc.Members = append(doc.Members, members...)
		doc.Leaders = append(doc.Leaders, leaders...)
		return nil
	})
	require.NoError(t, err)
}

// Doc returns a copy of the stored document.
func Doc(t *testing.T, repo store.Repository) *store.Document {
	t.Helper()
	var out *store.Document
	err := repo.View(context.Background(), func(doc *store.Document) error {
		out = doc
		return nil
	})
	require.NoError(t, err)
	return out
}

// Sara is the default member fixture with a 09:00-17:00 shift.
func Sara() member.Member {
	return member.Member{
		ID:       Member.ID,
		Name:     Member.Name,
		WhatsApp: "+966501234567",
		Email:    "sara@example.com",
		DayOff:   "Friday",
		CheckIn:  "09:00",
		CheckOut: "17:00",
	}
}
