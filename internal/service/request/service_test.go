package request

import (
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/member"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/notification"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/request"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/store"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (request.RequestService, store.Repository, *testutil.Clock) {
	clock := testutil.NewClock(time.Date(2025, 3, 10, 10, 0, 0, 0, time.Local))
	repo := testutil.NewRepository(t, clock)
	other := testutil.Sara()
	other.ID, other.Name = "m2", "Omar"
	testutil.Seed(t, repo, []member.Member{testutil.Sara(), other})
	return NewRequestService(repo, clock.Now), repo, clock
}

func TestCreate_Vacation(t *testing.T) {
	svc, _, _ := newService(t)

	r, err := svc.Create(testutil.As(testutil.Member), request.CreateRequest{
		Type: request.TypeVacation, StartDate: "2025-03-12", EndDate: "2025-03-14", Reason: "family",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, r.Days)
	assert.Equal(t, request.StatusPending, r.Status)
	assert.Equal(t, "+966501234567", r.MemberWhatsApp)

	_, err = svc.Create(testutil.As(testutil.Member), request.CreateRequest{
		Type: request.TypeVacation, StartDate: "2025-03-14", EndDate: "2025-03-12", Reason: "family",
	})
	assert.Error(t, err)
}

func TestCreate_OnlyMembers(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Create(testutil.As(testutil.Leader), request.CreateRequest{Type: request.TypeBreak, Duration: 15})
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)
	_, err = svc.Create(testutil.As(testutil.Admin), request.CreateRequest{Type: request.TypeBreak, Duration: 15})
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)
}

func TestApprove_NotifiesMember(t *testing.T) {
	svc, repo, _ := newService(t)
	r, err := svc.Create(testutil.As(testutil.Member), request.CreateRequest{Type: request.TypeBreak, Duration: 15, Notes: "coffee"})
	require.NoError(t, err)

	resp, err := svc.Approve(testutil.As(testutil.Admin), r.ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, resp.Request.Status)
	assert.Equal(t, "fares akram", resp.Request.ReviewedBy)
	assert.True(t, strings.HasPrefix(resp.WhatsAppLink, "https://wa.me/966501234567?text="))

	_, err = svc.Approve(testutil.As(testutil.Admin), r.ID)
	assert.ErrorIs(t, err, request.ErrRequestAlreadyProcessed)
	_, err = svc.Reject(testutil.As(testutil.Admin), r.ID, request.RejectRequest{})
	assert.ErrorIs(t, err, request.ErrRequestAlreadyProcessed)

	doc := testutil.Doc(t, repo)
	require.Len(t, doc.Notifications, 1)
	n := doc.Notifications[0]
	assert.Equal(t, "m1", n.RecipientID)
	assert.Equal(t, notification.TypeRequestApproved, n.Type)
	assert.Equal(t, r.ID, n.RequestID)
	assert.False(t, n.IsRead)
}

func TestReject_WithReason(t *testing.T) {
	svc, repo, _ := newService(t)
	r, err := svc.Create(testutil.As(testutil.Member), request.CreateRequest{Type: request.TypeException, Time: "14:00", Reason: "doctor"})
	require.NoError(t, err)

	_, err = svc.Reject(testutil.As(testutil.Leader), r.ID, request.RejectRequest{Reason: "no"})
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)

	resp, err := svc.Reject(testutil.As(testutil.Admin), r.ID, request.RejectRequest{Reason: "short staffed"})
	require.NoError(t, err)
	assert.Equal(t, request.StatusRejected, resp.Request.Status)
	assert.Equal(t, "short staffed", resp.Request.RejectionReason)

	n := testutil.Doc(t, repo).Notifications[0]
	assert.Equal(t, notification.TypeRequestRejected, n.Type)
	assert.Contains(t, n.Message, "short staffed")

	_, err = svc.Approve(testutil.As(testutil.Admin), "missing")
	assert.ErrorIs(t, err, request.ErrRequestNotFound)
}

func TestListAndPendingCount(t *testing.T) {
	svc, repo, clock := newService(t)
	sara := testutil.As(testutil.Member)
	omar := testutil.As(user.Actor{ID: "m2", Name: "Omar", Role: user.RoleMember})
	admin := testutil.As(testutil.Admin)

	first, err := svc.Create(sara, request.CreateRequest{Type: request.TypeBreak, Duration: 10})
	require.NoError(t, err)
	clock.Set(clock.T.Add(time.Minute))
	_, err = svc.Create(omar, request.CreateRequest{Type: request.TypeBreak, Duration: 20})
	require.NoError(t, err)
	clock.Set(clock.T.Add(time.Minute))
	_, err = svc.Create(sara, request.CreateRequest{Type: request.TypeException, Time: "15:00", Reason: "bank"})
	require.NoError(t, err)
	_, err = svc.Approve(admin, first.ID)
	require.NoError(t, err)

	all, err := svc.List(admin, request.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, request.TypeException, all[0].Type)

	pending, err := svc.List(admin, request.ListFilter{Status: request.StatusPending})
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	own, err := svc.List(sara, request.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, own, 2)

	_, err = svc.List(testutil.As(testutil.Leader), request.ListFilter{})
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)

	count, err := svc.PendingCount(admin)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Requests survive their member's removal.
	require.NoError(t, repo.Update(t.Context(), func(doc *store.Document) error { return doc.RemoveMember("m1") }))
	all, err = svc.List(admin, request.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUnsetStatusCountsAsPending(t *testing.T) {
	svc, repo, _ := newService(t)
	admin := testutil.As(testutil.Admin)

	require.NoError(t, repo.Update(t.Context(), func(doc *store.Document) error {
		doc.Requests = append(doc.Requests, request.Request{ID: "r1", Type: request.TypeBreak, MemberID: "m1", MemberName: "Sara", Duration: 30})
		return nil
	}))

	count, err := svc.PendingCount(admin)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	pending, err := svc.List(admin, request.ListFilter{Status: request.StatusPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "r1", pending[0].ID)

	resp, err := svc.Approve(admin, "r1")
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, resp.Request.Status)

	count, err = svc.PendingCount(admin)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
