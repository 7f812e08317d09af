package member

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/member"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/request"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/store"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/task"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newService(t *testing.T) (member.DirectoryService, store.Repository) {
	clock := testutil.NewClock(time.Date(2025, 3, 10, 10, 0, 0, 0, time.Local))
	repo := testutil.NewRepository(t, clock)
	return NewDirectoryService(repo, clock.Now), repo
}

func strPtr(s string) *string { return &s }

func validMember(name string) member.RegisterMemberRequest {
	return member.RegisterMemberRequest{
		Name:     name,
		Password: "secret",
		WhatsApp: "+966501234567",
		Email:    "someone@example.com",
		DayOff:   "Friday",
		CheckIn:  "09:00",
		CheckOut: "17:00",
	}
}

func TestCreateMember(t *testing.T) {
	svc, repo := newService(t)
	ctx := testutil.As(testutil.Admin)

	resp, err := svc.CreateMember(ctx, validMember("Sara"))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Empty(t, resp.PasswordHash)
	assert.True(t, resp.Present)

	_, err = svc.CreateMember(ctx, validMember("SARA"))
	assert.ErrorIs(t, err, member.ErrMemberNameExists)

	doc := testutil.Doc(t, repo)
	require.Len(t, doc.Members, 1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(doc.Members[0].PasswordHash), []byte("secret")))
	assert.Len(t, doc.ActivityLog, 1)
}

func TestCreateMember_LeaderForbidden(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.CreateMember(testutil.As(testutil.Leader), validMember("Sara"))
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)
}

func TestListMembers_SearchAndPresence(t *testing.T) {
	svc, repo := newService(t)
	night := testutil.Sara()
	night.ID, night.Name, night.CheckIn, night.CheckOut = "m2", "Omar", "18:00", "23:00"
	testutil.Seed(t, repo, []member.Member{testutil.Sara(), night})
	ctx := testutil.As(testutil.Leader)

	all, err := svc.ListMembers(ctx, member.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	present, err := svc.ListMembers(ctx, member.ListFilter{Presence: member.PresencePresent})
	require.NoError(t, err)
	require.Len(t, present, 1)
	assert.Equal(t, "Sara", present[0].Name)

	found, err := svc.ListMembers(ctx, member.ListFilter{Query: "OMA"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.False(t, found[0].Present)

	_, err = svc.ListMembers(ctx, member.ListFilter{Presence: "maybe"})
	assert.Error(t, err)

	_, err = svc.ListMembers(testutil.As(testutil.Member), member.ListFilter{})
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)
}

func TestUpdateMember(t *testing.T) {
	svc, repo := newService(t)
	legacy := testutil.Sara()
	legacy.LegacyPassword = "1234"
	other := testutil.Sara()
	other.ID, other.Name = "m2", "Omar"
	testutil.Seed(t, repo, []member.Member{legacy, other})
	ctx := testutil.As(testutil.Admin)

	resp, err := svc.UpdateMember(ctx, "m1", member.UpdateMemberRequest{
		CheckIn:  strPtr("08:00"),
		Password: strPtr("newpass"),
	})
	require.NoError(t, err)
	assert.Equal(t, "08:00", resp.CheckIn)
	assert.Equal(t, "Sara", resp.Name)

	stored := testutil.Doc(t, repo).Members[0]
	assert.Empty(t, stored.LegacyPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpass")))

	_, err = svc.UpdateMember(ctx, "m1", member.UpdateMemberRequest{Name: strPtr("omar")})
	assert.ErrorIs(t, err, member.ErrMemberNameExists)

	_, err = svc.UpdateMember(ctx, "m1", member.UpdateMemberRequest{Name: strPtr("sara")})
	assert.NoError(t, err, "renaming to own name in another case is allowed")

	_, err = svc.UpdateMember(ctx, "missing", member.UpdateMemberRequest{})
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}

func TestDeleteMember_CascadesTasksKeepsRequests(t *testing.T) {
	svc, repo := newService(t)
	testutil.Seed(t, repo, []member.Member{testutil.Sara()})
	require.NoError(t, repo.Update(t.Context(), func(doc *store.Document) error {
		doc.Tasks = append(doc.Tasks, task.Task{ID: "t1", MemberID: "m1"})
		doc.Requests = append(doc.Requests, request.Request{ID: "r1", MemberID: "m1", MemberName: "Sara"})
		return nil
	}))

	require.NoError(t, svc.DeleteMember(testutil.As(testutil.Admin), "m1"))

	doc := testutil.Doc(t, repo)
	assert.Empty(t, doc.Members)
	assert.Empty(t, doc.Tasks)
	require.Len(t, doc.Requests, 1)
	assert.Equal(t, "Sara", doc.Requests[0].MemberName)

	assert.ErrorIs(t, svc.DeleteMember(testutil.As(testutil.Admin), "m1"), member.ErrMemberNotFound)
}

func TestLeaders(t *testing.T) {
	svc, repo := newService(t)
	ctx := testutil.As(testutil.Admin)

	l, err := svc.CreateLeader(ctx, member.RegisterLeaderRequest{
		Name: "Omar", Password: "secret", WhatsApp: "0501234567", Email: "omar@example.com", Shift: "morning",
	})
	require.NoError(t, err)
	assert.Empty(t, l.PasswordHash)

	_, err = svc.CreateLeader(ctx, member.RegisterLeaderRequest{
		Name: "omar", Password: "secret", WhatsApp: "0501234567", Email: "omar@example.com", Shift: "evening",
	})
	assert.ErrorIs(t, err, member.ErrLeaderNameExists)

	updated, err := svc.UpdateLeader(ctx, l.ID, member.UpdateLeaderRequest{Shift: strPtr("evening")})
	require.NoError(t, err)
	assert.Equal(t, "evening", updated.Shift)

	list, err := svc.ListLeaders(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].PasswordHash)

	_, err = svc.ListLeaders(testutil.As(testutil.Leader))
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)

	require.NoError(t, svc.DeleteLeader(ctx, l.ID))
	assert.Empty(t, testutil.Doc(t, repo).Leaders)
}
