package evaluation

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/evaluation"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/member"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func score(v float64) *float64 { return &v }

func TestRateMember(t *testing.T) {
	clock := testutil.NewClock(time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local))
	repo := testutil.NewRepository(t, clock)
	testutil.Seed(t, repo, []member.Member{testutil.Sara()})
	svc := NewEvaluationService(repo, clock.Now)

	resp, err := svc.RateMember(testutil.As(testutil.Leader), "m1", evaluation.RateMemberRequest{
		Commitment: score(4), Performance: score(5), Cooperation: score(3), Quality: score(4),
	})
	require.NoError(t, err)
	assert.Equal(t, "4.00", resp.Rating.Average.StringFixed(2))
	assert.Equal(t, "Omar", resp.Rating.RatedBy)
	assert.Equal(t, user.RoleLeader, resp.Rating.RatedByRole)

	resp, err = svc.RateMember(testutil.As(testutil.Admin), "m1", evaluation.RateMemberRequest{
		Commitment: score(5), Performance: score(5), Cooperation: score(5), Quality: score(4),
	})
	require.NoError(t, err)
	assert.Equal(t, "4.75", resp.Rating.Average.StringFixed(2))
	assert.Equal(t, "4.38", resp.AverageRating.StringFixed(2))

	stored := testutil.Doc(t, repo).Members[0]
	assert.Len(t, stored.Ratings, 2)
	assert.Equal(t, "4.38", stored.AverageRating.StringFixed(2))
	assert.Len(t, testutil.Doc(t, repo).ActivityLog, 2)
}

func TestRateMember_Rejections(t *testing.T) {
	clock := testutil.NewClock(time.Now())
	repo := testutil.NewRepository(t, clock)
	testutil.Seed(t, repo, []member.Member{testutil.Sara()})
	svc := NewEvaluationService(repo, clock.Now)
	full := evaluation.RateMemberRequest{Commitment: score(4), Performance: score(4), Cooperation: score(4), Quality: score(4)}

	_, err := svc.RateMember(testutil.As(testutil.Member), "m1", full)
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)

	_, err = svc.RateMember(testutil.As(testutil.Admin), "nobody", full)
	assert.ErrorIs(t, err, member.ErrMemberNotFound)

	_, err = svc.RateMember(testutil.As(testutil.Admin), "m1", evaluation.RateMemberRequest{Commitment: score(4)})
	assert.Error(t, err)

	assert.Empty(t, testutil.Doc(t, repo).Members[0].Ratings)
}

func TestAddNote_CountsWarnings(t *testing.T) {
	clock := testutil.NewClock(time.Now())
	repo := testutil.NewRepository(t, clock)
	testutil.Seed(t, repo, []member.Member{testutil.Sara()})
	svc := NewEvaluationService(repo, clock.Now)
	ctx := testutil.As(testutil.Leader)

	_, err := svc.AddNote(ctx, "m1", evaluation.AddNoteRequest{Type: evaluation.NoteTypeNote, Text: "good week"})
	require.NoError(t, err)
	resp, err := svc.AddNote(ctx, "m1", evaluation.AddNoteRequest{Type: evaluation.NoteTypeWarning, Text: "late twice"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.WarningsCount)

	_, err = svc.AddNote(ctx, "m1", evaluation.AddNoteRequest{Type: "praise", Text: "x"})
	assert.Error(t, err)

	stored := testutil.Doc(t, repo).Members[0]
	assert.Len(t, stored.Notes, 2)
	assert.Equal(t, 1, stored.WarningsCount)
}
