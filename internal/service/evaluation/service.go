package evaluation

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/activity"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/evaluation"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/store"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jsonx"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/utils"
)

type EvaluationServiceImpl struct {
	repo store.Repository
	now  func() time.Time
}

func NewEvaluationService(repo store.Repository, now func() time.Time) evaluation.EvaluationService {
	return &EvaluationServiceImpl{repo: repo, now: now}
}

// RateMember implements evaluation.EvaluationService.
func (s *EvaluationServiceImpl) RateMember(ctx context.Context, memberID string, req evaluation.RateMemberRequest) (evaluation.RatingResponse, error) {
	actor, err := user.RequireFromContext(ctx, user.PermissionEvaluationCreate)
	if err != nil {
		return evaluation.RatingResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return evaluation.RatingResponse{}, err
	}
	now := s.now()

	var resp evaluation.RatingResponse
	err = s.repo.Update(ctx, func(doc *store.Document) error {
		m, err := doc.Member(memberID)
		if err != nil {
			return err
		}

		scores := req.Scores()
		rating := evaluation.Rating{
			ID:          utils.NewID(),
			Scores:      scores,
			Average:     jsonx.NewFixed2(scores.Mean()),
			RatedBy:     actor.Name,
			RatedByRole: actor.Role,
			Date:        now,
			Notes:       req.Notes,
		}
		m.AddRating(rating)

		doc.Log(activity.NewEntry(utils.NewID(), actor, activity.ActionRated,
			fmt.Sprintf("%s rated %s %s/5", actor.Name, m.Name, rating.Average.StringFixed(2)), now))

		resp = evaluation.RatingResponse{MemberID: m.ID, Rating: rating, AverageRating: m.AverageRating}
		return nil
	})
	if err != nil {
		return evaluation.RatingResponse{}, err
	}
	return resp, nil
}

// AddNote implements evaluation.EvaluationService.
func (s *EvaluationServiceImpl) AddNote(ctx context.Context, memberID string, req evaluation.AddNoteRequest) (evaluation.NoteResponse, error) {
	actor, err := user.RequireFromContext(ctx, user.PermissionEvaluationCreate)
	if err != nil {
		return evaluation.NoteResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return evaluation.NoteResponse{}, err
	}
	now := s.now()

	var resp evaluation.NoteResponse
	err = s.repo.Update(ctx, func(doc *store.Document) error {
		m, err := doc.Member(memberID)
		if err != nil {
			return err
		}

		note := evaluation.Note{
			ID:          utils.NewID(),
			Type:        req.Type,
			Text:        req.Text,
			AddedBy:     actor.Name,
			AddedByRole: actor.Role,
			Date:        now,
		}
		m.AddNote(note)

		doc.Log(activity.NewEntry(utils.NewID(), actor, activity.ActionNoteAdded,
			fmt.Sprintf("%s added a %s for %s", actor.Name, note.Type, m.Name), now))

		resp = evaluation.NoteResponse{MemberID: m.ID, Note: note, WarningsCount: m.WarningsCount}
		return nil
	})
	if err != nil {
		return evaluation.NoteResponse{}, err
	}
	return resp, nil
}
