package evaluation

import "context"

type EvaluationService interface {
	RateMember(ctx context.Context, memberID string, req RateMemberRequest) (RatingResponse, error)
	AddNote(ctx context.Context, memberID string, req AddNoteRequest) (NoteResponse, error)
}
