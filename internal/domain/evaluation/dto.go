package evaluation

import (
	"fmt"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jsonx"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/validator"
)

// RateMemberRequest uses pointers so an omitted score is distinguishable from zero.
type RateMemberRequest struct {
	Commitment  *float64 `json:"commitment"`
	Performance *float64 `json:"performance"`
	Cooperation *float64 `json:"cooperation"`
	Quality     *float64 `json:"quality"`
	Notes       string   `json:"notes"`
}

func (r *RateMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	fields := []struct {
		name  string
		value *float64
	}{
		{"commitment", r.Commitment},
		{"performance", r.Performance},
		{"cooperation", r.Cooperation},
		{"quality", r.Quality},
	}
	for _, f := range fields {
		if f.value == nil {
			errs = append(errs, validator.ValidationError{
				Field:   f.name,
				Message: fmt.Sprintf("%s is required", f.name),
			})
			continue
		}
		if !validator.InRange(*f.value, 1, 5) {
			errs = append(errs, validator.ValidationError{
				Field:   f.name,
				Message: fmt.Sprintf("%s must be between 1 and 5", f.name),
			})
		}
	}

	if len(r.Notes) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Scores assumes Validate passed.
func (r *RateMemberRequest) Scores() Scores {
	return Scores{
		Commitment:  *r.Commitment,
		Performance: *r.Performance,
		Cooperation: *r.Cooperation,
		Quality:     *r.Quality,
	}
}

type AddNoteRequest struct {
	Type NoteType `json:"type"`
	Text string   `json:"text"`
}

func (r *AddNoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != NoteTypeNote && r.Type != NoteTypeWarning {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: ErrInvalidNoteType.Error(),
		})
	}
	if validator.IsEmpty(r.Text) {
		errs = append(errs, validator.ValidationError{
			Field:   "text",
			Message: "text is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RatingResponse struct {
	MemberID      string        `json:"memberId"`
	Rating        Rating        `json:"rating"`
	AverageRating *jsonx.Fixed2 `json:"averageRating"`
}

type NoteResponse struct {
	MemberID      string `json:"memberId"`
	Note          Note   `json:"note"`
	WarningsCount int    `json:"warningsCount"`
}
