package evaluation

import (
	"encoding/json"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jsonx"
)

// Scores are the four rated criteria, each 1..5.
type Scores struct {
	Commitment  float64 `json:"commitment"`
	Performance float64 `json:"performance"`
	Cooperation float64 `json:"cooperation"`
	Quality     float64 `json:"quality"`
}

type Rating struct {
	ID string `json:"id"`
	Scores
	Average     jsonx.Fixed2 `json:"average"`
	RatedBy     string       `json:"ratedBy"`
	RatedByRole user.Role    `json:"ratedByRole"`
	Date        time.Time    `json:"date"`
	Notes       string       `json:"notes,omitempty"`
}

func (r *Rating) UnmarshalJSON(b []byte) error {
	type plain Rating
	aux := struct {
		*plain
		ID   jsonx.ID   `json:"id"`
		Date jsonx.Time `json:"date"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	r.ID = string(aux.ID)
	r.Date = aux.Date.Std()
	return nil
}

type NoteType string

const (
	NoteTypeNote    NoteType = "note"
	NoteTypeWarning NoteType = "warning"
)

type Note struct {
	ID          string    `json:"id"`
	Type        NoteType  `json:"type"`
	Text        string    `json:"text"`
	AddedBy     string    `json:"addedBy"`
	AddedByRole user.Role `json:"addedByRole"`
	Date        time.Time `json:"date"`
}

func (n *Note) UnmarshalJSON(b []byte) error {
	type plain Note
	aux := struct {
		*plain
		ID   jsonx.ID   `json:"id"`
		Date jsonx.Time `json:"date"`
	}{plain: (*plain)(n)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	n.ID = string(aux.ID)
	n.Date = aux.Date.Std()
	return nil
}
