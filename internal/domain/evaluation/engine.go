package evaluation

import (
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/jsonx"
	"github.com/shopspring/decimal"
)

var four = decimal.NewFromInt(4)

// Mean is the arithmetic mean of the four scores, rounded to 2 decimals.
func (s Scores) Mean() decimal.Decimal {
	sum := decimal.NewFromFloat(s.Commitment).
		Add(decimal.NewFromFloat(s.Performance)).
		Add(decimal.NewFromFloat(s.Cooperation)).
		Add(decimal.NewFromFloat(s.Quality))
	return sum.Div(four).Round(2)
}

// AverageOf is the equal-weight mean of every rating's average, rounded to
// 2 decimals. It returns nil when there are no ratings.
func AverageOf(ratings []Rating) *jsonx.Fixed2 {
	if len(ratings) == 0 {
		return nil
	}
	sum := decimal.Zero
	for _, r := range ratings {
		sum = sum.Add(r.Average.Decimal)
	}
	avg := jsonx.NewFixed2(sum.Div(decimal.NewFromInt(int64(len(ratings)))).Round(2))
	return &avg
}

// CountWarnings counts warning-type notes.
func CountWarnings(notes []Note) int {
	n := 0
	for _, note := range notes {
		if note.Type == NoteTypeWarning {
			n++
		}
	}
	return n
}
