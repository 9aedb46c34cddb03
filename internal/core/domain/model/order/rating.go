package order

import (
	"strings"
	"time"

	"fooddelivery/internal/pkg/errs"
)

const (
	ScoreMin = 1
	ScoreMax = 5
)

// Rating is the customer's feedback on a delivered order.
type Rating struct {
	score   int
	comment string
	ratedAt time.Time
}

func NewRating(score int, comment string, ratedAt time.Time) (Rating, error) {
	if score < ScoreMin || score > ScoreMax {
		return Rating{}, errs.NewValueIsOutOfRangeError("score", score, ScoreMin, ScoreMax)
	}
	return Rating{score: score, comment: strings.TrimSpace(comment), ratedAt: ratedAt}, nil
}

func (r Rating) Score() int {
	return r.score
}

func (r Rating) Comment() string {
	return r.comment
}

func (r Rating) RatedAt() time.Time {
	return r.ratedAt
}
