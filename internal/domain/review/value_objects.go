package review

import "errors"

const (
	MinRating     = 0.0
	MaxRating     = 5.0
	MaxTextLength = 200
)

var (
	ErrRatingOutOfRange = errors.New("rating must be between 0 and 5")
	ErrTextTooLong      = errors.New("review text exceeds maximum length")
)

type Rating struct {
	value float64
}

func NewRating(v float64) (Rating, error) {
	if v < MinRating || v > MaxRating {
		return Rating{}, ErrRatingOutOfRange
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() float64 { return r.value }

// Text is the review body. An empty text is allowed; only the length bound
// is enforced.
type Text struct {
	value string
}

func NewText(s string) (Text, error) {
	if len([]rune(s)) > MaxTextLength {
		return Text{}, ErrTextTooLong
	}
	return Text{value: s}, nil
}

func (t Text) String() string { return t.value }
