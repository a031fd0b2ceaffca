package store

import "errors"

var (
	ErrNegativeRatingCount = errors.New("rating count cannot be negative")
	ErrNoRatings           = errors.New("store has no ratings to edit")
)

// RatingStats is the running mean of all review ratings for a store plus
// the number of contributing reviews. It is maintained incrementally: the
// mean is never recomputed from the full review set.
//
// Readers of (mean, count) and writers of the next value must not
// interleave; persistence serializes updates per store (row lock) so two
// concurrent reviews for the same store cannot lose a contribution.
type RatingStats struct {
	mean  float64
	count int64
}

func NewRatingStats(mean float64, count int64) (RatingStats, error) {
	if count < 0 {
		return RatingStats{}, ErrNegativeRatingCount
	}
	return RatingStats{mean: mean, count: count}, nil
}

func (s RatingStats) Mean() float64 { return s.mean }
func (s RatingStats) Count() int64  { return s.count }

// Add folds one new rating into the mean.
func (s RatingStats) Add(rating float64) RatingStats {
	next := s.count + 1
	return RatingStats{
		mean:  (s.mean*float64(s.count) + rating) / float64(next),
		count: next,
	}
}

// Edit replaces a previously counted rating. The count is unchanged; the
// mean moves by (newRating - oldRating) / count. Editing with no counted
// ratings breaks the add-before-edit invariant and fails instead of
// producing a division by zero.
func (s RatingStats) Edit(oldRating, newRating float64) (RatingStats, error) {
	if s.count == 0 {
		return RatingStats{}, ErrNoRatings
	}
	return RatingStats{
		mean:  (s.mean*float64(s.count) - oldRating + newRating) / float64(s.count),
		count: s.count,
	}, nil
}
