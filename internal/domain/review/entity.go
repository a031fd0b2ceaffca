package review

import (
	"time"
)

// Review is a rating left for a completed visit. At most one review exists
// per reservation, and authorship never transfers.
type Review struct {
	id            int64
	reservationID int64
	userID        string
	storeName     string
	rating        Rating
	text          Text
	createdAt     time.Time
	updatedAt     time.Time
}

func NewReview(reservationID int64, userID, storeName string, ratingValue float64, text string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	body, err := NewText(text)
	if err != nil {
		return nil, err
	}

	return &Review{
		reservationID: reservationID,
		userID:        userID,
		storeName:     storeName,
		rating:        rating,
		text:          body,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructReview(id, reservationID int64, userID, storeName string, rating Rating, text Text, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:            id,
		reservationID: reservationID,
		userID:        userID,
		storeName:     storeName,
		rating:        rating,
		text:          text,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Edit replaces rating and text, returning the rating that was in place
// before the edit so the store aggregate can apply the delta.
func (r *Review) Edit(ratingValue float64, text string, now time.Time) (old Rating, err error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return Rating{}, err
	}

	body, err := NewText(text)
	if err != nil {
		return Rating{}, err
	}

	old = r.rating
	r.rating = rating
	r.text = body
	r.updatedAt = now
	return old, nil
}

func (r *Review) IsWrittenBy(userID string) bool {
	return r.userID == userID
}

func (r *Review) ID() int64            { return r.id }
func (r *Review) ReservationID() int64 { return r.reservationID }
func (r *Review) UserID() string       { return r.userID }
func (r *Review) StoreName() string    { return r.storeName }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Text() Text           { return r.text }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
