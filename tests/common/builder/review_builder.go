//go:build unit || e2e

package builder

import (
	"time"

	domreview "store-reservation/internal/domain/review"
	reqdto "store-reservation/internal/handler/dto/request"
	"store-reservation/internal/usecase/queries"
	"store-reservation/internal/usecase/shared"
)

type ReviewBuilder struct {
	ID            int64
	ReservationID int64
	UserID        string
	StoreName     string
	Rating        float64
	Text          string
	CreatedAt     time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ID:            1,
		ReservationID: 1,
		UserID:        "visitor1",
		StoreName:     "Sample Diner",
		Rating:        4.5,
		Text:          "Great food and friendly staff",
		CreatedAt:     time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(b)
	return b
}

func (b *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(b.ReservationID, b.UserID, b.StoreName, b.Rating, b.Text, b.CreatedAt)
}

func (b *ReviewBuilder) BuildAddRequestDTO() reqdto.AddReviewRequest {
	return reqdto.AddReviewRequest{
		ReservationID: b.ReservationID,
		Rating:        b.Rating,
		Text:          b.Text,
	}
}

func (b *ReviewBuilder) BuildEditRequestDTO() reqdto.EditReviewRequest {
	return reqdto.EditReviewRequest{
		Rating: b.Rating,
		Text:   b.Text,
	}
}

func (b *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:            b.ID,
		ReservationID: b.ReservationID,
		UserID:        b.UserID,
		StoreName:     b.StoreName,
		Rating:        b.Rating,
		Text:          b.Text,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}

func (b *ReviewBuilder) BuildSnapshot() *shared.ReviewSnapshot {
	return &shared.ReviewSnapshot{
		ID:            b.ID,
		ReservationID: b.ReservationID,
		UserID:        b.UserID,
		StoreName:     b.StoreName,
		Rating:        b.Rating,
		Text:          b.Text,
		CreatedAt:     b.CreatedAt,
	}
}
