package request

import (
	"store-reservation/internal/usecase/commands"
)

type AddReviewRequest struct {
	ReservationID int64 `json:"reservation_id" binding:"required"`
	// Rating 0 is a valid score, so no required tag on it.
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
}

func (r AddReviewRequest) ToCommand(userID string) commands.AddReviewRequest {
	return commands.AddReviewRequest{
		ReservationID: r.ReservationID,
		UserID:        userID,
		Rating:        r.Rating,
		Text:          r.Text,
	}
}

type EditReviewRequest struct {
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
}

func (r EditReviewRequest) ToCommand(reviewID int64, userID string) commands.EditReviewRequest {
	return commands.EditReviewRequest{
		ReviewID: reviewID,
		UserID:   userID,
		Rating:   r.Rating,
		Text:     r.Text,
	}
}
