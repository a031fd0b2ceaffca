package response

import (
	"time"

	"store-reservation/internal/usecase/queries"
)

type ReviewResponse struct {
	ID            int64     `json:"id"`
	ReservationID int64     `json:"reservationId"`
	UserID        string    `json:"userId"`
	StoreName     string    `json:"storeName"`
	Rating        float64   `json:"rating"`
	Text          string    `json:"text"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromReviewView(rm *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:            rm.ID,
		ReservationID: rm.ReservationID,
		UserID:        rm.UserID,
		StoreName:     rm.StoreName,
		Rating:        rm.Rating,
		Text:          rm.Text,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

func FromReviewViews(rms []*queries.ReviewView) []*ReviewResponse {
	result := make([]*ReviewResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromReviewView(rm)
	}
	return result
}
