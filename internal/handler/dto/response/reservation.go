package response

import (
	"time"

	"store-reservation/internal/usecase/queries"
)

type ReservationResponse struct {
	ID              int64     `json:"id"`
	UserID          string    `json:"userId"`
	PartnerID       string    `json:"partnerId"`
	StoreName       string    `json:"storeName"`
	Phone           string    `json:"phone"`
	People          int       `json:"people"`
	Status          string    `json:"status"`
	StatusUpdatedAt time.Time `json:"statusUpdatedAt"`
	Time            time.Time `json:"time"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:              rm.ID,
		UserID:          rm.UserID,
		PartnerID:       rm.PartnerID,
		StoreName:       rm.StoreName,
		Phone:           rm.Phone,
		People:          rm.People,
		Status:          rm.Status,
		StatusUpdatedAt: rm.StatusUpdatedAt,
		Time:            rm.VisitAt,
		CreatedAt:       rm.CreatedAt,
	}
}

func FromReservationViews(rms []*queries.ReservationView) []*ReservationResponse {
	result := make([]*ReservationResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromReservationView(rm)
	}
	return result
}
