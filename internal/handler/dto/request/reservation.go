package request

import (
	"time"

	"store-reservation/internal/usecase/commands"
)

type CreateReservationRequest struct {
	StoreName string    `json:"store_name" binding:"required"`
	People    int       `json:"people" binding:"required"`
	Time      time.Time `json:"time" binding:"required"`
}

func (r CreateReservationRequest) ToCommand(userID string) commands.CreateReservationRequest {
	return commands.CreateReservationRequest{
		UserID:    userID,
		StoreName: r.StoreName,
		People:    r.People,
		VisitAt:   r.Time,
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ArrivalCheckRequest struct {
	PhoneLast4 string `json:"phone_last4" binding:"required,len=4"`
}
