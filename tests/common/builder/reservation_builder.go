//go:build unit || e2e

package builder

import (
	"time"

	domres "store-reservation/internal/domain/reservation"
	"store-reservation/internal/usecase/queries"
	"store-reservation/internal/usecase/shared"
)

type ReservationBuilder struct {
	ID              int64
	UserID          string
	PartnerID       string
	StoreName       string
	Phone           string
	People          int
	Status          domres.Status
	StatusUpdatedAt time.Time
	VisitAt         time.Time
	CreatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:              1,
		UserID:          "visitor1",
		PartnerID:       "partner1",
		StoreName:       "Sample Diner",
		Phone:           "01012345678",
		People:          2,
		Status:          domres.StatusRequesting,
		StatusUpdatedAt: now,
		VisitAt:         now.Add(24 * time.Hour),
		CreatedAt:       now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	phone, err := domres.NewPhone(b.Phone)
	if err != nil {
		return nil, err
	}
	people, err := domres.NewPeople(b.People)
	if err != nil {
		return nil, err
	}
	return domres.ReconstructReservation(
		b.ID, b.UserID, phone, b.PartnerID, b.StoreName,
		people, b.Status, b.StatusUpdatedAt, b.VisitAt, b.CreatedAt,
	), nil
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:              b.ID,
		UserID:          b.UserID,
		PartnerID:       b.PartnerID,
		StoreName:       b.StoreName,
		Phone:           b.Phone,
		People:          b.People,
		Status:          string(b.Status),
		StatusUpdatedAt: b.StatusUpdatedAt,
		VisitAt:         b.VisitAt,
		CreatedAt:       b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:              b.ID,
		UserID:          b.UserID,
		PartnerID:       b.PartnerID,
		StoreName:       b.StoreName,
		Phone:           b.Phone,
		People:          b.People,
		Status:          string(b.Status),
		StatusUpdatedAt: b.StatusUpdatedAt,
		VisitAt:         b.VisitAt,
		CreatedAt:       b.CreatedAt,
	}
}
