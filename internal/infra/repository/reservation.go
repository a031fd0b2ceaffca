package repository

import (
	"context"
	"time"

	"store-reservation/internal/domain/reservation"
	"store-reservation/internal/infra"
	"store-reservation/internal/infra/db"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	const query = `
		INSERT INTO reservations (user_id, partner_id, store_name, phone, people, status, status_updated_at, visit_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		res.UserID(),
		res.PartnerID(),
		res.StoreName(),
		res.Phone().String(),
		res.People().Value(),
		string(res.Status()),
		res.StatusUpdatedAt(),
		res.VisitAt(),
		res.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err, classifyKind(err))
	}
	return id, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status reservation.Status, at time.Time) error {
	const query = `
		UPDATE reservations
		SET status = $2, status_updated_at = $3
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, string(status), at)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
