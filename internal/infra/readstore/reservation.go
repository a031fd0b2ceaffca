package readstore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"store-reservation/internal/infra"
	"store-reservation/internal/infra/db"
	"store-reservation/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jinzhu/copier"
)

type reservationRow struct {
	ID              int64     `db:"id"`
	UserID          string    `db:"user_id"`
	PartnerID       string    `db:"partner_id"`
	StoreName       string    `db:"store_name"`
	Phone           string    `db:"phone"`
	People          int       `db:"people"`
	Status          string    `db:"status"`
	StatusUpdatedAt time.Time `db:"status_updated_at"`
	VisitAt         time.Time `db:"visit_at"`
	CreatedAt       time.Time `db:"created_at"`
}

const reservationColumns = `id, user_id, partner_id, store_name, phone, people, status, status_updated_at, visit_at, created_at`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservation", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[reservationRow])
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan reservation", err)
	}
	return toReservationView(row)
}

func (r *ReservationReadStore) FindByPartner(ctx context.Context, partnerID string, filter queries.ListFilter, limit, offset int32) ([]*queries.ReservationView, error) {
	return r.findByOwner(ctx, "partner_id", partnerID, filter, limit, offset)
}

func (r *ReservationReadStore) FindByUser(ctx context.Context, userID string, filter queries.ListFilter, limit, offset int32) ([]*queries.ReservationView, error) {
	return r.findByOwner(ctx, "user_id", userID, filter, limit, offset)
}

// findByOwner builds the owner list query. An unfiltered list shows the
// most recent visits first; once a status or date filter narrows it, the
// order flips to chronological.
func (r *ReservationReadStore) findByOwner(ctx context.Context, ownerColumn, ownerID string, filter queries.ListFilter, limit, offset int32) ([]*queries.ReservationView, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE ` + ownerColumn + ` = $1`
	args := []any{ownerID}

	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if from, to := filter.DateRange(); from != nil {
		args = append(args, *from)
		query += ` AND visit_at >= $` + strconv.Itoa(len(args))
		args = append(args, *to)
		query += ` AND visit_at <= $` + strconv.Itoa(len(args))
	}

	if filter.IsZero() {
		query += ` ORDER BY visit_at DESC`
	} else {
		query += ` ORDER BY visit_at ASC`
	}
	args = append(args, limit)
	query += ` LIMIT $` + strconv.Itoa(len(args))
	args = append(args, offset)
	query += ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(fmt.Sprintf("failed to query reservations by %s", ownerColumn), err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[reservationRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reservations", err)
	}

	result := make([]*queries.ReservationView, 0, len(collected))
	for _, row := range collected {
		view, cerr := toReservationView(row)
		if cerr != nil {
			return nil, cerr
		}
		result = append(result, view)
	}
	return result, nil
}

func toReservationView(row reservationRow) (*queries.ReservationView, error) {
	var view queries.ReservationView
	if err := copier.Copy(&view, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map reservation view", err)
	}
	return &view, nil
}
