package readstore

import (
	"context"
	"time"

	"store-reservation/internal/infra"
	"store-reservation/internal/infra/db"
	"store-reservation/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jinzhu/copier"
)

type reviewRow struct {
	ID            int64     `db:"id"`
	ReservationID int64     `db:"reservation_id"`
	UserID        string    `db:"user_id"`
	StoreName     string    `db:"store_name"`
	Rating        float64   `db:"rating"`
	Text          string    `db:"review_text"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

const reviewColumns = `id, reservation_id, user_id, store_name, rating, review_text, created_at, updated_at`

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id int64) (*queries.ReviewView, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query review", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[reviewRow])
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan review", err)
	}
	return toReviewView(row)
}

func (r *ReviewReadStore) FindByReservation(ctx context.Context, reservationID int64) (*queries.ReviewView, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE reservation_id = $1`

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query review by reservation", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[reviewRow])
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan review", err)
	}
	return toReviewView(row)
}

func (r *ReviewReadStore) ExistsForReservation(ctx context.Context, reservationID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM reviews WHERE reservation_id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, reservationID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return exists, nil
}

func (r *ReviewReadStore) FindByUser(ctx context.Context, userID string, limit, offset int32) ([]*queries.ReviewView, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reviews by user", err)
	}
	return collectReviewViews(rows)
}

func (r *ReviewReadStore) FindByStore(ctx context.Context, storeName string, sort queries.ReviewSort, limit, offset int32) ([]*queries.ReviewView, error) {
	var order string
	switch sort {
	case queries.ReviewSortRatingDesc:
		order = `rating DESC, created_at DESC`
	case queries.ReviewSortRatingAsc:
		order = `rating ASC, created_at DESC`
	default:
		order = `created_at DESC`
	}

	query := `SELECT ` + reviewColumns + ` FROM reviews
		WHERE store_name = $1
		ORDER BY ` + order + `
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, storeName, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reviews by store", err)
	}
	return collectReviewViews(rows)
}

func collectReviewViews(rows pgx.Rows) ([]*queries.ReviewView, error) {
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[reviewRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reviews", err)
	}

	result := make([]*queries.ReviewView, 0, len(collected))
	for _, row := range collected {
		view, cerr := toReviewView(row)
		if cerr != nil {
			return nil, cerr
		}
		result = append(result, view)
	}
	return result, nil
}

func toReviewView(row reviewRow) (*queries.ReviewView, error) {
	var view queries.ReviewView
	if err := copier.Copy(&view, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map review view", err)
	}
	return &view, nil
}
