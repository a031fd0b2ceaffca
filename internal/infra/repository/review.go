package repository

import (
	"context"

	"store-reservation/internal/domain/review"
	"store-reservation/internal/infra"
	"store-reservation/internal/infra/db"
)

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(dbtx db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: dbtx}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) (int64, error) {
	const query = `
		INSERT INTO reviews (reservation_id, user_id, store_name, rating, review_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		rev.ReservationID(),
		rev.UserID(),
		rev.StoreName(),
		rev.Rating().Value(),
		rev.Text().String(),
		rev.CreatedAt(),
		rev.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create review", err, classifyKind(err))
	}
	return id, nil
}

func (r *ReviewRepository) Update(ctx context.Context, rev *review.Review) error {
	const query = `
		UPDATE reviews
		SET rating = $2, review_text = $3, updated_at = $4
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, rev.ID(), rev.Rating().Value(), rev.Text().String(), rev.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
