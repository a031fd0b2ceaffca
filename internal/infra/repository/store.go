package repository

import (
	"context"

	"store-reservation/internal/domain/store"
	"store-reservation/internal/infra"
	"store-reservation/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

type StoreRepository struct {
	db db.DBTX
}

func NewStoreRepository(dbtx db.DBTX) *StoreRepository {
	return &StoreRepository{db: dbtx}
}

func (r *StoreRepository) Create(ctx context.Context, st *store.Store) (int64, error) {
	const query = `
		INSERT INTO stores (partner_id, store_name, store_addr, description, rating, rating_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		st.PartnerID(),
		st.StoreName(),
		st.StoreAddr(),
		st.Description(),
		st.Rating().Mean(),
		st.Rating().Count(),
		st.CreatedAt(),
		st.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create store", err, classifyKind(err))
	}
	return id, nil
}

func (r *StoreRepository) UpdateInfo(ctx context.Context, st *store.Store) error {
	const query = `
		UPDATE stores
		SET store_addr = $2, description = $3, updated_at = $4
		WHERE store_name = $1`

	tag, err := r.db.Exec(ctx, query, st.StoreName(), st.StoreAddr(), st.Description(), st.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update store info", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("store not found", nil, infra.KindNotFound)
	}
	return nil
}

// RatingForUpdate reads the aggregate under an exclusive row lock. The lock
// is held until the enclosing transaction ends, serializing concurrent
// review writes for the same store.
func (r *StoreRepository) RatingForUpdate(ctx context.Context, storeName string) (store.RatingStats, error) {
	const query = `
		SELECT rating, rating_count
		FROM stores
		WHERE store_name = $1
		FOR UPDATE`

	var (
		mean  float64
		count int64
	)
	err := r.db.QueryRow(ctx, query, storeName).Scan(&mean, &count)
	if err != nil {
		if err == pgx.ErrNoRows {
			return store.RatingStats{}, infra.WrapRepoErr("store not found", err, infra.KindNotFound)
		}
		return store.RatingStats{}, infra.WrapRepoErr("failed to lock store rating", err)
	}
	return store.NewRatingStats(mean, count)
}

func (r *StoreRepository) UpdateRating(ctx context.Context, storeName string, stats store.RatingStats) error {
	const query = `
		UPDATE stores
		SET rating = $2, rating_count = $3
		WHERE store_name = $1`

	tag, err := r.db.Exec(ctx, query, storeName, stats.Mean(), stats.Count())
	if err != nil {
		return infra.WrapRepoErr("failed to update store rating", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("store not found", nil, infra.KindNotFound)
	}
	return nil
}
