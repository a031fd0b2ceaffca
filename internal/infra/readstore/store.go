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

type storeRow struct {
	ID          int64     `db:"id"`
	PartnerID   string    `db:"partner_id"`
	StoreName   string    `db:"store_name"`
	StoreAddr   string    `db:"store_addr"`
	Description string    `db:"description"`
	Rating      float64   `db:"rating"`
	RatingCount int64     `db:"rating_count"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

const storeColumns = `id, partner_id, store_name, store_addr, description, rating, rating_count, created_at, updated_at`

type StoreReadStore struct {
	db db.DBTX
}

func NewStoreReadStore(dbtx db.DBTX) *StoreReadStore {
	return &StoreReadStore{db: dbtx}
}

func (r *StoreReadStore) FindByName(ctx context.Context, storeName string) (*queries.StoreView, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE store_name = $1`

	rows, err := r.db.Query(ctx, query, storeName)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query store", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[storeRow])
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("store not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan store", err)
	}
	return toStoreView(row)
}

func (r *StoreReadStore) SearchByName(ctx context.Context, keyword string, sort queries.StoreSort, limit, offset int32) ([]*queries.StoreView, error) {
	var order string
	switch sort {
	case queries.StoreSortRating:
		order = `rating DESC, store_name ASC`
	case queries.StoreSortRatingCount:
		order = `rating_count DESC, store_name ASC`
	default:
		order = `store_name ASC`
	}

	query := `SELECT ` + storeColumns + ` FROM stores
		WHERE store_name ILIKE '%' || $1 || '%'
		ORDER BY ` + order + `
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, keyword, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search stores", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[storeRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan stores", err)
	}

	result := make([]*queries.StoreView, 0, len(collected))
	for _, row := range collected {
		view, cerr := toStoreView(row)
		if cerr != nil {
			return nil, cerr
		}
		result = append(result, view)
	}
	return result, nil
}

func toStoreView(row storeRow) (*queries.StoreView, error) {
	var view queries.StoreView
	if err := copier.Copy(&view, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map store view", err)
	}
	return &view, nil
}
