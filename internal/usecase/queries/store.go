package queries

import (
	"context"

	"store-reservation/internal/infra"
	"store-reservation/internal/pkg/errs"
)

var (
	ErrStoreNotFound = errs.New("store not found")
	ErrNoStores      = errs.New("no stores found")
)

type StoreQueries interface {
	GetByName(ctx context.Context, storeName string) (*StoreView, error)
	// Search matches stores whose name contains the keyword.
	Search(ctx context.Context, keyword string, sort StoreSort, page int) ([]*StoreView, error)
}

type StoreReadStore interface {
	FindByName(ctx context.Context, storeName string) (*StoreView, error)
	SearchByName(ctx context.Context, keyword string, sort StoreSort, limit, offset int32) ([]*StoreView, error)
}

type storeQueriesImpl struct {
	repo StoreReadStore
}

func NewStoreQueries(repo StoreReadStore) StoreQueries {
	return &storeQueriesImpl{repo: repo}
}

func (q *storeQueriesImpl) GetByName(ctx context.Context, storeName string) (*StoreView, error) {
	view, err := q.repo.FindByName(ctx, storeName)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *storeQueriesImpl) Search(ctx context.Context, keyword string, sort StoreSort, page int) ([]*StoreView, error) {
	rows, err := q.repo.SearchByName(ctx, keyword, sort, StorePageSize, pageOffset(page, StorePageSize))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoStores
	}
	return rows, nil
}
