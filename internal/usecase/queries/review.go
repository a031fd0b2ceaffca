package queries

import (
	"context"

	"store-reservation/internal/infra"
	"store-reservation/internal/pkg/errs"
)

var (
	ErrReviewNotFound = errs.New("review not found")
	// ErrNoReviews mirrors the empty-page convention of reservation lists.
	ErrNoReviews = errs.New("no reviews found")
)

type ReviewQueries interface {
	GetByID(ctx context.Context, id int64) (*ReviewView, error)
	// ListByUser is newest first.
	ListByUser(ctx context.Context, userID string, page int) ([]*ReviewView, error)
	ListByStore(ctx context.Context, storeName string, sort ReviewSort, page int) ([]*ReviewView, error)
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReviewView, error)
	FindByUser(ctx context.Context, userID string, limit, offset int32) ([]*ReviewView, error)
	FindByStore(ctx context.Context, storeName string, sort ReviewSort, limit, offset int32) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	repo ReviewReadStore
}

func NewReviewQueries(repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id int64) (*ReviewView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reviewQueriesImpl) ListByUser(ctx context.Context, userID string, page int) ([]*ReviewView, error) {
	rows, err := q.repo.FindByUser(ctx, userID, ReviewPageSize, pageOffset(page, ReviewPageSize))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoReviews
	}
	return rows, nil
}

func (q *reviewQueriesImpl) ListByStore(ctx context.Context, storeName string, sort ReviewSort, page int) ([]*ReviewView, error) {
	rows, err := q.repo.FindByStore(ctx, storeName, sort, ReviewPageSize, pageOffset(page, ReviewPageSize))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoReviews
	}
	return rows, nil
}
