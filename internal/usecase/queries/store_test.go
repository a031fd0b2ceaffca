//go:build unit

package queries_test

import (
	"context"
	"testing"

	"store-reservation/internal/usecase/queries"
	"store-reservation/tests/common/builder"
	queriesmock "store-reservation/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func storeView() *queries.StoreView {
	b := builder.NewStoreBuilder()
	return &queries.StoreView{
		ID:          b.ID,
		PartnerID:   b.PartnerID,
		StoreName:   b.StoreName,
		StoreAddr:   b.StoreAddr,
		Description: b.Description,
		Rating:      b.Rating,
		RatingCount: b.RatingCount,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}

func newStoreQ(t *testing.T) (*queriesmock.MockStoreReadStore, queries.StoreQueries) {
	ctrl := gomock.NewController(t)
	readStore := queriesmock.NewMockStoreReadStore(ctrl)
	return readStore, queries.NewStoreQueries(readStore)
}

func TestStoreGetByName(t *testing.T) {
	view := storeView()

	t.Run("success", func(t *testing.T) {
		readStore, q := newStoreQ(t)
		readStore.EXPECT().FindByName(gomock.Any(), "Sample Diner").Return(view, nil)

		got, err := q.GetByName(context.Background(), "Sample Diner")
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("error: missing store", func(t *testing.T) {
		readStore, q := newStoreQ(t)
		readStore.EXPECT().FindByName(gomock.Any(), "No Such Place").Return(nil, notFoundErr())

		_, err := q.GetByName(context.Background(), "No Such Place")
		require.ErrorIs(t, err, queries.ErrStoreNotFound)
	})
}

func TestStoreSearch(t *testing.T) {
	views := []*queries.StoreView{storeView()}

	t.Run("forwards keyword, sort and paging", func(t *testing.T) {
		readStore, q := newStoreQ(t)
		readStore.EXPECT().
			SearchByName(gomock.Any(), "Diner", queries.StoreSortRating, int32(10), int32(10)).
			Return(views, nil)

		got, err := q.Search(context.Background(), "Diner", queries.StoreSortRating, 1)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("no matches reported as an error", func(t *testing.T) {
		readStore, q := newStoreQ(t)
		readStore.EXPECT().
			SearchByName(gomock.Any(), "zzz", queries.StoreSortAlphabet, int32(10), int32(0)).
			Return(nil, nil)

		_, err := q.Search(context.Background(), "zzz", queries.StoreSortAlphabet, 0)
		require.ErrorIs(t, err, queries.ErrNoStores)
	})
}

func TestParseStoreSort(t *testing.T) {
	cases := []struct {
		in    string
		want  queries.StoreSort
		errIs error
	}{
		{in: "", want: queries.StoreSortAlphabet},
		{in: "alphabet", want: queries.StoreSortAlphabet},
		{in: "RATING", want: queries.StoreSortRating},
		{in: "rating_count", want: queries.StoreSortRatingCount},
		{in: "POPULAR", errIs: queries.ErrInvalidSortType},
	}
	for _, c := range cases {
		got, err := queries.ParseStoreSort(c.in)
		if c.errIs != nil {
			require.ErrorIs(t, err, c.errIs, "input %q", c.in)
			continue
		}
		require.NoError(t, err, "input %q", c.in)
		assert.Equal(t, c.want, got)
	}
}
