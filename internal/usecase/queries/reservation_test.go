//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"store-reservation/internal/domain/reservation"
	"store-reservation/internal/infra"
	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/usecase/queries"
	"store-reservation/tests/common/builder"
	queriesmock "store-reservation/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", errs.New("no rows"), infra.KindNotFound)
}

func TestGetDetail(t *testing.T) {
	view := builder.NewReservationBuilder().BuildView()

	newQ := func(t *testing.T) (*queriesmock.MockReservationReadStore, queries.ReservationQueries) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockReservationReadStore(ctrl)
		return readStore, queries.NewReservationQueries(readStore)
	}

	t.Run("success: the booking user may read it", func(t *testing.T) {
		readStore, q := newQ(t)
		readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := q.GetDetail(context.Background(), view.ID, "visitor1")
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("success: the owning partner may read it", func(t *testing.T) {
		readStore, q := newQ(t)
		readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := q.GetDetail(context.Background(), view.ID, "partner1")
		require.NoError(t, err)
	})

	t.Run("error: anyone else is denied", func(t *testing.T) {
		readStore, q := newQ(t)
		readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := q.GetDetail(context.Background(), view.ID, "visitor2")
		require.ErrorIs(t, err, queries.ErrAccessDenied)
	})

	t.Run("error: missing reservation", func(t *testing.T) {
		readStore, q := newQ(t)
		readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(nil, notFoundErr())

		_, err := q.GetDetail(context.Background(), view.ID, "visitor1")
		require.ErrorIs(t, err, queries.ErrReservationNotFound)
	})
}

func TestListForOwner(t *testing.T) {
	views := []*queries.ReservationView{builder.NewReservationBuilder().BuildView()}

	newQ := func(t *testing.T) (*queriesmock.MockReservationReadStore, queries.ReservationQueries) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockReservationReadStore(ctrl)
		return readStore, queries.NewReservationQueries(readStore)
	}

	t.Run("pages are fixed at ten rows", func(t *testing.T) {
		readStore, q := newQ(t)
		readStore.EXPECT().
			FindByPartner(gomock.Any(), "partner1", queries.ListFilter{}, int32(10), int32(20)).
			Return(views, nil)

		got, err := q.ListForPartner(context.Background(), "partner1", queries.ListFilter{}, 2)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("negative page clamps to the first", func(t *testing.T) {
		readStore, q := newQ(t)
		readStore.EXPECT().
			FindByUser(gomock.Any(), "visitor1", queries.ListFilter{}, int32(10), int32(0)).
			Return(views, nil)

		_, err := q.ListForUser(context.Background(), "visitor1", queries.ListFilter{}, -3)
		require.NoError(t, err)
	})

	t.Run("an empty page is reported as an error", func(t *testing.T) {
		readStore, q := newQ(t)
		readStore.EXPECT().
			FindByUser(gomock.Any(), "visitor1", queries.ListFilter{}, int32(10), int32(0)).
			Return(nil, nil)

		_, err := q.ListForUser(context.Background(), "visitor1", queries.ListFilter{}, 0)
		require.ErrorIs(t, err, queries.ErrNoReservations)
	})

	t.Run("filter passes through unchanged", func(t *testing.T) {
		readStore, q := newQ(t)
		status := reservation.StatusConfirm
		date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
		filter := queries.ListFilter{Status: &status, Date: &date}

		readStore.EXPECT().
			FindByPartner(gomock.Any(), "partner1", filter, int32(10), int32(0)).
			Return(views, nil)

		_, err := q.ListForPartner(context.Background(), "partner1", filter, 0)
		require.NoError(t, err)
	})
}

func TestListFilter(t *testing.T) {
	t.Run("zero filter", func(t *testing.T) {
		assert.True(t, queries.ListFilter{}.IsZero())

		status := reservation.StatusConfirm
		assert.False(t, queries.ListFilter{Status: &status}.IsZero())
	})

	t.Run("date range spans the whole calendar day", func(t *testing.T) {
		date := time.Date(2025, 6, 2, 15, 30, 0, 0, time.UTC)
		from, to := queries.ListFilter{Date: &date}.DateRange()

		require.NotNil(t, from)
		require.NotNil(t, to)
		assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), *from)
		assert.Equal(t, time.Date(2025, 6, 2, 23, 59, 59, 999999999, time.UTC), *to)
	})

	t.Run("no date yields no range", func(t *testing.T) {
		from, to := queries.ListFilter{}.DateRange()
		assert.Nil(t, from)
		assert.Nil(t, to)
	})
}
