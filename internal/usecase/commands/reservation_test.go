//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	domres "store-reservation/internal/domain/reservation"
	"store-reservation/internal/pkg/clock"
	"store-reservation/internal/usecase/commands"
	"store-reservation/internal/usecase/queries"
	"store-reservation/internal/usecase/shared"
	"store-reservation/tests/common/builder"
	"store-reservation/tests/common/fake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReservationFixture(t *testing.T, now time.Time) (*fake.UoW, commands.ReservationCommands, *clock.MockClock) {
	t.Helper()

	uow := fake.NewUoW()
	uow.SeedUser(&shared.UserSnapshot{ID: "visitor1", Phone: "01012345678"})
	uow.SeedPartner(&shared.PartnerSnapshot{ID: "partner1", Phone: "01099998888"})
	uow.SeedStore(builder.NewStoreBuilder().BuildSnapshot())

	clk := clock.NewMockClock(now)
	rq := queries.NewReservationQueries(fake.NewReservationReadStore(uow))
	return uow, commands.NewReservationUseCase(uow, rq, clk), clk
}

func TestCreateReservation(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	visitAt := now.Add(48 * time.Hour)

	t.Run("success: resolves phone and partner, starts in REQUESTING", func(t *testing.T) {
		_, uc, _ := newReservationFixture(t, now)

		view, err := uc.Create(context.Background(), commands.CreateReservationRequest{
			UserID:    "visitor1",
			StoreName: "Sample Diner",
			People:    2,
			VisitAt:   visitAt,
		})
		require.NoError(t, err)

		assert.Equal(t, "visitor1", view.UserID)
		assert.Equal(t, "partner1", view.PartnerID)
		assert.Equal(t, "01012345678", view.Phone)
		assert.Equal(t, string(domres.StatusRequesting), view.Status)
		assert.Equal(t, visitAt, view.VisitAt)
	})

	t.Run("error: unknown user", func(t *testing.T) {
		_, uc, _ := newReservationFixture(t, now)

		_, err := uc.Create(context.Background(), commands.CreateReservationRequest{
			UserID:    "ghost",
			StoreName: "Sample Diner",
			People:    2,
			VisitAt:   visitAt,
		})
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("error: unknown store", func(t *testing.T) {
		_, uc, _ := newReservationFixture(t, now)

		_, err := uc.Create(context.Background(), commands.CreateReservationRequest{
			UserID:    "visitor1",
			StoreName: "No Such Place",
			People:    2,
			VisitAt:   visitAt,
		})
		require.ErrorIs(t, err, commands.ErrStoreNotFound)
	})

	t.Run("error: non-positive party size", func(t *testing.T) {
		_, uc, _ := newReservationFixture(t, now)

		_, err := uc.Create(context.Background(), commands.CreateReservationRequest{
			UserID:    "visitor1",
			StoreName: "Sample Diner",
			People:    0,
			VisitAt:   visitAt,
		})
		require.ErrorIs(t, err, domres.ErrInvalidPeople)
	})
}

func TestChangeStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	seed := func(uow *fake.UoW) int64 {
		snap := builder.NewReservationBuilder().BuildSnapshot()
		uow.SeedReservation(snap)
		return snap.ID
	}

	t.Run("success: owner may set any known status", func(t *testing.T) {
		for _, code := range []string{"CONFIRM", "REFUSED", "USE_COMPLETE", "NO_SHOW", "REQUESTING"} {
			uow, uc, clk := newReservationFixture(t, now)
			id := seed(uow)
			clk.Add(time.Hour)

			require.NoError(t, uc.ChangeStatus(context.Background(), "partner1", id, code))
			assert.Equal(t, code, uow.Reservation(id).Status)
			assert.Equal(t, now.Add(time.Hour), uow.Reservation(id).StatusUpdatedAt)
		}
	})

	t.Run("success: status code is case-insensitive", func(t *testing.T) {
		uow, uc, _ := newReservationFixture(t, now)
		id := seed(uow)

		require.NoError(t, uc.ChangeStatus(context.Background(), "partner1", id, "confirm"))
		assert.Equal(t, "CONFIRM", uow.Reservation(id).Status)
	})

	t.Run("error: blank and unknown codes", func(t *testing.T) {
		uow, uc, _ := newReservationFixture(t, now)
		id := seed(uow)

		err := uc.ChangeStatus(context.Background(), "partner1", id, "")
		require.ErrorIs(t, err, domres.ErrStatusCodeRequired)

		err = uc.ChangeStatus(context.Background(), "partner1", id, "CANCELLED")
		require.ErrorIs(t, err, domres.ErrStatusCodeInvalid)
	})

	t.Run("error: reservation not found", func(t *testing.T) {
		_, uc, _ := newReservationFixture(t, now)

		err := uc.ChangeStatus(context.Background(), "partner1", 99, "CONFIRM")
		require.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("error: another partner's reservation", func(t *testing.T) {
		uow, uc, _ := newReservationFixture(t, now)
		id := seed(uow)

		err := uc.ChangeStatus(context.Background(), "partner2", id, "CONFIRM")
		require.ErrorIs(t, err, commands.ErrReservationNotOwned)
		assert.Equal(t, "REQUESTING", uow.Reservation(id).Status)
	})
}

func TestArrivalCheck(t *testing.T) {
	visitAt := time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC)

	seedConfirmed := func(uow *fake.UoW) int64 {
		snap := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Status = domres.StatusConfirm
			b.VisitAt = visitAt
		}).BuildSnapshot()
		uow.SeedReservation(snap)
		return snap.ID
	}

	t.Run("success: within the window, returns the ARRIVED view", func(t *testing.T) {
		uow, uc, clk := newReservationFixture(t, visitAt.Add(-time.Hour))
		id := seedConfirmed(uow)
		clk.Set(visitAt.Add(-30 * time.Minute))

		view, err := uc.ArrivalCheck(context.Background(), id, "5678")
		require.NoError(t, err)
		assert.Equal(t, string(domres.StatusArrived), view.Status)
		assert.Equal(t, visitAt.Add(-30*time.Minute), view.StatusUpdatedAt)
	})

	t.Run("success: at exactly ten minutes before the visit", func(t *testing.T) {
		uow, uc, clk := newReservationFixture(t, visitAt.Add(-time.Hour))
		id := seedConfirmed(uow)
		clk.Set(visitAt.Add(-domres.ArrivalDeadline))

		view, err := uc.ArrivalCheck(context.Background(), id, "5678")
		require.NoError(t, err)
		assert.Equal(t, string(domres.StatusArrived), view.Status)
	})

	t.Run("error: past the window leaves the status alone", func(t *testing.T) {
		uow, uc, clk := newReservationFixture(t, visitAt.Add(-time.Hour))
		id := seedConfirmed(uow)
		clk.Set(visitAt.Add(-5 * time.Minute))

		_, err := uc.ArrivalCheck(context.Background(), id, "5678")
		require.ErrorIs(t, err, domres.ErrArrivalWindowClosed)
		assert.Equal(t, string(domres.StatusConfirm), uow.Reservation(id).Status)
	})

	t.Run("error: wrong phone tail", func(t *testing.T) {
		uow, uc, clk := newReservationFixture(t, visitAt.Add(-time.Hour))
		id := seedConfirmed(uow)
		clk.Set(visitAt.Add(-30 * time.Minute))

		_, err := uc.ArrivalCheck(context.Background(), id, "0000")
		require.ErrorIs(t, err, domres.ErrPhoneMismatch)
	})

	t.Run("error: not in CONFIRM status", func(t *testing.T) {
		uow, uc, clk := newReservationFixture(t, visitAt.Add(-time.Hour))
		snap := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.VisitAt = visitAt
		}).BuildSnapshot()
		uow.SeedReservation(snap)
		clk.Set(visitAt.Add(-30 * time.Minute))

		_, err := uc.ArrivalCheck(context.Background(), snap.ID, "5678")
		require.ErrorIs(t, err, domres.ErrNotConfirmed)
	})

	t.Run("error: unknown reservation", func(t *testing.T) {
		_, uc, _ := newReservationFixture(t, visitAt)

		_, err := uc.ArrivalCheck(context.Background(), 42, "5678")
		require.ErrorIs(t, err, commands.ErrReservationNotFound)
	})
}
