//go:build unit

package store_test

import (
	"testing"

	"store-reservation/internal/domain/store"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStats(t *testing.T, mean float64, count int64) store.RatingStats {
	t.Helper()
	stats, err := store.NewRatingStats(mean, count)
	require.NoError(t, err)
	return stats
}

func TestNewRatingStats(t *testing.T) {
	_, err := store.NewRatingStats(3.0, -1)
	require.ErrorIs(t, err, store.ErrNegativeRatingCount)

	stats := mustStats(t, 0, 0)
	assert.Zero(t, stats.Mean())
	assert.Zero(t, stats.Count())
}

func TestRatingStatsAdd(t *testing.T) {
	cases := []struct {
		name      string
		mean      float64
		count     int64
		add       float64
		wantMean  float64
		wantCount int64
	}{
		{name: "first rating sets the mean", mean: 0, count: 0, add: 4.0, wantMean: 4.0, wantCount: 1},
		{name: "second rating averages", mean: 4.0, count: 1, add: 2.0, wantMean: 3.0, wantCount: 2},
		{name: "zero rating still counts", mean: 3.0, count: 2, add: 0, wantMean: 2.0, wantCount: 3},
		{name: "large count moves slowly", mean: 4.0, count: 9, add: 5.0, wantMean: 4.1, wantCount: 10},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := mustStats(t, c.mean, c.count).Add(c.add)
			want := mustStats(t, c.wantMean, c.wantCount)
			if diff := cmp.Diff(want, got, cmp.AllowUnexported(store.RatingStats{}), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("stats mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRatingStatsEdit(t *testing.T) {
	t.Run("count is unchanged and mean shifts by the delta", func(t *testing.T) {
		stats := mustStats(t, 3.0, 4)

		got, err := stats.Edit(2.0, 4.0)
		require.NoError(t, err)
		assert.Equal(t, int64(4), got.Count())
		assert.InDelta(t, 3.5, got.Mean(), 1e-9)
	})

	t.Run("identical rating is a no-op on the mean", func(t *testing.T) {
		stats := mustStats(t, 4.2, 5)

		got, err := stats.Edit(3.0, 3.0)
		require.NoError(t, err)
		assert.InDelta(t, 4.2, got.Mean(), 1e-9)
	})

	t.Run("editing with no counted ratings fails", func(t *testing.T) {
		stats := mustStats(t, 0, 0)

		_, err := stats.Edit(1.0, 2.0)
		require.ErrorIs(t, err, store.ErrNoRatings)
	})
}

func TestAddThenEditRoundTrip(t *testing.T) {
	// A review added and then edited must land on the same mean as if the
	// edited value had been submitted in the first place.
	base := mustStats(t, 4.0, 3)

	direct := base.Add(5.0)
	edited, err := base.Add(1.0).Edit(1.0, 5.0)
	require.NoError(t, err)

	assert.InDelta(t, direct.Mean(), edited.Mean(), 1e-9)
	assert.Equal(t, direct.Count(), edited.Count())
}
