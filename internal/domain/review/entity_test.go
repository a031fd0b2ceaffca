//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"store-reservation/internal/domain/review"
	"store-reservation/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*builder.ReviewBuilder)
		errIs  error
	}{
		{name: "default is valid", mutate: func(b *builder.ReviewBuilder) {}},
		{name: "rating at lower bound", mutate: func(b *builder.ReviewBuilder) { b.Rating = 0 }},
		{name: "rating at upper bound", mutate: func(b *builder.ReviewBuilder) { b.Rating = 5 }},
		{name: "rating below bound", mutate: func(b *builder.ReviewBuilder) { b.Rating = -0.1 }, errIs: review.ErrRatingOutOfRange},
		{name: "rating above bound", mutate: func(b *builder.ReviewBuilder) { b.Rating = 5.1 }, errIs: review.ErrRatingOutOfRange},
		{name: "empty text allowed", mutate: func(b *builder.ReviewBuilder) { b.Text = "" }},
		{name: "text at length limit", mutate: func(b *builder.ReviewBuilder) { b.Text = strings.Repeat("a", 200) }},
		{name: "text over length limit", mutate: func(b *builder.ReviewBuilder) { b.Text = strings.Repeat("a", 201) }, errIs: review.ErrTextTooLong},
		{name: "length counts runes not bytes", mutate: func(b *builder.ReviewBuilder) { b.Text = strings.Repeat("味", 200) }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestReviewEdit(t *testing.T) {
	t.Run("returns the replaced rating", func(t *testing.T) {
		rev, err := builder.NewReviewBuilder().With(func(b *builder.ReviewBuilder) {
			b.Rating = 4.5
		}).BuildDomain()
		require.NoError(t, err)

		at := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
		old, err := rev.Edit(2.0, "changed my mind", at)
		require.NoError(t, err)

		assert.InDelta(t, 4.5, old.Value(), 1e-9)
		assert.InDelta(t, 2.0, rev.Rating().Value(), 1e-9)
		assert.Equal(t, "changed my mind", rev.Text().String())
		assert.Equal(t, at, rev.UpdatedAt())
	})

	t.Run("invalid rating leaves the review untouched", func(t *testing.T) {
		rev, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = rev.Edit(5.5, "oops", time.Now())
		require.ErrorIs(t, err, review.ErrRatingOutOfRange)
		assert.InDelta(t, 4.5, rev.Rating().Value(), 1e-9)
	})

	t.Run("too long text leaves the review untouched", func(t *testing.T) {
		rev, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = rev.Edit(3.0, strings.Repeat("b", 201), time.Now())
		require.ErrorIs(t, err, review.ErrTextTooLong)
		assert.Equal(t, "Great food and friendly staff", rev.Text().String())
	})
}

func TestIsWrittenBy(t *testing.T) {
	rev, err := builder.NewReviewBuilder().BuildDomain()
	require.NoError(t, err)

	assert.True(t, rev.IsWrittenBy("visitor1"))
	assert.False(t, rev.IsWrittenBy("visitor2"))
}
