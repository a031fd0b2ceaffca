//go:build unit || e2e

package builder

import (
	"time"

	domstore "store-reservation/internal/domain/store"
	"store-reservation/internal/usecase/shared"
)

type StoreBuilder struct {
	ID          int64
	PartnerID   string
	StoreName   string
	StoreAddr   string
	Description string
	Rating      float64
	RatingCount int64
	CreatedAt   time.Time
}

func NewStoreBuilder() *StoreBuilder {
	return &StoreBuilder{
		ID:          1,
		PartnerID:   "partner1",
		StoreName:   "Sample Diner",
		StoreAddr:   "12 Main Street",
		Description: "Family diner",
		Rating:      0,
		RatingCount: 0,
		CreatedAt:   time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *StoreBuilder) With(mutate func(*StoreBuilder)) *StoreBuilder {
	mutate(b)
	return b
}

func (b *StoreBuilder) BuildDomain() (*domstore.Store, error) {
	stats, err := domstore.NewRatingStats(b.Rating, b.RatingCount)
	if err != nil {
		return nil, err
	}
	return domstore.ReconstructStore(
		b.ID, b.PartnerID, b.StoreName, b.StoreAddr, b.Description,
		stats, b.CreatedAt, b.CreatedAt,
	), nil
}

func (b *StoreBuilder) BuildSnapshot() *shared.StoreSnapshot {
	return &shared.StoreSnapshot{
		ID:          b.ID,
		PartnerID:   b.PartnerID,
		StoreName:   b.StoreName,
		StoreAddr:   b.StoreAddr,
		Description: b.Description,
		Rating:      b.Rating,
		RatingCount: b.RatingCount,
	}
}
