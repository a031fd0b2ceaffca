package response

import (
	"time"

	"store-reservation/internal/usecase/queries"
)

type StoreResponse struct {
	ID          int64     `json:"id"`
	PartnerID   string    `json:"partnerId"`
	StoreName   string    `json:"storeName"`
	StoreAddr   string    `json:"storeAddr"`
	Description string    `json:"description"`
	Rating      float64   `json:"rating"`
	RatingCount int64     `json:"ratingCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromStoreView(rm *queries.StoreView) *StoreResponse {
	return &StoreResponse{
		ID:          rm.ID,
		PartnerID:   rm.PartnerID,
		StoreName:   rm.StoreName,
		StoreAddr:   rm.StoreAddr,
		Description: rm.Description,
		Rating:      rm.Rating,
		RatingCount: rm.RatingCount,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func FromStoreViews(rms []*queries.StoreView) []*StoreResponse {
	result := make([]*StoreResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromStoreView(rm)
	}
	return result
}
