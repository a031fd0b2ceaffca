package queries

import (
	"errors"
	"strings"
	"time"
)

// Fixed page sizes, matching the presentation contract.
const (
	ReservationPageSize = 10
	ReviewPageSize      = 10
	StorePageSize       = 10
)

// Read models (DTO for read side)
type ReservationView struct {
	ID              int64     `json:"id"`
	UserID          string    `json:"user_id"`
	PartnerID       string    `json:"partner_id"`
	StoreName       string    `json:"store_name"`
	Phone           string    `json:"phone"`
	People          int       `json:"people"`
	Status          string    `json:"status"`
	StatusUpdatedAt time.Time `json:"status_updated_at"`
	VisitAt         time.Time `json:"time"`
	CreatedAt       time.Time `json:"created_at"`
}

type ReviewView struct {
	ID            int64     `json:"id"`
	ReservationID int64     `json:"reservation_id"`
	UserID        string    `json:"user_id"`
	StoreName     string    `json:"store_name"`
	Rating        float64   `json:"rating"`
	Text          string    `json:"text"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type StoreView struct {
	ID          int64     `json:"id"`
	PartnerID   string    `json:"partner_id"`
	StoreName   string    `json:"store_name"`
	StoreAddr   string    `json:"store_addr"`
	Description string    `json:"description"`
	Rating      float64   `json:"rating"`
	RatingCount int64     `json:"rating_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var ErrInvalidSortType = errors.New("invalid sort type")

type ReviewSort string

const (
	ReviewSortLatest     ReviewSort = "LATEST"
	ReviewSortRatingDesc ReviewSort = "RATING_DESC"
	ReviewSortRatingAsc  ReviewSort = "RATING_ASC"
)

func ParseReviewSort(s string) (ReviewSort, error) {
	if s == "" {
		return ReviewSortLatest, nil
	}
	switch ReviewSort(strings.ToUpper(s)) {
	case ReviewSortLatest, ReviewSortRatingDesc, ReviewSortRatingAsc:
		return ReviewSort(strings.ToUpper(s)), nil
	default:
		return "", ErrInvalidSortType
	}
}

type StoreSort string

const (
	StoreSortAlphabet    StoreSort = "ALPHABET"
	StoreSortRating      StoreSort = "RATING"
	StoreSortRatingCount StoreSort = "RATING_COUNT"
)

func ParseStoreSort(s string) (StoreSort, error) {
	if s == "" {
		return StoreSortAlphabet, nil
	}
	switch StoreSort(strings.ToUpper(s)) {
	case StoreSortAlphabet, StoreSortRating, StoreSortRatingCount:
		return StoreSort(strings.ToUpper(s)), nil
	default:
		return "", ErrInvalidSortType
	}
}
