package store

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyStoreName = errors.New("store name cannot be empty")
	ErrEmptyStoreAddr = errors.New("store address cannot be empty")
)

// Store is a partner-owned venue. Its rating stats are shared mutable
// state contended by concurrent review writes; see RatingStats.
type Store struct {
	id          int64
	partnerID   string
	storeName   string
	storeAddr   string
	description string
	rating      RatingStats
	createdAt   time.Time
	updatedAt   time.Time
}

func NewStore(partnerID, storeName, storeAddr, description string, now time.Time) (*Store, error) {
	name := strings.TrimSpace(storeName)
	if name == "" {
		return nil, ErrEmptyStoreName
	}
	if strings.TrimSpace(storeAddr) == "" {
		return nil, ErrEmptyStoreAddr
	}

	return &Store{
		partnerID:   partnerID,
		storeName:   name,
		storeAddr:   storeAddr,
		description: description,
		rating:      RatingStats{},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructStore(id int64, partnerID, storeName, storeAddr, description string, rating RatingStats, createdAt, updatedAt time.Time) *Store {
	return &Store{
		id:          id,
		partnerID:   partnerID,
		storeName:   storeName,
		storeAddr:   storeAddr,
		description: description,
		rating:      rating,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Store) UpdateInfo(storeAddr, description string, now time.Time) error {
	if strings.TrimSpace(storeAddr) == "" {
		return ErrEmptyStoreAddr
	}
	s.storeAddr = storeAddr
	s.description = description
	s.updatedAt = now
	return nil
}

func (s *Store) ApplyNewRating(rating float64, now time.Time) {
	s.rating = s.rating.Add(rating)
	s.updatedAt = now
}

func (s *Store) ApplyEditedRating(oldRating, newRating float64, now time.Time) error {
	next, err := s.rating.Edit(oldRating, newRating)
	if err != nil {
		return err
	}
	s.rating = next
	s.updatedAt = now
	return nil
}

func (s *Store) IsOwnedBy(partnerID string) bool {
	return s.partnerID == partnerID
}

func (s *Store) ID() int64           { return s.id }
func (s *Store) PartnerID() string   { return s.partnerID }
func (s *Store) StoreName() string   { return s.storeName }
func (s *Store) StoreAddr() string   { return s.storeAddr }
func (s *Store) Description() string { return s.description }
func (s *Store) Rating() RatingStats { return s.rating }
func (s *Store) CreatedAt() time.Time { return s.createdAt }
func (s *Store) UpdatedAt() time.Time { return s.updatedAt }
