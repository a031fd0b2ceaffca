package shared

import "time"

// Minimal snapshots for command-side reads. Full read models live in the
// queries package; these carry just what the write paths validate against.

type ReservationSnapshot struct {
	ID              int64
	UserID          string
	PartnerID       string
	StoreName       string
	Phone           string
	People          int
	Status          string
	StatusUpdatedAt time.Time
	VisitAt         time.Time
	CreatedAt       time.Time
}

type ReviewSnapshot struct {
	ID            int64
	ReservationID int64
	UserID        string
	StoreName     string
	Rating        float64
	Text          string
	CreatedAt     time.Time
}

type StoreSnapshot struct {
	ID          int64
	PartnerID   string
	StoreName   string
	StoreAddr   string
	Description string
	Rating      float64
	RatingCount int64
}

type UserSnapshot struct {
	ID    string
	Phone string
}

type PartnerSnapshot struct {
	ID    string
	Phone string
}
