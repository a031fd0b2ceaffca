package shared

import (
	"context"
	"time"

	"store-reservation/internal/domain/partner"
	"store-reservation/internal/domain/reservation"
	"store-reservation/internal/domain/review"
	"store-reservation/internal/domain/store"
	"store-reservation/internal/domain/user"
	"store-reservation/internal/pkg/errs"
)

// ErrConflictRetry marks a write that lost a serialization race after the
// transaction retry budget was exhausted. Callers may re-attempt the whole
// operation; the aggregate was not modified.
var ErrConflictRetry = errs.New("concurrent update conflict, retry")

type UnitOfWork interface {
	// Within: full read-write transaction with serialization-failure retry
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Reviews() ReviewRepository
	Stores() StoreRepository
	Users() UserRepository
	Partners() PartnerRepository
	Reads() CommandReads
}

type CommandReads interface {
	UserByID(ctx context.Context, id string) (*UserSnapshot, error)
	UserExists(ctx context.Context, id string) (bool, error)
	PartnerByID(ctx context.Context, id string) (*PartnerSnapshot, error)
	StoreByName(ctx context.Context, name string) (*StoreSnapshot, error)
	ReservationByID(ctx context.Context, id int64) (*ReservationSnapshot, error)
	ReviewByID(ctx context.Context, id int64) (*ReviewSnapshot, error)
	ReviewExistsForReservation(ctx context.Context, reservationID int64) (bool, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status reservation.Status, at time.Time) error
}

type ReviewRepository interface {
	Create(ctx context.Context, rev *review.Review) (int64, error)
	Update(ctx context.Context, rev *review.Review) error
}

// StoreRepository owns the rating aggregate. RatingForUpdate must acquire
// an exclusive lock on the store row so the read of (mean, count) and the
// subsequent UpdateRating form one atomic read-modify-write within the
// enclosing transaction.
type StoreRepository interface {
	Create(ctx context.Context, st *store.Store) (int64, error)
	UpdateInfo(ctx context.Context, st *store.Store) error
	RatingForUpdate(ctx context.Context, storeName string) (store.RatingStats, error)
	UpdateRating(ctx context.Context, storeName string, stats store.RatingStats) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
}

type PartnerRepository interface {
	Create(ctx context.Context, p *partner.Partner) error
}
