package queries

import (
	"context"
	"time"

	"store-reservation/internal/domain/reservation"
	"store-reservation/internal/infra"
	"store-reservation/internal/pkg/errs"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrAccessDenied        = errs.New("no authority over this reservation")
	// ErrNoReservations is returned when a list page comes back empty.
	// Reporting absence as an error rather than an empty page is a
	// compatibility convention inherited from the original API; callers
	// should treat it as "nothing to show", not as a failure.
	ErrNoReservations = errs.New("no reservations found")
)

// ListFilter narrows an owner's reservation list. Date selects one calendar
// day. Ordering is asymmetric on purpose: an unfiltered list is newest
// first, while any status/date filter switches to chronological order.
type ListFilter struct {
	Status *reservation.Status
	Date   *time.Time
}

func (f ListFilter) IsZero() bool {
	return f.Status == nil && f.Date == nil
}

// DateRange expands Date into [00:00:00, 23:59:59.999999999] of that day.
func (f ListFilter) DateRange() (from, to *time.Time) {
	if f.Date == nil {
		return nil, nil
	}
	start := time.Date(f.Date.Year(), f.Date.Month(), f.Date.Day(), 0, 0, 0, 0, f.Date.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return &start, &end
}

type ReservationQueries interface {
	// GetDetail returns the reservation iff the caller is its user or its
	// partner; ownership-or-authorship is the only authorization rule.
	GetDetail(ctx context.Context, id int64, callerID string) (*ReservationView, error)
	ListForPartner(ctx context.Context, partnerID string, filter ListFilter, page int) ([]*ReservationView, error)
	ListForUser(ctx context.Context, userID string, filter ListFilter, page int) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	FindByPartner(ctx context.Context, partnerID string, filter ListFilter, limit, offset int32) ([]*ReservationView, error)
	FindByUser(ctx context.Context, userID string, filter ListFilter, limit, offset int32) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationReadStore
}

func NewReservationQueries(repo ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetDetail(ctx context.Context, id int64, callerID string) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	if view.UserID != callerID && view.PartnerID != callerID {
		return nil, ErrAccessDenied
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListForPartner(ctx context.Context, partnerID string, filter ListFilter, page int) ([]*ReservationView, error) {
	rows, err := q.repo.FindByPartner(ctx, partnerID, filter, ReservationPageSize, pageOffset(page, ReservationPageSize))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoReservations
	}
	return rows, nil
}

func (q *reservationQueriesImpl) ListForUser(ctx context.Context, userID string, filter ListFilter, page int) ([]*ReservationView, error) {
	rows, err := q.repo.FindByUser(ctx, userID, filter, ReservationPageSize, pageOffset(page, ReservationPageSize))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoReservations
	}
	return rows, nil
}

func pageOffset(page, size int) int32 {
	if page < 0 {
		page = 0
	}
	return int32(page * size)
}
