//go:build unit

package fake

import (
	"context"
	"sort"

	"store-reservation/internal/usecase/queries"
	"store-reservation/internal/usecase/shared"
)

// ReservationReadStore serves reservation views straight from the fake
// state, mirroring the SQL read store's filtering and ordering rules.
type ReservationReadStore struct {
	u *UoW
}

func NewReservationReadStore(u *UoW) *ReservationReadStore {
	return &ReservationReadStore{u: u}
}

var _ queries.ReservationReadStore = (*ReservationReadStore)(nil)

func (s *ReservationReadStore) FindByID(_ context.Context, id int64) (*queries.ReservationView, error) {
	snap := s.u.Reservation(id)
	if snap == nil {
		return nil, notFound("reservation not found")
	}
	return reservationViewFromSnapshot(snap), nil
}

func (s *ReservationReadStore) FindByPartner(ctx context.Context, partnerID string, filter queries.ListFilter, limit, offset int32) ([]*queries.ReservationView, error) {
	return s.findByOwner(func(snap *shared.ReservationSnapshot) bool {
		return snap.PartnerID == partnerID
	}, filter, limit, offset)
}

func (s *ReservationReadStore) FindByUser(ctx context.Context, userID string, filter queries.ListFilter, limit, offset int32) ([]*queries.ReservationView, error) {
	return s.findByOwner(func(snap *shared.ReservationSnapshot) bool {
		return snap.UserID == userID
	}, filter, limit, offset)
}

func (s *ReservationReadStore) findByOwner(owns func(*shared.ReservationSnapshot) bool, filter queries.ListFilter, limit, offset int32) ([]*queries.ReservationView, error) {
	s.u.mu.Lock()
	defer s.u.mu.Unlock()

	from, to := filter.DateRange()
	var rows []*queries.ReservationView
	for _, snap := range s.u.st.reservations {
		if !owns(snap) {
			continue
		}
		if filter.Status != nil && snap.Status != string(*filter.Status) {
			continue
		}
		if from != nil && (snap.VisitAt.Before(*from) || snap.VisitAt.After(*to)) {
			continue
		}
		rows = append(rows, reservationViewFromSnapshot(snap))
	}

	// Unfiltered lists are newest first; filtered lists are chronological.
	if filter.IsZero() {
		sort.Slice(rows, func(i, j int) bool { return rows[i].VisitAt.After(rows[j].VisitAt) })
	} else {
		sort.Slice(rows, func(i, j int) bool { return rows[i].VisitAt.Before(rows[j].VisitAt) })
	}

	if int(offset) >= len(rows) {
		return nil, nil
	}
	rows = rows[offset:]
	if int(limit) < len(rows) {
		rows = rows[:limit]
	}
	return rows, nil
}

func reservationViewFromSnapshot(snap *shared.ReservationSnapshot) *queries.ReservationView {
	return &queries.ReservationView{
		ID:              snap.ID,
		UserID:          snap.UserID,
		PartnerID:       snap.PartnerID,
		StoreName:       snap.StoreName,
		Phone:           snap.Phone,
		People:          snap.People,
		Status:          snap.Status,
		StatusUpdatedAt: snap.StatusUpdatedAt,
		VisitAt:         snap.VisitAt,
		CreatedAt:       snap.CreatedAt,
	}
}
