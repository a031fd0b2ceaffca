//go:build unit

// Package fake provides an in-memory UnitOfWork for exercising command
// usecases without a database. Within serializes callers on one mutex,
// which stands in for the per-store row lock the real transaction takes.
package fake

import (
	"context"
	"sync"
	"time"

	"store-reservation/internal/domain/partner"
	"store-reservation/internal/domain/reservation"
	"store-reservation/internal/domain/review"
	"store-reservation/internal/domain/store"
	"store-reservation/internal/domain/user"
	"store-reservation/internal/infra"
	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/usecase/shared"
)

type state struct {
	users        map[string]*shared.UserSnapshot
	partners     map[string]*shared.PartnerSnapshot
	stores       map[string]*shared.StoreSnapshot
	reservations map[int64]*shared.ReservationSnapshot
	reviews      map[int64]*shared.ReviewSnapshot

	nextStoreID       int64
	nextReservationID int64
	nextReviewID      int64
}

type UoW struct {
	mu sync.Mutex
	st *state
}

func NewUoW() *UoW {
	return &UoW{st: &state{
		users:             make(map[string]*shared.UserSnapshot),
		partners:          make(map[string]*shared.PartnerSnapshot),
		stores:            make(map[string]*shared.StoreSnapshot),
		reservations:      make(map[int64]*shared.ReservationSnapshot),
		reviews:           make(map[int64]*shared.ReviewSnapshot),
		nextStoreID:       1,
		nextReservationID: 1,
		nextReviewID:      1,
	}}
}

var _ shared.UnitOfWork = (*UoW)(nil)

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(ctx, &fakeTx{st: u.st})
}

func (u *UoW) CommandReads() shared.CommandReads {
	return &lockedReads{u: u}
}

// Seed helpers install fixtures directly, bypassing the repositories.

func (u *UoW) SeedUser(snap *shared.UserSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.users[snap.ID] = snap
}

func (u *UoW) SeedPartner(snap *shared.PartnerSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.partners[snap.ID] = snap
}

func (u *UoW) SeedStore(snap *shared.StoreSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if snap.ID == 0 {
		snap.ID = u.st.nextStoreID
	}
	if snap.ID >= u.st.nextStoreID {
		u.st.nextStoreID = snap.ID + 1
	}
	u.st.stores[snap.StoreName] = snap
}

func (u *UoW) SeedReservation(snap *shared.ReservationSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if snap.ID == 0 {
		snap.ID = u.st.nextReservationID
	}
	if snap.ID >= u.st.nextReservationID {
		u.st.nextReservationID = snap.ID + 1
	}
	u.st.reservations[snap.ID] = snap
}

func (u *UoW) SeedReview(snap *shared.ReviewSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if snap.ID == 0 {
		snap.ID = u.st.nextReviewID
	}
	if snap.ID >= u.st.nextReviewID {
		u.st.nextReviewID = snap.ID + 1
	}
	u.st.reviews[snap.ID] = snap
}

// Inspection helpers for assertions after the fact.

func (u *UoW) Reservation(id int64) *shared.ReservationSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.st.reservations[id]
}

func (u *UoW) Review(id int64) *shared.ReviewSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.st.reviews[id]
}

func (u *UoW) ReviewCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.st.reviews)
}

func (u *UoW) Store(name string) *shared.StoreSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.st.stores[name]
}

func (u *UoW) User(id string) *shared.UserSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.st.users[id]
}

func (u *UoW) Partner(id string) *shared.PartnerSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.st.partners[id]
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, errs.New("no rows"), infra.KindNotFound)
}

func duplicate(msg string) error {
	return infra.WrapRepoErr(msg, errs.New("duplicate key"), infra.KindDuplicateKey)
}

// fakeTx serves repositories over the shared state. The enclosing Within
// already holds the mutex, so nothing here locks.
type fakeTx struct {
	st *state
}

func (t *fakeTx) Reservations() shared.ReservationRepository { return &reservationRepo{st: t.st} }
func (t *fakeTx) Reviews() shared.ReviewRepository           { return &reviewRepo{st: t.st} }
func (t *fakeTx) Stores() shared.StoreRepository             { return &storeRepo{st: t.st} }
func (t *fakeTx) Users() shared.UserRepository               { return &userRepo{st: t.st} }
func (t *fakeTx) Partners() shared.PartnerRepository         { return &partnerRepo{st: t.st} }
func (t *fakeTx) Reads() shared.CommandReads                 { return &stateReads{st: t.st} }

type reservationRepo struct {
	st *state
}

func (r *reservationRepo) Create(_ context.Context, res *reservation.Reservation) (int64, error) {
	id := r.st.nextReservationID
	r.st.nextReservationID++
	r.st.reservations[id] = &shared.ReservationSnapshot{
		ID:              id,
		UserID:          res.UserID(),
		PartnerID:       res.PartnerID(),
		StoreName:       res.StoreName(),
		Phone:           res.Phone().String(),
		People:          res.People().Value(),
		Status:          string(res.Status()),
		StatusUpdatedAt: res.StatusUpdatedAt(),
		VisitAt:         res.VisitAt(),
		CreatedAt:       res.CreatedAt(),
	}
	return id, nil
}

func (r *reservationRepo) UpdateStatus(_ context.Context, id int64, status reservation.Status, at time.Time) error {
	snap, ok := r.st.reservations[id]
	if !ok {
		return notFound("reservation not found")
	}
	snap.Status = string(status)
	snap.StatusUpdatedAt = at
	return nil
}

type reviewRepo struct {
	st *state
}

func (r *reviewRepo) Create(_ context.Context, rev *review.Review) (int64, error) {
	for _, existing := range r.st.reviews {
		if existing.ReservationID == rev.ReservationID() {
			return 0, duplicate("review already exists for reservation")
		}
	}
	id := r.st.nextReviewID
	r.st.nextReviewID++
	r.st.reviews[id] = &shared.ReviewSnapshot{
		ID:            id,
		ReservationID: rev.ReservationID(),
		UserID:        rev.UserID(),
		StoreName:     rev.StoreName(),
		Rating:        rev.Rating().Value(),
		Text:          rev.Text().String(),
		CreatedAt:     rev.CreatedAt(),
	}
	return id, nil
}

func (r *reviewRepo) Update(_ context.Context, rev *review.Review) error {
	snap, ok := r.st.reviews[rev.ID()]
	if !ok {
		return notFound("review not found")
	}
	snap.Rating = rev.Rating().Value()
	snap.Text = rev.Text().String()
	return nil
}

type storeRepo struct {
	st *state
}

func (r *storeRepo) Create(_ context.Context, st *store.Store) (int64, error) {
	if _, exists := r.st.stores[st.StoreName()]; exists {
		return 0, duplicate("store name already taken")
	}
	id := r.st.nextStoreID
	r.st.nextStoreID++
	r.st.stores[st.StoreName()] = &shared.StoreSnapshot{
		ID:          id,
		PartnerID:   st.PartnerID(),
		StoreName:   st.StoreName(),
		StoreAddr:   st.StoreAddr(),
		Description: st.Description(),
		Rating:      st.Rating().Mean(),
		RatingCount: st.Rating().Count(),
	}
	return id, nil
}

func (r *storeRepo) UpdateInfo(_ context.Context, st *store.Store) error {
	snap, ok := r.st.stores[st.StoreName()]
	if !ok {
		return notFound("store not found")
	}
	snap.StoreAddr = st.StoreAddr()
	snap.Description = st.Description()
	return nil
}

func (r *storeRepo) RatingForUpdate(_ context.Context, storeName string) (store.RatingStats, error) {
	snap, ok := r.st.stores[storeName]
	if !ok {
		return store.RatingStats{}, notFound("store not found")
	}
	return store.NewRatingStats(snap.Rating, snap.RatingCount)
}

func (r *storeRepo) UpdateRating(_ context.Context, storeName string, stats store.RatingStats) error {
	snap, ok := r.st.stores[storeName]
	if !ok {
		return notFound("store not found")
	}
	snap.Rating = stats.Mean()
	snap.RatingCount = stats.Count()
	return nil
}

type userRepo struct {
	st *state
}

func (r *userRepo) Create(_ context.Context, u *user.User) error {
	id := u.ID().String()
	if _, exists := r.st.users[id]; exists {
		return duplicate("login id already taken")
	}
	r.st.users[id] = &shared.UserSnapshot{ID: id, Phone: u.Phone().String()}
	return nil
}

type partnerRepo struct {
	st *state
}

func (r *partnerRepo) Create(_ context.Context, p *partner.Partner) error {
	id := p.ID().String()
	if _, exists := r.st.partners[id]; exists {
		return duplicate("login id already taken")
	}
	r.st.partners[id] = &shared.PartnerSnapshot{ID: id, Phone: p.Phone().String()}
	return nil
}

// stateReads answers command reads without locking; used inside Within.
type stateReads struct {
	st *state
}

func (r *stateReads) UserByID(_ context.Context, id string) (*shared.UserSnapshot, error) {
	snap, ok := r.st.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return snap, nil
}

func (r *stateReads) UserExists(_ context.Context, id string) (bool, error) {
	_, ok := r.st.users[id]
	return ok, nil
}

func (r *stateReads) PartnerByID(_ context.Context, id string) (*shared.PartnerSnapshot, error) {
	snap, ok := r.st.partners[id]
	if !ok {
		return nil, notFound("partner not found")
	}
	return snap, nil
}

func (r *stateReads) StoreByName(_ context.Context, name string) (*shared.StoreSnapshot, error) {
	snap, ok := r.st.stores[name]
	if !ok {
		return nil, notFound("store not found")
	}
	return snap, nil
}

func (r *stateReads) ReservationByID(_ context.Context, id int64) (*shared.ReservationSnapshot, error) {
	snap, ok := r.st.reservations[id]
	if !ok {
		return nil, notFound("reservation not found")
	}
	return snap, nil
}

func (r *stateReads) ReviewByID(_ context.Context, id int64) (*shared.ReviewSnapshot, error) {
	snap, ok := r.st.reviews[id]
	if !ok {
		return nil, notFound("review not found")
	}
	return snap, nil
}

func (r *stateReads) ReviewExistsForReservation(_ context.Context, reservationID int64) (bool, error) {
	for _, rev := range r.st.reviews {
		if rev.ReservationID == reservationID {
			return true, nil
		}
	}
	return false, nil
}

// lockedReads is the outside-transaction view; every call takes the mutex.
type lockedReads struct {
	u *UoW
}

func (r *lockedReads) UserByID(ctx context.Context, id string) (*shared.UserSnapshot, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	return (&stateReads{st: r.u.st}).UserByID(ctx, id)
}

func (r *lockedReads) UserExists(ctx context.Context, id string) (bool, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	return (&stateReads{st: r.u.st}).UserExists(ctx, id)
}

func (r *lockedReads) PartnerByID(ctx context.Context, id string) (*shared.PartnerSnapshot, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	return (&stateReads{st: r.u.st}).PartnerByID(ctx, id)
}

func (r *lockedReads) StoreByName(ctx context.Context, name string) (*shared.StoreSnapshot, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	return (&stateReads{st: r.u.st}).StoreByName(ctx, name)
}

func (r *lockedReads) ReservationByID(ctx context.Context, id int64) (*shared.ReservationSnapshot, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	return (&stateReads{st: r.u.st}).ReservationByID(ctx, id)
}

func (r *lockedReads) ReviewByID(ctx context.Context, id int64) (*shared.ReviewSnapshot, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	return (&stateReads{st: r.u.st}).ReviewByID(ctx, id)
}

func (r *lockedReads) ReviewExistsForReservation(ctx context.Context, reservationID int64) (bool, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	return (&stateReads{st: r.u.st}).ReviewExistsForReservation(ctx, reservationID)
}
