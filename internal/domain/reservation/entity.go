package reservation

import (
	"errors"
	"time"
)

// ArrivalDeadline is how long before the scheduled visit the check-in
// window closes: arrival must be confirmed no later than 10 minutes ahead.
const ArrivalDeadline = 10 * time.Minute

var (
	ErrPhoneMismatch       = errors.New("phone number does not match")
	ErrNotConfirmed        = errors.New("reservation is not in CONFIRM status")
	ErrArrivalWindowClosed = errors.New("arrival check window has closed")
)

// Reservation is a booked visit slot. The visit time is fixed at creation;
// everything that changes afterwards goes through the status field.
type Reservation struct {
	id              int64
	userID          string
	partnerID       string
	storeName       string
	phone           Phone
	people          People
	status          Status
	statusUpdatedAt time.Time
	visitAt         time.Time
	createdAt       time.Time
}

// NewReservation builds a booking request in its initial state. The phone
// and partner id are copies resolved by the caller from the user and store
// records; the id stays zero until the record is persisted.
func NewReservation(userID string, phone Phone, partnerID, storeName string, people People, visitAt, now time.Time) *Reservation {
	return &Reservation{
		userID:          userID,
		partnerID:       partnerID,
		storeName:       storeName,
		phone:           phone,
		people:          people,
		status:          StatusRequesting,
		statusUpdatedAt: now,
		visitAt:         visitAt,
		createdAt:       now,
	}
}

func ReconstructReservation(
	id int64,
	userID string,
	phone Phone,
	partnerID, storeName string,
	people People,
	status Status,
	statusUpdatedAt, visitAt, createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		userID:          userID,
		partnerID:       partnerID,
		storeName:       storeName,
		phone:           phone,
		people:          people,
		status:          status,
		statusUpdatedAt: statusUpdatedAt,
		visitAt:         visitAt,
		createdAt:       createdAt,
	}
}

// SetStatus applies a partner-driven transition. No from->to table is
// enforced here beyond what the caller checks; see the Status doc comment.
func (r *Reservation) SetStatus(next Status, now time.Time) {
	r.status = next
	r.statusUpdatedAt = now
}

// Arrive runs the kiosk check-in protocol: phone suffix, CONFIRM status,
// then the timing window. The boundary is strict-after: checking in at
// exactly visitAt minus 10 minutes still succeeds.
func (r *Reservation) Arrive(phoneLast4 string, now time.Time) error {
	if !r.phone.MatchesLast4(phoneLast4) {
		return ErrPhoneMismatch
	}
	if r.status != StatusConfirm {
		return ErrNotConfirmed
	}
	if now.After(r.visitAt.Add(-ArrivalDeadline)) {
		return ErrArrivalWindowClosed
	}

	r.status = StatusArrived
	r.statusUpdatedAt = now
	return nil
}

func (r *Reservation) IsOwnedBy(partnerID string) bool {
	return r.partnerID == partnerID
}

func (r *Reservation) IsBookedBy(userID string) bool {
	return r.userID == userID
}

func (r *Reservation) ID() int64                  { return r.id }
func (r *Reservation) UserID() string             { return r.userID }
func (r *Reservation) PartnerID() string          { return r.partnerID }
func (r *Reservation) StoreName() string          { return r.storeName }
func (r *Reservation) Phone() Phone               { return r.phone }
func (r *Reservation) People() People             { return r.people }
func (r *Reservation) Status() Status             { return r.status }
func (r *Reservation) StatusUpdatedAt() time.Time { return r.statusUpdatedAt }
func (r *Reservation) VisitAt() time.Time         { return r.visitAt }
func (r *Reservation) CreatedAt() time.Time       { return r.createdAt }
