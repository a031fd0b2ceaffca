package partner

import (
	"time"

	"store-reservation/internal/domain/user"
)

// Partner is a store operator account. Reservations copy the owning
// partner id from the store, so a partner never needs a back-reference.
type Partner struct {
	id           user.LoginID
	passwordHash string
	phone        user.PhoneNumber
	createdAt    time.Time
	updatedAt    time.Time
}

func NewPartner(id user.LoginID, passwordHash string, phone user.PhoneNumber, now time.Time) *Partner {
	return &Partner{
		id:           id,
		passwordHash: passwordHash,
		phone:        phone,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructPartner(id user.LoginID, passwordHash string, phone user.PhoneNumber, createdAt, updatedAt time.Time) *Partner {
	return &Partner{
		id:           id,
		passwordHash: passwordHash,
		phone:        phone,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (p *Partner) ID() user.LoginID        { return p.id }
func (p *Partner) PasswordHash() string    { return p.passwordHash }
func (p *Partner) Phone() user.PhoneNumber { return p.phone }
func (p *Partner) CreatedAt() time.Time    { return p.createdAt }
func (p *Partner) UpdatedAt() time.Time    { return p.updatedAt }
