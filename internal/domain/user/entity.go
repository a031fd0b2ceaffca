package user

import "time"

// User is a booking customer. The phone number stored here is the source
// copied into reservations at creation time.
type User struct {
	id           LoginID
	passwordHash string
	phone        PhoneNumber
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(id LoginID, passwordHash string, phone PhoneNumber, now time.Time) *User {
	return &User{
		id:           id,
		passwordHash: passwordHash,
		phone:        phone,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructUser(id LoginID, passwordHash string, phone PhoneNumber, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		passwordHash: passwordHash,
		phone:        phone,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() LoginID           { return u.id }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Phone() PhoneNumber    { return u.phone }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
