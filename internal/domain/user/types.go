package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role distinguishes booking customers from store operators. Role-based
// endpoint gating lives in the handler layer; the core only uses roles to
// label issued tokens.
type Role string

const (
	RoleUser    Role = "USER"
	RolePartner Role = "PARTNER"
)

func (r Role) String() string {
	return string(r)
}

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RolePartner:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}
