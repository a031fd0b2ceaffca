package reservation

import (
	"errors"
	"strings"
)

var (
	ErrStatusCodeRequired = errors.New("reservation status code is required")
	ErrStatusCodeInvalid  = errors.New("invalid reservation status code")
)

// Status is the reservation lifecycle state.
//
// The nominal transition graph is:
//
//	REQUESTING -> CONFIRM | REFUSED
//	CONFIRM    -> ARRIVED (arrival check only) | NO_SHOW
//	ARRIVED    -> USE_COMPLETE
//
// REFUSED, USE_COMPLETE and NO_SHOW are terminal. Note that ChangeStatus
// deliberately does not enforce this graph: a partner may set any status on
// a reservation they own, matching the behavior of the system this service
// is compatible with. ARRIVED is the one status reached through a dedicated
// operation (the arrival check) rather than the generic transition.
type Status string

const (
	StatusRequesting  Status = "REQUESTING"
	StatusConfirm     Status = "CONFIRM"
	StatusRefused     Status = "REFUSED"
	StatusArrived     Status = "ARRIVED"
	StatusUseComplete Status = "USE_COMPLETE"
	StatusNoShow      Status = "NO_SHOW"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusRequesting, StatusConfirm, StatusRefused, StatusArrived, StatusUseComplete, StatusNoShow:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusRefused, StatusUseComplete, StatusNoShow:
		return true
	default:
		return false
	}
}

// ParseStatus resolves a status code string case-insensitively. A blank
// input and an unknown code are distinct failures so callers can report
// "missing" and "illegal value" separately.
func ParseStatus(code string) (Status, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "", ErrStatusCodeRequired
	}

	s := Status(strings.ToUpper(trimmed))
	if !s.IsValid() {
		return "", ErrStatusCodeInvalid
	}
	return s, nil
}
