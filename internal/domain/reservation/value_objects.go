package reservation

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrInvalidPeople = errors.New("people must be a positive number")
	ErrInvalidPhone  = errors.New("phone number must contain at least 4 digits")
)

type People struct {
	value int
}

func NewPeople(v int) (People, error) {
	if v <= 0 {
		return People{}, ErrInvalidPeople
	}
	return People{value: v}, nil
}

func (p People) Value() int { return p.value }

// Phone is the contact number copied from the user at booking time. A later
// phone change on the user does not propagate to existing reservations.
type Phone struct {
	number string
}

func NewPhone(number string) (Phone, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, number)

	if len(digits) < 4 {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{number: digits}, nil
}

func (p Phone) String() string { return p.number }

func (p Phone) Last4() string {
	return p.number[len(p.number)-4:]
}

func (p Phone) MatchesLast4(input string) bool {
	return input != "" && p.Last4() == input
}
