package user

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrInvalidLoginID = errors.New("login id cannot be empty")
	ErrInvalidPhone   = errors.New("phone number must be at least 10 digits")
)

type LoginID struct {
	value string
}

func NewLoginID(s string) (LoginID, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return LoginID{}, ErrInvalidLoginID
	}
	return LoginID{value: trimmed}, nil
}

func (id LoginID) String() string { return id.value }

type PhoneNumber struct {
	value string
}

func NewPhoneNumber(s string) (PhoneNumber, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)

	if len(digits) < 10 {
		return PhoneNumber{}, ErrInvalidPhone
	}
	return PhoneNumber{value: digits}, nil
}

func (p PhoneNumber) String() string { return p.value }
