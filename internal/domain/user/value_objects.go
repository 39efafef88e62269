package user

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
	ErrInvalidPhone    = errors.New("phone number must be at least 8 characters long")
)

const MinPhoneLength = 8

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < MinPhoneLength {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string {
	return p.value
}

// FullName keeps the display name and the first/last split payment processors ask for
type FullName struct {
	value string
}

const (
	DefaultDisplayName = "Guest User"
	defaultFirstName   = "Guest"
	defaultLastName    = "User"
)

func NewFullName(s string) FullName {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		s = DefaultDisplayName
	}
	return FullName{value: s}
}

func (n FullName) Value() string {
	return n.value
}

func (n FullName) Split() (first, last string) {
	parts := strings.Fields(n.value)
	if len(parts) == 0 {
		return defaultFirstName, defaultLastName
	}
	first = parts[0]
	last = strings.Join(parts[1:], " ")
	if last == "" {
		last = defaultLastName
	}
	return first, last
}

// ReconstructPhone wraps a stored number as-is
func ReconstructPhone(s string) Phone {
	return Phone{value: s}
}
