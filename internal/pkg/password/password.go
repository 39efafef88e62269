package password

import (
	"errors"

	"rental-marketplace/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// Cost matches the hashes seeded for staff and vendor accounts
const Cost = 12

var (
	ErrInvalidPassword = errs.New("invalid password")
	ErrTooLong         = errs.New("password exceeds 72 bytes")
	ErrMismatch        = errs.New("password does not match")
)

func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", ErrInvalidPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrTooLong
		}
		return "", errs.Wrap(err, "hash password")
	}
	return string(hashed), nil
}

// ComparePassword returns ErrMismatch for a wrong password; any other error means the stored hash is unusable
func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Wrap(err, "compare password")
	}
}
