package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength applies to admin account passwords everywhere they
// are set: login bootstrap, user creation, and password changes.
const MinPasswordLength = 8

// bcrypt cost 12 keeps hashing around 250ms on current hardware, slow
// enough to blunt offline guessing.
const hashCost = 12

var (
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrPasswordMismatch = errors.New("password does not match")
)

// ValidatePassword checks the password policy without hashing.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// HashPassword validates the policy and returns a bcrypt hash.
func HashPassword(password string) (string, error) {
	if err := ValidatePassword(password); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a candidate password against a stored hash.
// A wrong password yields ErrPasswordMismatch.
func VerifyPassword(password, hash string) error {
	switch err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("verifying password: %w", err)
	}
}
