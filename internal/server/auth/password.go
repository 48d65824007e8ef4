// Package auth holds the credential primitives used by the user service:
// bcrypt password hashes, opaque session keys and signed password-reset
// tokens.
package auth

import (
	"errors"

	"github.com/griotme/griot/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash of password at the given cost.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword reports whether password matches hash. Mismatches yield
// common.ErrInvalidCredentials; anything else is a broken hash.
func CheckPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return common.ErrInvalidCredentials
	}
	return err
}

// NewSessionKey returns a fresh random session token key.
func NewSessionKey() (string, error) {
	return common.MakeRandHexString(common.SessionTokenBytes)
}
