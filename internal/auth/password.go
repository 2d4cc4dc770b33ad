package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pkordes/lodgings-api/internal/domain"
)

// DefaultBcryptCost is the work factor used when none is configured.
const DefaultBcryptCost = 8

// MaxPasswordBytes is the longest password bcrypt hashes in full.
// Bytes past it would be ignored, so longer passwords never match.
const MaxPasswordBytes = 72

// HashPassword returns the bcrypt hash of password. Costs outside bcrypt's
// accepted range fall back to DefaultBcryptCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("auth.HashPassword: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares password with a bcrypt hash.
// A mismatch, or a password longer than MaxPasswordBytes, wraps domain.ErrUnauthorized.
func CheckPassword(hash, password string) error {
	if len(password) > MaxPasswordBytes {
		return fmt.Errorf("auth.CheckPassword: %w", domain.ErrUnauthorized)
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return fmt.Errorf("auth.CheckPassword: %w", domain.ErrUnauthorized)
	}
	if err != nil {
		return fmt.Errorf("auth.CheckPassword: %w", err)
	}
	return nil
}
