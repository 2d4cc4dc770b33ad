package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can authenticate and make reservations.
// Email is stored lowercased; identity for login is the email address.
// PasswordHash is a bcrypt hash and must never leave the service layer.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
