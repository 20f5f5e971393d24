package entity

import (
	"time"
)

// User is the aggregate root for the credential domain.
// Passwords are stored as bcrypt hashes in PasswordHash; the plaintext is
// never persisted. APIKey is the opaque bearer credential issued once at
// registration and never rotated.
type User struct {
	UserID       string
	PasswordHash string
	APIKey       string
	CreatedAt    time.Time
}
