// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. PasswordHash is the only credential
// material the system ever persists; the plaintext password never leaves the
// registration/login request scope.
type User struct {
	ID           uuid.UUID // Unique identifier, assigned by the database.
	Name         string    // Display name.
	Email        string    // Login identifier, unique across all accounts.
	PasswordHash string    // bcrypt hash. Never serialized, never logged.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
