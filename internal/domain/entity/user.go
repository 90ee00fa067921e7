// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record behind every acting party in the system. The role
// is the single source of truth for authorization; mutations always re-load it
// from storage instead of trusting client-supplied claims.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Username     string    // Unique login identifier, lowercase.
	Name         string    // Display name.
	PasswordHash string    // bcrypt hash of the user's password. Never exposed.
	Role         Role      // The user's single role. Changed only by explicit admin update.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
