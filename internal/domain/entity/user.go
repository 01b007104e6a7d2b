// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the credential identity of a mobile client.
// Username and Email are always stored lower-cased.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // Unique, case-folded login name.
	Email        string    // Contact email, lower-cased.
	PasswordHash string    // bcrypt hash of the password.
	Profile      *Profile  // One-to-one profile. Nil when not preloaded.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile holds the personal data owned by a User.
type Profile struct {
	UserID      uuid.UUID // Foreign Key that links this profile to its User.
	Name        string    // Display name.
	PhoneNumber string
	Gender      Gender
	Birthday    time.Time // Date only; the time part is always midnight UTC.
	Image       string    // Storage key of the avatar image, empty when none was uploaded.
	UpdatedAt   time.Time
}

// AuthToken is the single long-lived API token issued to a user.
// It is issued once at registration and returned again on every login.
type AuthToken struct {
	UserID    uuid.UUID
	Key       string
	CreatedAt time.Time
}
