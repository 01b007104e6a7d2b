// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"surplus/internal/domain/entity"
	"surplus/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when a username collides with an existing one.
	ErrUsernameTaken = errors.New("username already taken")
)

// UserRepository defines the standard operations for user and profile persistence.
type UserRepository interface {
	// FindByID retrieves a single user with its profile.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a user by the case-folded username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByUsername reports whether the case-folded username is already registered.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Create persists a new user and its profile.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies the user identity fields and its profile.
	Update(ctx context.Context, user *entity.User) error
}
