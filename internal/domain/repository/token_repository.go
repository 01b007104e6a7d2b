package repository

import (
	"context"

	"surplus/internal/domain/entity"
	"surplus/internal/errors"

	"github.com/google/uuid"
)

// ErrTokenNotFound is returned when a user has no issued token.
var ErrTokenNotFound = errors.New("auth token not found")

// TokenRepository stores the single API token of each user.
type TokenRepository interface {
	// FindByUserID returns the token issued to the user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.AuthToken, error)

	// FindByKey returns the token record matching the raw key.
	FindByKey(ctx context.Context, key string) (*entity.AuthToken, error)

	// Create persists a newly issued token. A user can only hold one token.
	Create(ctx context.Context, token *entity.AuthToken) error
}
