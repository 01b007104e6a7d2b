package service

import (
	"github.com/google/uuid"
)

// TokenService issues and verifies the opaque API tokens handed to mobile clients.
type TokenService interface {
	// Issue creates a new signed token for the user.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks the token signature and returns the user it was issued to.
	Verify(token string) (uuid.UUID, error)
}
