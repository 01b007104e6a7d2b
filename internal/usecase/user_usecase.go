// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"
	"time"

	"surplus/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ImageUpload is an image file received from a client.
type ImageUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username    string
	Email       string
	Name        string
	PhoneNumber string
	Password    string
	Gender      entity.Gender
	Birthday    time.Time
	Image       *ImageUpload // Optional avatar.
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// TokenOutput carries the API token of a user.
type TokenOutput struct {
	Token string `json:"token"`
}

// UserUsecase defines registration, login and token authentication.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// EnsureUsernameAvailable fails with ErrUserAlreadyExists when the username is registered,
	// ignoring case. An empty username passes.
	EnsureUsernameAvailable(ctx context.Context, username string) error
	Register(ctx context.Context, input *RegisterInput) (*TokenOutput, error)
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
}
