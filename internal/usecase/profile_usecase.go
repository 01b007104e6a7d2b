// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"surplus/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*ProfileView, error)
}

// --- Input DTOs ---

// UpdateProfileInput defines the data required to update a profile.
// Every field except Image is replaced; Image is only replaced when provided.
type UpdateProfileInput struct {
	Email       string
	Name        string
	PhoneNumber string
	Gender      entity.Gender
	Birthday    time.Time
	Image       *ImageUpload
}
