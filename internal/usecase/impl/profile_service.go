// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "surplus/internal/delivery/context"
	domainerrors "surplus/internal/domain/errors"
	"surplus/internal/domain/repository"
	"surplus/internal/domain/service"
	"surplus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	storage   service.FileStorage
	mapper    *viewMapper
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	storage service.FileStorage,
	humanizer service.Humanizer,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		storage:   storage,
		mapper:    newViewMapper(humanizer, storage),
		logger:    logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the profile joined with the identity fields.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileView, error) {
	srv.log(ctx).Debug("Getting user profile", slog.Any("userID", userID))

	var view *usecase.ProfileView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		view = srv.mapper.profile(user)

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return view, nil
}

// UpdateProfile replaces the editable profile fields. The avatar is only replaced when a new image is provided.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*usecase.ProfileView, error) {
	srv.log(ctx).Info("Updating user profile", slog.Any("userID", userID))

	if !input.Gender.IsValid() {
		return nil, domainerrors.NewValidationError(map[string]string{"gender": "must be Male or Female"})
	}

	newImage, err := uploadImage(ctx, srv.storage, input.Image)
	if err != nil {
		return nil, err
	}

	var (
		view     *usecase.ProfileView
		oldImage string
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Find the user
		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// 2. Apply the changes
		user.Email = strings.ToLower(strings.TrimSpace(input.Email))
		if user.Profile == nil {
			return errors.Wrap(domainerrors.ErrUserNotFound, "profile missing")
		}
		user.Profile.Name = input.Name
		user.Profile.PhoneNumber = input.PhoneNumber
		user.Profile.Gender = input.Gender
		user.Profile.Birthday = input.Birthday
		if newImage != "" {
			oldImage = user.Profile.Image
			user.Profile.Image = newImage
		}

		// 3. Save
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		view = srv.mapper.profile(user)

		return nil
	})

	if err != nil {
		if newImage != "" {
			srv.deleteImage(ctx, newImage)
		}

		return nil, errors.Wrap(err, "failed to update user profile")
	}

	if oldImage != "" {
		srv.deleteImage(ctx, oldImage)
	}

	return view, nil
}

func (srv *profileService) deleteImage(ctx context.Context, key string) {
	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete image", slog.String("key", key), slog.Any("error", err))
	}
}
