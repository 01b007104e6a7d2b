package impl

import (
	"bytes"
	"context"
	"testing"
	"time"

	"surplus/internal/domain/entity"
	domainerrors "surplus/internal/domain/errors"
	"surplus/internal/domain/repository"
	mockRepo "surplus/internal/mocks/repository"
	mockSvc "surplus/internal/mocks/service"
	"surplus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	storage   *mockSvc.MockFileStorage
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	humanizer, storage := newViewDeps(t)

	userRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo).Maybe()
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return profileServiceFixtures{
		service:   NewProfileService(txManager, storage, humanizer, newDiscardLogger()),
		txManager: txManager,
		userRepo:  userRepo,
		storage:   storage,
	}
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
		Profile: &entity.Profile{
			Name:        "Alice",
			PhoneNumber: "123",
			Gender:      entity.GenderFemale,
			Birthday:    time.Date(1990, 5, 4, 0, 0, 0, 0, time.UTC),
			Image:       "avatars/old.png",
		},
	}
}

func TestProfileService_GetProfile(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()
	user := newTestUser()

	f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	view, err := f.service.GetProfile(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, &usecase.ProfileView{
		ID:          user.ID.String(),
		Name:        "Alice",
		Username:    "alice",
		Email:       "alice@example.com",
		PhoneNumber: "123",
		Gender:      "F",
		Birthday:    "1990-05-04",
		Image:       testImageBaseURL + "avatars/old.png",
	}, view)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	f := createTestProfileService(t)
	userID := uuid.New()

	f.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	view, err := f.service.GetProfile(context.Background(), userID)

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateProfile_KeepsImageWhenNotProvided(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()
	user := newTestUser()
	birthday := time.Date(1991, 1, 2, 0, 0, 0, 0, time.UTC)

	f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "new@example.com" &&
				u.Profile.Name == "Alice L" &&
				u.Profile.Gender == entity.GenderMale &&
				u.Profile.Birthday.Equal(birthday) &&
				u.Profile.Image == "avatars/old.png"
		})).
		Return(nil)

	view, err := f.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{
		Email:       "NEW@example.com",
		Name:        "Alice L",
		PhoneNumber: "456",
		Gender:      entity.GenderMale,
		Birthday:    birthday,
	})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", view.Email)
	assert.Equal(t, "456", view.PhoneNumber)
	assert.Equal(t, "M", view.Gender)
	assert.Equal(t, "1991-01-02", view.Birthday)
}

func TestProfileService_UpdateProfile_ReplacesImage(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()
	user := newTestUser()

	f.storage.EXPECT().Upload(ctx, avatarPrefix, "new.png", "image/png", mock.Anything).Return("avatars/new.png", nil)
	f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.userRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	f.storage.EXPECT().Delete(ctx, "avatars/old.png").Return(nil)

	view, err := f.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{
		Email:  "alice@example.com",
		Name:   "Alice",
		Gender: entity.GenderFemale,
		Image:  &usecase.ImageUpload{Filename: "new.png", ContentType: "image/png", Content: bytes.NewReader([]byte("png"))},
	})

	require.NoError(t, err)
	assert.Equal(t, testImageBaseURL+"avatars/new.png", view.Image)
}

func TestProfileService_UpdateProfile_RemovesUploadOnFailure(t *testing.T) {
	f := createTestProfileService(t)
	ctx := context.Background()
	user := newTestUser()

	f.storage.EXPECT().Upload(ctx, avatarPrefix, "new.png", "image/png", mock.Anything).Return("avatars/new.png", nil)
	f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.userRepo.EXPECT().Update(ctx, mock.Anything).Return(errors.New("connection reset"))
	f.storage.EXPECT().Delete(ctx, "avatars/new.png").Return(nil)

	_, err := f.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{
		Email:  "alice@example.com",
		Gender: entity.GenderFemale,
		Image:  &usecase.ImageUpload{Filename: "new.png", ContentType: "image/png", Content: bytes.NewReader([]byte("png"))},
	})

	require.Error(t, err)
}

func TestProfileService_UpdateProfile_InvalidGender(t *testing.T) {
	f := createTestProfileService(t)

	_, err := f.service.UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateProfileInput{Gender: "Other"})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
