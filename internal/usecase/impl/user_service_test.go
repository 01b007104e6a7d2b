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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	tokenRepo    *mockRepo.MockTokenRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	storage      *mockSvc.MockFileStorage
}

func createTestUserService(t *testing.T) userServiceFixtures {
	f := userServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		tokenRepo:    mockRepo.NewMockTokenRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		storage:      mockSvc.NewMockFileStorage(t),
	}

	f.service = NewUserService(UserServiceParams{
		TxManager:    f.txManager,
		UserRepo:     f.userRepo,
		TokenRepo:    f.tokenRepo,
		Hasher:       f.hasher,
		TokenService: f.tokenService,
		Storage:      f.storage,
		Logger:       newDiscardLogger(),
	})

	return f
}

func newRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Username:    "Alice",
		Email:       "Alice@Example.com",
		Name:        "Alice Liddell",
		PhoneNumber: "+441234567",
		Password:    "password123",
		Gender:      entity.GenderFemale,
		Birthday:    time.Date(1990, 5, 4, 0, 0, 0, 0, time.UTC),
	}
}

func TestUserService_Register_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := newRegisterInput()
	userID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txTokenRepo := mockRepo.NewMockTokenRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().TokenRepo().Return(txTokenRepo)
	expectTransaction(f.txManager, factory)

	f.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	txUserRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "alice", user.Username)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.Equal(t, "hashed_password", user.PasswordHash)
			require.NotNil(t, user.Profile)
			assert.Equal(t, "Alice Liddell", user.Profile.Name)
			assert.Equal(t, entity.GenderFemale, user.Profile.Gender)
			assert.Empty(t, user.Profile.Image)
			user.ID = userID
		}).
		Return(nil)
	f.tokenService.EXPECT().Issue(userID).Return("signed-token", nil)
	txTokenRepo.EXPECT().
		Create(ctx, &entity.AuthToken{UserID: userID, Key: "signed-token"}).
		Return(nil)

	output, err := f.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
}

func TestUserService_Register_StoresAvatar(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := newRegisterInput()
	input.Image = &usecase.ImageUpload{Filename: "me.png", ContentType: "image/png", Content: bytes.NewReader([]byte("png"))}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txTokenRepo := mockRepo.NewMockTokenRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().TokenRepo().Return(txTokenRepo)
	expectTransaction(f.txManager, factory)

	f.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	f.storage.EXPECT().Upload(ctx, avatarPrefix, "me.png", "image/png", mock.Anything).Return("avatars/abc.png", nil)
	txUserRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil)
	txUserRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Profile != nil && user.Profile.Image == "avatars/abc.png"
		})).
		Return(nil)
	f.tokenService.EXPECT().Issue(mock.Anything).Return("signed-token", nil)
	txTokenRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	_, err := f.service.Register(ctx, input)

	require.NoError(t, err)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := newRegisterInput()
	input.Image = &usecase.ImageUpload{Filename: "me.png", ContentType: "image/png", Content: bytes.NewReader([]byte("png"))}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().TokenRepo().Return(mockRepo.NewMockTokenRepository(t))
	expectTransaction(f.txManager, factory)

	f.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	f.storage.EXPECT().Upload(ctx, avatarPrefix, "me.png", "image/png", mock.Anything).Return("avatars/abc.png", nil)
	txUserRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(true, nil)
	f.storage.EXPECT().Delete(ctx, "avatars/abc.png").Return(nil)

	output, err := f.service.Register(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_EnsureUsernameAvailable(t *testing.T) {
	storeErr := errors.New("connection reset")

	tests := []struct {
		name      string
		username  string
		setupMock func(f userServiceFixtures)
		wantErr   error
	}{
		{
			name:     "taken in another case",
			username: "  Alice ",
			setupMock: func(f userServiceFixtures) {
				f.userRepo.EXPECT().ExistsByUsername(mock.Anything, "alice").Return(true, nil).Once()
			},
			wantErr: domainerrors.ErrUserAlreadyExists,
		},
		{
			name:     "available",
			username: "bob",
			setupMock: func(f userServiceFixtures) {
				f.userRepo.EXPECT().ExistsByUsername(mock.Anything, "bob").Return(false, nil).Once()
			},
		},
		{
			name:      "blank username is left to validation",
			username:  "   ",
			setupMock: func(userServiceFixtures) {},
		},
		{
			name:     "store failure",
			username: "bob",
			setupMock: func(f userServiceFixtures) {
				f.userRepo.EXPECT().ExistsByUsername(mock.Anything, "bob").Return(false, storeErr).Once()
			},
			wantErr: storeErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestUserService(t)
			tt.setupMock(f)

			err := f.service.EnsureUsernameAvailable(context.Background(), tt.username)

			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestUserService_Register_ConcurrentDuplicate(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := newRegisterInput()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().TokenRepo().Return(mockRepo.NewMockTokenRepository(t))
	expectTransaction(f.txManager, factory)

	f.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	txUserRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil)
	txUserRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrUsernameTaken)

	_, err := f.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_InvalidGender(t *testing.T) {
	f := createTestUserService(t)
	input := newRegisterInput()
	input.Gender = entity.Gender("X")

	_, err := f.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields(), "gender")
}

func TestUserService_Login_CaseInsensitiveUsername(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "hashed"}

	f.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	f.hasher.EXPECT().Check("password123", "hashed").Return(true)
	f.tokenRepo.EXPECT().FindByUserID(ctx, user.ID).Return(&entity.AuthToken{UserID: user.ID, Key: "existing-token"}, nil)

	output, err := f.service.Login(ctx, &usecase.LoginInput{Username: "ALICE", Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, "existing-token", output.Token)
}

func TestUserService_Login_IssuesTokenWhenMissing(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "hashed"}

	f.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	f.hasher.EXPECT().Check("password123", "hashed").Return(true)
	f.tokenRepo.EXPECT().FindByUserID(ctx, user.ID).Return(nil, repository.ErrTokenNotFound)
	f.tokenService.EXPECT().Issue(user.ID).Return("fresh-token", nil)
	f.tokenRepo.EXPECT().Create(ctx, &entity.AuthToken{UserID: user.ID, Key: "fresh-token"}).Return(nil)

	output, err := f.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, "fresh-token", output.Token)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f userServiceFixtures)
	}{
		{
			name: "unknown user",
			setup: func(f userServiceFixtures) {
				f.userRepo.EXPECT().FindByUsername(mock.Anything, "bob").Return(nil, repository.ErrUserNotFound)
			},
		},
		{
			name: "wrong password",
			setup: func(f userServiceFixtures) {
				f.userRepo.EXPECT().FindByUsername(mock.Anything, "bob").
					Return(&entity.User{ID: uuid.New(), PasswordHash: "hashed"}, nil)
				f.hasher.EXPECT().Check("secret-pass", "hashed").Return(false)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestUserService(t)
			tt.setup(f)

			output, err := f.service.Login(context.Background(), &usecase.LoginInput{Username: "bob", Password: "secret-pass"})

			assert.Nil(t, output)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
		})
	}
}

func TestUserService_Authenticate(t *testing.T) {
	userID := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		f := createTestUserService(t)
		f.tokenService.EXPECT().Verify("tok").Return(userID, nil)
		f.tokenRepo.EXPECT().FindByKey(mock.Anything, "tok").Return(&entity.AuthToken{UserID: userID, Key: "tok"}, nil)

		got, err := f.service.Authenticate(context.Background(), "tok")

		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("bad signature", func(t *testing.T) {
		f := createTestUserService(t)
		f.tokenService.EXPECT().Verify("tok").Return(uuid.Nil, errors.New("signature is invalid"))

		_, err := f.service.Authenticate(context.Background(), "tok")

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})

	t.Run("token not stored", func(t *testing.T) {
		f := createTestUserService(t)
		f.tokenService.EXPECT().Verify("tok").Return(userID, nil)
		f.tokenRepo.EXPECT().FindByKey(mock.Anything, "tok").Return(nil, repository.ErrTokenNotFound)

		_, err := f.service.Authenticate(context.Background(), "tok")

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})

	t.Run("subject mismatch", func(t *testing.T) {
		f := createTestUserService(t)
		f.tokenService.EXPECT().Verify("tok").Return(userID, nil)
		f.tokenRepo.EXPECT().FindByKey(mock.Anything, "tok").Return(&entity.AuthToken{UserID: uuid.New(), Key: "tok"}, nil)

		_, err := f.service.Authenticate(context.Background(), "tok")

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})
}
