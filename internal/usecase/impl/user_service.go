// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "surplus/internal/delivery/context"
	"surplus/internal/domain/entity"
	domainerrors "surplus/internal/domain/errors"
	"surplus/internal/domain/repository"
	"surplus/internal/domain/service"
	"surplus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const avatarPrefix = "avatars"

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	tokenRepo    repository.TokenRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	storage      service.FileStorage
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	TokenRepo    repository.TokenRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Storage      service.FileStorage
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		tokenRepo:    params.TokenRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		storage:      params.Storage,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EnsureUsernameAvailable lets registration report a taken username before it looks at other fields.
func (srv *userService) EnsureUsernameAvailable(ctx context.Context, username string) error {
	username = normalizeUsername(username)
	if username == "" {
		return nil
	}

	exists, err := srv.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return errors.Wrap(err, "failed to check username")
	}
	if exists {
		return errors.Wrap(domainerrors.ErrUserAlreadyExists, "username already registered")
	}

	return nil
}

// Register creates the identity, its profile and its API token in one transaction.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.TokenOutput, error) {
	username := normalizeUsername(input.Username)
	if !input.Gender.IsValid() {
		return nil, domainerrors.NewValidationError(map[string]string{"gender": "must be Male or Female"})
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	imageKey, err := uploadImage(ctx, srv.storage, input.Image)
	if err != nil {
		return nil, err
	}

	var token string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		tokenRepo := repoFactory.TokenRepo()

		exists, err := userRepo.ExistsByUsername(ctx, username)
		if err != nil {
			return errors.Wrap(err, "failed to check username")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "username already registered")
		}

		newUser := &entity.User{
			Username:     username,
			Email:        strings.ToLower(strings.TrimSpace(input.Email)),
			PasswordHash: hashedPassword,
			Profile: &entity.Profile{
				Name:        input.Name,
				PhoneNumber: input.PhoneNumber,
				Gender:      input.Gender,
				Birthday:    input.Birthday,
				Image:       imageKey,
			},
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrUsernameTaken) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "username registered concurrently")
			}

			return errors.Wrap(err, "failed to create user during registration")
		}

		issued, err := srv.issueToken(ctx, tokenRepo, newUser.ID)
		if err != nil {
			return err
		}
		token = issued

		return nil
	})

	if err != nil {
		if imageKey != "" {
			srv.discardImage(ctx, imageKey)
		}
		srv.log(ctx).Warn("Registration failed", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("username", username))

	return &usecase.TokenOutput{Token: token}, nil
}

// Login returns the token issued at registration. A token is only minted when none is stored.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	username := normalizeUsername(input.Username)

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown user", slog.String("username", username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	stored, err := srv.tokenRepo.FindByUserID(ctx, user.ID)
	if err == nil {
		return &usecase.TokenOutput{Token: stored.Key}, nil
	}
	if !errors.Is(err, repository.ErrTokenNotFound) {
		return nil, errors.Wrap(err, "failed to find token")
	}

	token, err := srv.issueToken(ctx, srv.tokenRepo, user.ID)
	if err != nil {
		return nil, err
	}

	return &usecase.TokenOutput{Token: token}, nil
}

// Authenticate resolves a client token to its user. The token must be correctly signed and
// still be the one stored for that user.
func (srv *userService) Authenticate(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := srv.tokenService.Verify(token)
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	stored, err := srv.tokenRepo.FindByKey(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return uuid.Nil, errors.Wrap(domainerrors.ErrInvalidToken, "token revoked")
		}

		return uuid.Nil, errors.Wrap(err, "failed to find token")
	}

	if stored.UserID != userID {
		return uuid.Nil, errors.Wrap(domainerrors.ErrInvalidToken, "token subject mismatch")
	}

	return userID, nil
}

func (srv *userService) issueToken(ctx context.Context, tokenRepo repository.TokenRepository, userID uuid.UUID) (string, error) {
	key, err := srv.tokenService.Issue(userID)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue token")
	}

	if err := tokenRepo.Create(ctx, &entity.AuthToken{UserID: userID, Key: key}); err != nil {
		return "", errors.Wrap(err, "failed to store token")
	}

	return key, nil
}

func (srv *userService) discardImage(ctx context.Context, key string) {
	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete orphaned image", slog.String("key", key), slog.Any("error", err))
	}
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// uploadImage stores an optional upload and returns its key, or an empty key when there is nothing to store.
func uploadImage(ctx context.Context, storage service.FileStorage, image *usecase.ImageUpload) (string, error) {
	if image == nil || image.Content == nil {
		return "", nil
	}

	key, err := storage.Upload(ctx, avatarPrefix, image.Filename, image.ContentType, image.Content)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload image")
	}

	return key, nil
}
