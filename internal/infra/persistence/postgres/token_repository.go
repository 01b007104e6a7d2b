package postgres

import (
	"context"

	"surplus/internal/domain/entity"
	domainerrors "surplus/internal/domain/errors"
	"surplus/internal/domain/repository"
	"surplus/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tokenRepository implements the repository.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

// FindByUserID returns the token issued to the user.
func (repo *tokenRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.AuthToken, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

// FindByKey returns the token record matching the raw key.
func (repo *tokenRepository) FindByKey(ctx context.Context, key string) (*entity.AuthToken, error) {
	return repo.findOne(ctx, "token_key = ?", key)
}

func (repo *tokenRepository) findOne(ctx context.Context, query string, arg any) (*entity.AuthToken, error) {
	var tokenM model.AuthTokenModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find auth token")
	}

	return &entity.AuthToken{
		UserID:    tokenM.UserID,
		Key:       tokenM.Key,
		CreatedAt: tokenM.CreatedAt,
	}, nil
}

// Create persists a newly issued token.
func (repo *tokenRepository) Create(ctx context.Context, token *entity.AuthToken) error {
	tokenM := &model.AuthTokenModel{
		UserID: token.UserID,
		Key:    token.Key,
	}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create auth token")
	}

	token.CreatedAt = tokenM.CreatedAt

	return nil
}
