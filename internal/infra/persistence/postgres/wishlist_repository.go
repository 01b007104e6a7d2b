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

// wishlistRepository implements the repository.WishlistRepository interface.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

// Create persists a new wishlist entry.
func (repo *wishlistRepository) Create(ctx context.Context, entry *entity.WishlistEntry) error {
	entryM := &model.WishlistEntryModel{
		UserID:    entry.UserID,
		ProductID: entry.ProductID,
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateWishlistEntry
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create wishlist entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// DeleteByUserAndProduct removes the user's entry for a product.
func (repo *wishlistRepository) DeleteByUserAndProduct(ctx context.Context, userID uuid.UUID, productID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.WishlistEntryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete wishlist entry")
	}

	return nil
}

// ListByUser returns the user's entries with product and shop, newest first.
func (repo *wishlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistEntry, error) {
	var entryModels []*model.WishlistEntryModel

	if err := repo.db.WithContext(ctx).
		Preload("Product.Shop").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist entries")
	}

	entries := make([]*entity.WishlistEntry, 0, len(entryModels))
	for _, e := range entryModels {
		entries = append(entries, &entity.WishlistEntry{
			ID:        e.ID,
			UserID:    e.UserID,
			ProductID: e.ProductID,
			Product:   toProductDomain(e.Product),
			CreatedAt: e.CreatedAt,
		})
	}

	return entries, nil
}
