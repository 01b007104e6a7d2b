package repository

import (
	"context"

	"surplus/internal/domain/entity"
	"surplus/internal/errors"

	"github.com/google/uuid"
)

// ErrDuplicateWishlistEntry is returned when the product is already on the user's wishlist.
var ErrDuplicateWishlistEntry = errors.New("wishlist entry already exists")

// WishlistRepository defines wishlist persistence.
type WishlistRepository interface {
	// Create persists a new entry. Returns ErrDuplicateWishlistEntry on a (user, product) collision.
	Create(ctx context.Context, entry *entity.WishlistEntry) error

	// DeleteByUserAndProduct removes the user's entry for a product. Deleting a missing entry is not an error.
	DeleteByUserAndProduct(ctx context.Context, userID uuid.UUID, productID int64) error

	// ListByUser returns the user's entries with product and shop preloaded, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistEntry, error)
}
