package usecase

import (
	"context"

	"github.com/google/uuid"
)

// WishlistUsecase manages the favourite products of a user.
type WishlistUsecase interface {
	// AddProduct puts a product on the wishlist. Adding a product twice is a no-op.
	AddProduct(ctx context.Context, userID uuid.UUID, productID int64) error

	// RemoveProduct takes a product off the user's wishlist.
	RemoveProduct(ctx context.Context, userID uuid.UUID, productID int64) error

	// ListProducts returns the wishlist entries of the user.
	ListProducts(ctx context.Context, userID uuid.UUID) ([]*WishlistItemView, error)
}
