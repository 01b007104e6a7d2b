package usecase

import (
	"context"

	"surplus/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase manages the single open cart of a user.
type CartUsecase interface {
	// GetCart lists the open cart's items, creating an empty cart when none exists.
	GetCart(ctx context.Context, userID uuid.UUID) ([]*CartItemView, error)

	// AddItem adds one unit of a product to the open cart.
	AddItem(ctx context.Context, userID uuid.UUID, productID int64) error

	// ChangeQuantity increments or decrements the quantity of a product already in the cart.
	ChangeQuantity(ctx context.Context, userID uuid.UUID, productID int64, op entity.QuantityOperation) error

	// RemoveItem drops a product from the cart regardless of its quantity.
	RemoveItem(ctx context.Context, userID uuid.UUID, productID int64) error

	// ClearCart deletes the open cart with all of its items.
	ClearCart(ctx context.Context, userID uuid.UUID) error

	// Checkout places the open cart.
	Checkout(ctx context.Context, userID uuid.UUID) error
}

// OrderUsecase exposes the placed carts of a user.
type OrderUsecase interface {
	// ListOrders returns the user's placed carts, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*OrderView, error)

	// GetPickupQR returns a PNG QR code for one of the user's placed carts.
	GetPickupQR(ctx context.Context, userID uuid.UUID, displayID string) ([]byte, error)
}
