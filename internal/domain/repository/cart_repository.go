package repository

import (
	"context"
	"time"

	"surplus/internal/domain/entity"
	"surplus/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when the requested cart does not exist.
	ErrCartNotFound = errors.New("cart not found")
	// ErrOpenCartExists is returned when creating an open cart for a user who already has one.
	ErrOpenCartExists = errors.New("open cart already exists")
	// ErrCartItemNotFound is returned when the product is not part of the cart.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines cart and cart item persistence.
// Reads of open carts always hit the primary so that a cart created by a concurrent
// request is visible immediately.
type CartRepository interface {
	// FindOpenByUser returns the user's open cart without its items.
	FindOpenByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// LockOpenByUser returns the user's open cart and holds a row lock until the transaction ends.
	LockOpenByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// CreateOpen persists a new open cart. Returns ErrOpenCartExists when the user already has one.
	CreateOpen(ctx context.Context, cart *entity.Cart) error

	// Delete removes a cart together with all of its items.
	Delete(ctx context.Context, cartID uuid.UUID) error

	// MarkPlaced moves an open cart to placed and stamps the order time.
	// Returns ErrCartNotFound when the cart is not open anymore.
	MarkPlaced(ctx context.Context, cartID uuid.UUID, orderedAt time.Time) error

	// ListPlacedByUser returns the user's placed carts with items, newest first.
	ListPlacedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Cart, error)

	// FindPlacedByDisplayID returns a placed cart of the user by its display id.
	FindPlacedByDisplayID(ctx context.Context, userID uuid.UUID, displayID string) (*entity.Cart, error)

	// FindItem returns the item of a product in a cart.
	FindItem(ctx context.Context, cartID uuid.UUID, productID int64) (*entity.CartItem, error)

	// ListItems returns all items of a cart with product and shop preloaded.
	ListItems(ctx context.Context, cartID uuid.UUID) ([]*entity.CartItem, error)

	// AddOrIncrementItem inserts the product with quantity 1, or atomically adds 1
	// to the existing item of the same product.
	AddOrIncrementItem(ctx context.Context, cartID uuid.UUID, productID int64) (*entity.CartItem, error)

	// IncrementItem atomically adds 1 to the item quantity.
	IncrementItem(ctx context.Context, itemID uuid.UUID) error

	// DecrementItem atomically removes 1 from the item quantity and deletes the item
	// instead when its quantity is 1. Reports whether the item was deleted.
	DecrementItem(ctx context.Context, itemID uuid.UUID) (bool, error)

	// DeleteItem removes the item of a product from a cart. Deleting a missing item is not an error.
	DeleteItem(ctx context.Context, cartID uuid.UUID, productID int64) error
}
