package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartStatus is the lifecycle state of a cart.
type CartStatus string

const (
	// CartStatusOpen marks the single cart a user is still modifying.
	CartStatusOpen CartStatus = "open"
	// CartStatusPlaced marks a checked-out cart. Placed carts never change again.
	CartStatusPlaced CartStatus = "placed"
)

// IsValid checks if the CartStatus is a valid value.
func (s CartStatus) IsValid() bool {
	switch s {
	case CartStatusOpen, CartStatusPlaced:
		return true
	default:
		return false
	}
}

// Cart is a user's basket. A user owns at most one open cart at a time.
type Cart struct {
	ID        uuid.UUID
	DisplayID string // Short code shown to the client and the shop; not the primary key.
	UserID    uuid.UUID
	Status    CartStatus
	OrderedAt *time.Time // Set when the cart is placed.
	Items     []*CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen reports whether the cart can still be modified.
func (c *Cart) IsOpen() bool {
	return c.Status == CartStatusOpen
}

// CartItem is one product line of a cart. Quantity is always at least 1.
type CartItem struct {
	ID        uuid.UUID
	CartID    uuid.UUID
	ProductID int64
	Product   *Product // Preloaded for listings, nil otherwise.
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// QuantityOperation is the direction of a cart item quantity change.
type QuantityOperation string

const (
	// QuantityIncrement adds one unit.
	QuantityIncrement QuantityOperation = "+"
	// QuantityDecrement removes one unit, deleting the item when it reaches zero.
	QuantityDecrement QuantityOperation = "-"
)

// IsValid checks if the QuantityOperation is a valid value.
func (op QuantityOperation) IsValid() bool {
	return op == QuantityIncrement || op == QuantityDecrement
}
