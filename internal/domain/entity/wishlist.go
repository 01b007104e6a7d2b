package entity

import (
	"time"

	"github.com/google/uuid"
)

// WishlistEntry marks a product as a favourite of a user.
type WishlistEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID int64
	Product   *Product // Preloaded for listings, nil otherwise.
	CreatedAt time.Time
}
