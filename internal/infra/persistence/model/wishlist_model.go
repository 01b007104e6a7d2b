package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistEntryModel mirrors the 'wishlist_entries' table.
type WishlistEntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_product"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_wishlist_user_product"`
	CreatedAt time.Time

	User    *UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistEntryModel) TableName() string {
	return "wishlist_entries"
}
