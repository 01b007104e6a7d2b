package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel mirrors the 'carts' table.
// The partial unique index guarantees at most one open cart per user.
type CartModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DisplayID string     `gorm:"type:varchar(16);not null;index"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_carts_user_open,unique,where:status = 'open'"`
	Status    string     `gorm:"type:varchar(16);not null;default:'open';check:chk_carts_status,status IN ('open','placed')"`
	OrderedAt *time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User  *UserModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Items []CartItemModel `gorm:"foreignKey:CartID"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table. A product appears at most once per cart.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CartID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_cart_items_cart_product"`
	Quantity  int       `gorm:"not null;default:1;check:chk_cart_items_quantity,quantity > 0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Cart    *CartModel    `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
