package model

import "time"

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"type:varchar(100);not null"`
	Image string `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ShopModel mirrors the 'shops' table.
type ShopModel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"type:varchar(100);not null"`
	Address string `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Price       float64   `gorm:"type:numeric(10,2);not null"`
	Description string    `gorm:"type:text"`
	ExpireTime  time.Time `gorm:"not null;index:idx_products_expire_time;index:idx_products_category_expire,priority:2"`
	Image       string    `gorm:"type:varchar(255)"`
	CategoryID  int64     `gorm:"not null;index:idx_products_category_expire,priority:1"`
	ShopID      int64     `gorm:"not null;index"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
	Shop     *ShopModel     `gorm:"foreignKey:ShopID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
