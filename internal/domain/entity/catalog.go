package entity

import "time"

// Category groups products for browsing. Categories are read-only reference data.
type Category struct {
	ID    int64
	Name  string
	Image string // Storage key of the category image.
}

// Shop is the seller of a product.
type Shop struct {
	ID      int64
	Name    string
	Address string
}

// Product is a surplus item offered until it expires.
type Product struct {
	ID          int64
	Name        string
	Price       float64
	Description string
	ExpireTime  time.Time
	Image       string // Storage key of the product image.
	CategoryID  int64
	Shop        Shop
}

// IsExpired reports whether the product has expired at the given instant.
func (p *Product) IsExpired(now time.Time) bool {
	return p.ExpireTime.Before(now)
}
