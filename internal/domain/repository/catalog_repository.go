package repository

import (
	"context"
	"time"

	"surplus/internal/domain/entity"
	"surplus/internal/errors"
)

// ErrProductNotFound is returned when a product id does not exist.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository provides read-only access to categories and products.
// Every product returned has its Shop populated.
type CatalogRepository interface {
	// ListCategories returns every category ordered by id.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// FindProductByID returns a product regardless of its expiry.
	FindProductByID(ctx context.Context, id int64) (*entity.Product, error)

	// ListProductsExpiringBetween returns products whose expiry lies in [from, to).
	ListProductsExpiringBetween(ctx context.Context, from, to time.Time) ([]*entity.Product, error)

	// ListProductsByCategory returns products of a category that have not expired at notExpiredAt.
	ListProductsByCategory(ctx context.Context, categoryID int64, notExpiredAt time.Time) ([]*entity.Product, error)

	// SearchProducts matches term case-insensitively against product and shop names,
	// excluding products expired at notExpiredAt.
	SearchProducts(ctx context.Context, term string, notExpiredAt time.Time) ([]*entity.Product, error)
}
