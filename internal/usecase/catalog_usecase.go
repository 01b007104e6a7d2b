package usecase

import "context"

// ProductSearchInput selects exactly one search mode. The first non-empty field wins,
// in declaration order.
type ProductSearchInput struct {
	CategoryID *int64
	Search     string
	ProductID  *int64
}

// CatalogUsecase defines read-only catalog browsing.
type CatalogUsecase interface {
	// GetHomeScreen returns all categories and the products running out within the configured window.
	GetHomeScreen(ctx context.Context) (*HomeScreenView, error)

	// SearchProducts applies a single filter mode chosen by precedence.
	SearchProducts(ctx context.Context, input *ProductSearchInput) ([]*ProductView, error)
}
