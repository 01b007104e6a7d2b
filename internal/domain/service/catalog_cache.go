package service

import (
	"context"

	"surplus/internal/domain/entity"
)

// CatalogCache caches immutable catalog reference data.
// Implementations degrade to a miss on any backend failure.
type CatalogCache interface {
	// GetCategories returns the cached categories and whether they were found.
	GetCategories(ctx context.Context) ([]*entity.Category, bool)

	// SetCategories stores the categories.
	SetCategories(ctx context.Context, categories []*entity.Category) error
}
