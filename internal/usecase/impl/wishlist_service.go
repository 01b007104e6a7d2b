package impl

import (
	"context"
	"log/slog"

	deliverycontext "surplus/internal/delivery/context"
	"surplus/internal/domain/entity"
	domainerrors "surplus/internal/domain/errors"
	"surplus/internal/domain/repository"
	"surplus/internal/domain/service"
	"surplus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	catalogRepo  repository.CatalogRepository
	mapper       *viewMapper
	logger       *slog.Logger
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(
	wishlistRepo repository.WishlistRepository,
	catalogRepo repository.CatalogRepository,
	humanizer service.Humanizer,
	storage service.FileStorage,
	logger *slog.Logger,
) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		catalogRepo:  catalogRepo,
		mapper:       newViewMapper(humanizer, storage),
		logger:       logger,
	}
}

// AddProduct puts the product on the wishlist. A duplicate entry is reported as success;
// any other store failure is returned.
func (srv *wishlistService) AddProduct(ctx context.Context, userID uuid.UUID, productID int64) error {
	if _, err := srv.catalogRepo.FindProductByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return errors.Wrap(err, "failed to find product")
	}

	err := srv.wishlistRepo.Create(ctx, &entity.WishlistEntry{UserID: userID, ProductID: productID})
	if errors.Is(err, repository.ErrDuplicateWishlistEntry) {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Product already on wishlist",
			slog.Any("userID", userID), slog.Int64("productID", productID))

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to add wishlist entry")
	}

	return nil
}

// RemoveProduct deletes the user's own entry for the product.
func (srv *wishlistService) RemoveProduct(ctx context.Context, userID uuid.UUID, productID int64) error {
	if err := srv.wishlistRepo.DeleteByUserAndProduct(ctx, userID, productID); err != nil {
		return errors.Wrap(err, "failed to remove wishlist entry")
	}

	return nil
}

// ListProducts returns the user's wishlist with product details.
func (srv *wishlistService) ListProducts(ctx context.Context, userID uuid.UUID) ([]*usecase.WishlistItemView, error) {
	entries, err := srv.wishlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	return srv.mapper.wishlistItems(entries), nil
}
