package impl

import (
	"context"
	"log/slog"
	"time"

	"surplus/config"
	deliverycontext "surplus/internal/delivery/context"
	"surplus/internal/domain/entity"
	"surplus/internal/domain/repository"
	"surplus/internal/domain/service"
	"surplus/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultRunningOutWindow = 24 * time.Hour

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo      repository.CatalogRepository
	cache            service.CatalogCache
	mapper           *viewMapper
	runningOutWindow time.Duration
	now              func() time.Time
	logger           *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Cache       service.CatalogCache
	Humanizer   service.Humanizer
	Storage     service.FileStorage
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	window := defaultRunningOutWindow
	if params.Config != nil && params.Config.Catalog != nil && params.Config.Catalog.RunningOutWindow > 0 {
		window = params.Config.Catalog.RunningOutWindow
	}

	return &catalogService{
		catalogRepo:      params.CatalogRepo,
		cache:            params.Cache,
		mapper:           newViewMapper(params.Humanizer, params.Storage),
		runningOutWindow: window,
		now:              time.Now,
		logger:           params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetHomeScreen returns every category and the products expiring within the running-out window.
func (srv *catalogService) GetHomeScreen(ctx context.Context) (*usecase.HomeScreenView, error) {
	categories, err := srv.listCategories(ctx)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	products, err := srv.catalogRepo.ListProductsExpiringBetween(ctx, now, now.Add(srv.runningOutWindow))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list running out products")
	}

	return &usecase.HomeScreenView{
		Categories: srv.mapper.categories(categories),
		RunningOut: srv.mapper.products(products),
	}, nil
}

// SearchProducts applies exactly one filter: category, then free text, then product id.
// Any non-empty search term, whitespace included, is matched as given.
func (srv *catalogService) SearchProducts(ctx context.Context, input *usecase.ProductSearchInput) ([]*usecase.ProductView, error) {
	now := srv.now()

	var (
		products []*entity.Product
		err      error
	)

	switch {
	case input.CategoryID != nil:
		products, err = srv.catalogRepo.ListProductsByCategory(ctx, *input.CategoryID, now)
	case input.Search != "":
		products, err = srv.catalogRepo.SearchProducts(ctx, input.Search, now)
	case input.ProductID != nil:
		var product *entity.Product
		product, err = srv.catalogRepo.FindProductByID(ctx, *input.ProductID)
		if errors.Is(err, repository.ErrProductNotFound) {
			return []*usecase.ProductView{}, nil
		}
		if err == nil {
			products = []*entity.Product{product}
		}
	default:
		return []*usecase.ProductView{}, nil
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return srv.mapper.products(products), nil
}

// listCategories serves categories from the cache and falls back to the database on a miss.
func (srv *catalogService) listCategories(ctx context.Context) ([]*entity.Category, error) {
	if categories, ok := srv.cache.GetCategories(ctx); ok {
		return categories, nil
	}

	categories, err := srv.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	if err := srv.cache.SetCategories(ctx, categories); err != nil {
		srv.log(ctx).Warn("Failed to cache categories", slog.Any("error", err))
	}

	return categories, nil
}
