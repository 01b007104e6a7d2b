package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "surplus/internal/delivery/context"
	"surplus/internal/domain/entity"
	domainerrors "surplus/internal/domain/errors"
	"surplus/internal/domain/repository"
	"surplus/internal/domain/service"
	"surplus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxOpenCartAttempts bounds get-or-create retries when concurrent requests race to create the open cart.
const maxOpenCartAttempts = 3

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	displayIDs  service.DisplayIDGenerator
	publisher   service.EventPublisher
	mapper      *viewMapper
	now         func() time.Time
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	CatalogRepo repository.CatalogRepository
	DisplayIDs  service.DisplayIDGenerator
	Publisher   service.EventPublisher
	Humanizer   service.Humanizer
	Storage     service.FileStorage
	Logger      *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:   params.TxManager,
		cartRepo:    params.CartRepo,
		catalogRepo: params.CatalogRepo,
		displayIDs:  params.DisplayIDs,
		publisher:   params.Publisher,
		mapper:      newViewMapper(params.Humanizer, params.Storage),
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart lists the items of the open cart, creating the cart on first access.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) ([]*usecase.CartItemView, error) {
	cart, err := srv.getOrCreateOpenCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := srv.cartRepo.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	return srv.mapper.cartItems(items), nil
}

// AddItem adds one unit of the product, folding repeated adds into a single item.
// The write runs under the open cart's row lock, so a concurrent checkout or clear either
// completes first, sending the add to a fresh open cart, or waits for it.
func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, productID int64) error {
	if err := srv.ensureProduct(ctx, productID); err != nil {
		return err
	}

	for attempt := 1; attempt <= maxOpenCartAttempts; attempt++ {
		if _, err := srv.getOrCreateOpenCart(ctx, userID); err != nil {
			return err
		}

		var item *entity.CartItem
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			cartRepo := repoFactory.CartRepo()

			cart, err := lockOpenCart(ctx, cartRepo, userID)
			if err != nil {
				return err
			}

			item, err = cartRepo.AddOrIncrementItem(ctx, cart.ID, productID)

			return err
		})
		if err == nil {
			srv.log(ctx).Debug("Cart item added",
				slog.Any("cartID", item.CartID),
				slog.Int64("productID", productID),
				slog.Int("quantity", item.Quantity),
			)

			return nil
		}
		if !errors.Is(err, repository.ErrCartNotFound) {
			return errors.Wrap(err, "failed to add cart item")
		}

		srv.log(ctx).Debug("Open cart placed or cleared concurrently, retrying", slog.Any("userID", userID), slog.Int("attempt", attempt))
	}

	return errors.Wrap(domainerrors.ErrStoreConflict, "open cart kept changing while adding an item")
}

// ChangeQuantity increments or decrements an item already in the open cart.
// Decrementing an item with quantity 1 removes it.
func (srv *cartService) ChangeQuantity(ctx context.Context, userID uuid.UUID, productID int64, op entity.QuantityOperation) error {
	if !op.IsValid() {
		return domainerrors.NewValidationError(map[string]string{"operation": "must be + or -"})
	}

	if err := srv.ensureProduct(ctx, productID); err != nil {
		return err
	}

	var removed bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := lockOpenCart(ctx, cartRepo, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotInCart, "no open cart")
			}

			return err
		}

		item, err := cartRepo.FindItem(ctx, cart.ID, productID)
		if err != nil {
			return srv.translateItemError(err, "failed to find cart item")
		}

		if op == entity.QuantityIncrement {
			return srv.translateItemError(cartRepo.IncrementItem(ctx, item.ID), "failed to increment cart item")
		}

		removed, err = cartRepo.DecrementItem(ctx, item.ID)

		return srv.translateItemError(err, "failed to decrement cart item")
	})
	if err != nil {
		return errors.Wrap(err, "failed to change cart item quantity")
	}

	if removed {
		srv.log(ctx).Debug("Cart item removed on decrement", slog.Any("userID", userID), slog.Int64("productID", productID))
	}

	return nil
}

// RemoveItem deletes the product from the open cart regardless of quantity. A missing item is not an error.
func (srv *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, productID int64) error {
	if err := srv.ensureProduct(ctx, productID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := lockOpenCart(ctx, cartRepo, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return nil
			}

			return err
		}

		return errors.Wrap(cartRepo.DeleteItem(ctx, cart.ID, productID), "failed to delete cart item")
	})
	if err != nil {
		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}

// ClearCart deletes the open cart and its items. Placed carts are never touched.
func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := lockOpenCart(ctx, cartRepo, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return nil
			}

			return err
		}

		return errors.Wrap(cartRepo.Delete(ctx, cart.ID), "failed to delete cart")
	})

	if err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// Checkout moves the open cart to placed. The next cart access creates a fresh open cart.
func (srv *cartService) Checkout(ctx context.Context, userID uuid.UUID) error {
	var (
		placed   *entity.Cart
		placedAt = srv.now().UTC()
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := lockOpenCart(ctx, cartRepo, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return errors.Wrap(domainerrors.ErrEmptyCart, "no open cart")
			}

			return err
		}

		items, err := cartRepo.ListItems(ctx, cart.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list cart items")
		}
		if len(items) == 0 {
			return errors.Wrap(domainerrors.ErrEmptyCart, "cart has no items")
		}

		if err := cartRepo.MarkPlaced(ctx, cart.ID, placedAt); err != nil {
			return errors.Wrap(err, "failed to place cart")
		}

		cart.Items = items
		cart.Status = entity.CartStatusPlaced
		cart.OrderedAt = &placedAt
		placed = cart

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to checkout")
	}

	srv.log(ctx).Info("Order placed", slog.Any("cartID", placed.ID), slog.String("displayID", placed.DisplayID))
	srv.publishOrderPlaced(ctx, placed)

	return nil
}

// getOrCreateOpenCart returns the user's open cart, creating it when absent. When a concurrent
// request wins the creation race the winner's cart is re-read and returned.
func (srv *cartService) getOrCreateOpenCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	for attempt := 1; attempt <= maxOpenCartAttempts; attempt++ {
		cart, err := srv.cartRepo.FindOpenByUser(ctx, userID)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, repository.ErrCartNotFound) {
			return nil, errors.Wrap(err, "failed to find open cart")
		}

		displayID, err := srv.displayIDs.Generate()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate cart display id")
		}

		cart = &entity.Cart{
			DisplayID: displayID,
			UserID:    userID,
			Status:    entity.CartStatusOpen,
		}
		err = srv.cartRepo.CreateOpen(ctx, cart)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, repository.ErrOpenCartExists) {
			return nil, errors.Wrap(err, "failed to create open cart")
		}

		srv.log(ctx).Debug("Open cart created concurrently, re-reading", slog.Any("userID", userID), slog.Int("attempt", attempt))
	}

	return nil, errors.Wrap(domainerrors.ErrStoreConflict, "open cart creation kept conflicting")
}

// lockOpenCart holds the user's open cart row until the transaction ends. Every item write,
// checkout and clear goes through it, so they are serialized per user.
func lockOpenCart(ctx context.Context, cartRepo repository.CartRepository, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := cartRepo.LockOpenByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to lock open cart")
	}
	if !cart.IsOpen() {
		return nil, repository.ErrCartNotFound
	}

	return cart, nil
}

func (srv *cartService) ensureProduct(ctx context.Context, productID int64) error {
	if _, err := srv.catalogRepo.FindProductByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return errors.Wrap(err, "failed to find product")
	}

	return nil
}

// translateItemError maps a missing item to NotInCart.
func (srv *cartService) translateItemError(err error, message string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrCartItemNotFound) {
		return errors.Wrap(domainerrors.ErrProductNotInCart, message)
	}

	return errors.Wrap(err, message)
}

func (srv *cartService) publishOrderPlaced(ctx context.Context, cart *entity.Cart) {
	event := &service.OrderPlacedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		CartID:    cart.DisplayID,
		UserID:    cart.UserID.String(),
		PlacedAt:  *cart.OrderedAt,
		Items:     make([]service.OrderEventItem, 0, len(cart.Items)),
	}
	for _, item := range cart.Items {
		line := service.OrderEventItem{ProductID: item.ProductID, Quantity: item.Quantity}
		if item.Product != nil {
			line.ShopID = item.Product.Shop.ID
			line.Price = item.Product.Price
		}
		event.Items = append(event.Items, line)
	}

	if err := srv.publisher.PublishOrderPlaced(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order placed event", slog.Any("cartID", cart.ID), slog.Any("error", err))
	}
}
