package impl

import (
	"context"
	"log/slog"

	deliverycontext "surplus/internal/delivery/context"
	domainerrors "surplus/internal/domain/errors"
	"surplus/internal/domain/repository"
	"surplus/internal/domain/service"
	"surplus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	cartRepo repository.CartRepository
	qrCodes  service.QRCodeService
	mapper   *viewMapper
	logger   *slog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	cartRepo repository.CartRepository,
	qrCodes service.QRCodeService,
	humanizer service.Humanizer,
	storage service.FileStorage,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		cartRepo: cartRepo,
		qrCodes:  qrCodes,
		mapper:   newViewMapper(humanizer, storage),
		logger:   logger,
	}
}

// ListOrders returns the user's placed carts, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*usecase.OrderView, error) {
	carts, err := srv.cartRepo.ListPlacedByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	views := make([]*usecase.OrderView, 0, len(carts))
	for _, cart := range carts {
		views = append(views, srv.mapper.order(cart))
	}

	return views, nil
}

// GetPickupQR renders the pickup code of a placed cart owned by the user.
func (srv *orderService) GetPickupQR(ctx context.Context, userID uuid.UUID, displayID string) ([]byte, error) {
	cart, err := srv.cartRepo.FindPlacedByDisplayID(ctx, userID, displayID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "placed cart not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	png, err := srv.qrCodes.GeneratePickupQR(cart.DisplayID)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to generate pickup QR code",
			slog.String("displayID", cart.DisplayID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate pickup QR code")
	}

	return png, nil
}
