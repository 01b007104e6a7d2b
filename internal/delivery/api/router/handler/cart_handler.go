package handler

import (
	"log/slog"
	"net/http"

	"surplus/internal/delivery/api/response"
	"surplus/internal/domain/entity"
	"surplus/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the caller's open cart and checkout.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// ModifyCartRequest changes the quantity of a product by one unit.
type ModifyCartRequest struct {
	ProductID int64  `json:"product_id" form:"product_id" query:"product_id" validate:"required,gt=0"`
	Operation string `json:"operation" form:"operation" query:"operation" validate:"required,quantity_op"`
}

// GetCart lists the open cart's items.
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// AddItem adds one unit of a product.
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.cartUC.AddItem(c.Request().Context(), userID, req.ProductID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ClearCart discards the open cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.cartUC.ClearCart(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ModifyItem increments or decrements a product already in the cart.
func (h *CartHandler) ModifyItem(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ModifyCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	op := entity.QuantityOperation(req.Operation)
	if err := h.cartUC.ChangeQuantity(c.Request().Context(), userID, req.ProductID, op); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// RemoveItem drops a product from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.cartUC.RemoveItem(c.Request().Context(), userID, req.ProductID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// MakeOrder places the open cart.
func (h *CartHandler) MakeOrder(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.cartUC.Checkout(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
