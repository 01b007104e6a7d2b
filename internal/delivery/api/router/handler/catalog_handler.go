package handler

import (
	"log/slog"
	"net/http"

	"surplus/internal/delivery/api/response"
	"surplus/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves category and product browsing.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// HomeScreen returns every category and the products about to expire.
func (h *CatalogHandler) HomeScreen(c echo.Context) error {
	view, err := h.catalogUC.GetHomeScreen(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// SearchProducts filters by category_id, search or id, in that order of precedence.
func (h *CatalogHandler) SearchProducts(c echo.Context) error {
	categoryID, err := optionalInt(c, "category_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Only parse id when no higher-precedence filter is present.
	var productID *int64
	if categoryID == nil && c.QueryParam("search") == "" {
		if productID, err = optionalInt(c, "id"); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	products, err := h.catalogUC.SearchProducts(c.Request().Context(), &usecase.ProductSearchInput{
		CategoryID: categoryID,
		Search:     c.QueryParam("search"),
		ProductID:  productID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}
