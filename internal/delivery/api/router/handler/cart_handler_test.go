package handler_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"surplus/internal/domain/entity"
	domainerrors "surplus/internal/domain/errors"
	"surplus/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartHandler_GetCart(t *testing.T) {
	api := newTestAPI(t)
	api.cartUC.EXPECT().GetCart(mock.Anything, testUserID).Return([]*usecase.CartItemView{
		{
			WishlistItemView: usecase.WishlistItemView{ProductID: "1", ProductName: "Baguette"},
			Quantity:         2,
			OrderData:        time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		},
	}, nil).Once()

	rec := api.authed(http.MethodGet, "/cart", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"product_name":"Baguette"`)
	assert.Contains(t, rec.Body.String(), `"quantity":2`)
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api := newTestAPI(t)
		api.cartUC.EXPECT().AddItem(mock.Anything, testUserID, int64(1)).Return(nil).Once()

		rec := api.authed(http.MethodPost, "/cart/", url.Values{"product_id": {"1"}})

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("unknown product", func(t *testing.T) {
		api := newTestAPI(t)
		api.cartUC.EXPECT().AddItem(mock.Anything, testUserID, int64(2)).Return(domainerrors.ErrProductNotFound).Once()

		rec := api.authed(http.MethodPost, "/cart/", url.Values{"product_id": {"2"}})

		assertErrorBody(t, rec, http.StatusNotFound, "404")
	})

	t.Run("non numeric product id", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.authed(http.MethodPost, "/cart/", url.Values{"product_id": {"abc"}})

		assertErrorBody(t, rec, http.StatusBadRequest, "400")
	})
}

func TestCartHandler_ClearCart(t *testing.T) {
	api := newTestAPI(t)
	api.cartUC.EXPECT().ClearCart(mock.Anything, testUserID).Return(nil).Once()

	rec := api.authed(http.MethodDelete, "/cart/", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCartHandler_ModifyItem(t *testing.T) {
	tests := []struct {
		name       string
		form       url.Values
		setupMocks func(api *testAPI)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "increment",
			form:       url.Values{"product_id": {"1"}, "operation": {"+"}},
			wantStatus: http.StatusNoContent,
			setupMocks: func(api *testAPI) {
				api.cartUC.EXPECT().ChangeQuantity(mock.Anything, testUserID, int64(1), entity.QuantityIncrement).Return(nil).Once()
			},
		},
		{
			name:       "decrement",
			form:       url.Values{"product_id": {"1"}, "operation": {"-"}},
			wantStatus: http.StatusNoContent,
			setupMocks: func(api *testAPI) {
				api.cartUC.EXPECT().ChangeQuantity(mock.Anything, testUserID, int64(1), entity.QuantityDecrement).Return(nil).Once()
			},
		},
		{
			name:       "not in cart",
			form:       url.Values{"product_id": {"7"}, "operation": {"+"}},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "703",
			setupMocks: func(api *testAPI) {
				api.cartUC.EXPECT().ChangeQuantity(mock.Anything, testUserID, int64(7), entity.QuantityIncrement).
					Return(errors.Wrap(domainerrors.ErrProductNotInCart, "change quantity")).Once()
			},
		},
		{
			name:       "invalid operation",
			form:       url.Values{"product_id": {"1"}, "operation": {"*"}},
			wantStatus: http.StatusBadRequest,
			wantCode:   "400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			if tt.setupMocks != nil {
				tt.setupMocks(api)
			}

			rec := api.authed(http.MethodPut, "/modify_cart/", tt.form)

			if tt.wantCode != "" {
				assertErrorBody(t, rec, tt.wantStatus, tt.wantCode)

				return
			}
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCartHandler_RemoveItem(t *testing.T) {
	api := newTestAPI(t)
	api.cartUC.EXPECT().RemoveItem(mock.Anything, testUserID, int64(1)).Return(nil).Once()

	rec := api.authed(http.MethodDelete, "/modify_cart/", url.Values{"product_id": {"1"}})

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCartHandler_MakeOrder(t *testing.T) {
	t.Run("placed", func(t *testing.T) {
		api := newTestAPI(t)
		api.cartUC.EXPECT().Checkout(mock.Anything, testUserID).Return(nil).Once()

		rec := api.authed(http.MethodPost, "/make_order/", nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("empty cart", func(t *testing.T) {
		api := newTestAPI(t)
		api.cartUC.EXPECT().Checkout(mock.Anything, testUserID).
			Return(errors.Wrap(domainerrors.ErrEmptyCart, "checkout")).Once()

		rec := api.authed(http.MethodPost, "/make_order/", nil)

		body := assertErrorBody(t, rec, http.StatusUnauthorized, "704")
		assert.Equal(t, "empty cart", body["error"])
	})
}
