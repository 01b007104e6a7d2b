package handler_test

import (
	"net/http"
	"testing"
	"time"

	domainerrors "surplus/internal/domain/errors"
	"surplus/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_ListOrders(t *testing.T) {
	api := newTestAPI(t)
	placedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	api.orderUC.EXPECT().ListOrders(mock.Anything, testUserID).Return([]*usecase.OrderView{
		{CartID: "AB12CD34", Status: "placed", OrderedAt: &placedAt, Total: 3.5, Items: []*usecase.CartItemView{}},
	}, nil).Once()

	rec := api.authed(http.MethodGet, "/orders/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cart_id":"AB12CD34"`)
	assert.Contains(t, rec.Body.String(), `"ordered_at":"2024-03-01T12:00:00Z"`)
}

func TestOrderHandler_PickupQR(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		api := newTestAPI(t)
		png := []byte{0x89, 'P', 'N', 'G'}
		api.orderUC.EXPECT().GetPickupQR(mock.Anything, testUserID, "AB12CD34").Return(png, nil).Once()

		rec := api.authed(http.MethodGet, "/orders/AB12CD34/qr", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("not an order of the caller", func(t *testing.T) {
		api := newTestAPI(t)
		api.orderUC.EXPECT().GetPickupQR(mock.Anything, testUserID, "ZZZZZZZZ").
			Return(nil, errors.Wrap(domainerrors.ErrOrderNotFound, "qr")).Once()

		rec := api.authed(http.MethodGet, "/orders/ZZZZZZZZ/qr/", nil)

		assertErrorBody(t, rec, http.StatusNotFound, "404")
	})
}
