package impl

import (
	"context"
	"testing"
	"time"

	"surplus/internal/domain/entity"
	domainerrors "surplus/internal/domain/errors"
	"surplus/internal/domain/repository"
	mockRepo "surplus/internal/mocks/repository"
	"surplus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestWishlistService(t *testing.T) (usecase.WishlistUsecase, *mockRepo.MockWishlistRepository, *mockRepo.MockCatalogRepository) {
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	humanizer, storage := newViewDeps(t)

	return NewWishlistService(wishlistRepo, catalogRepo, humanizer, storage, newDiscardLogger()), wishlistRepo, catalogRepo
}

func TestWishlistService_AddProduct(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		createErr error
		wantErr   bool
	}{
		{name: "new entry"},
		{name: "duplicate is swallowed", createErr: repository.ErrDuplicateWishlistEntry},
		{name: "other store errors surface", createErr: errors.New("connection refused"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, wishlistRepo, catalogRepo := createTestWishlistService(t)
			catalogRepo.EXPECT().FindProductByID(mock.Anything, int64(7)).Return(&entity.Product{ID: 7}, nil)
			wishlistRepo.EXPECT().
				Create(mock.Anything, &entity.WishlistEntry{UserID: userID, ProductID: 7}).
				Return(tt.createErr)

			err := srv.AddProduct(context.Background(), userID, 7)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWishlistService_AddProduct_ProductNotFound(t *testing.T) {
	srv, _, catalogRepo := createTestWishlistService(t)
	catalogRepo.EXPECT().FindProductByID(mock.Anything, int64(7)).Return(nil, repository.ErrProductNotFound)

	err := srv.AddProduct(context.Background(), uuid.New(), 7)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestWishlistService_RemoveProduct_ScopedToUser(t *testing.T) {
	srv, wishlistRepo, _ := createTestWishlistService(t)
	userID := uuid.New()
	wishlistRepo.EXPECT().DeleteByUserAndProduct(mock.Anything, userID, int64(7)).Return(nil)

	assert.NoError(t, srv.RemoveProduct(context.Background(), userID, 7))
}

func TestWishlistService_ListProducts(t *testing.T) {
	srv, wishlistRepo, _ := createTestWishlistService(t)
	userID := uuid.New()
	expire := time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)

	wishlistRepo.EXPECT().ListByUser(mock.Anything, userID).Return([]*entity.WishlistEntry{{
		UserID:    userID,
		ProductID: 7,
		Product: &entity.Product{
			ID: 7, Name: "Croissant", Price: 1.2, ExpireTime: expire, Image: "p/7.jpg",
			Shop: entity.Shop{Name: "Bakery", Address: "2 High St"},
		},
	}}, nil)

	items, err := srv.ListProducts(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, &usecase.WishlistItemView{
		ProductID:                  "7",
		ProductName:                "Croissant",
		ProductPrice:               1.2,
		ProductExpireTime:          expire,
		ProductImage:               testImageBaseURL + "p/7.jpg",
		ProductShopName:            "Bakery",
		ProductShopAddress:         "2 High St",
		ProductExpireTimeHumanized: "in 3 hours",
	}, items[0])
}
