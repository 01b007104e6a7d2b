package impl

import (
	"context"
	"sync"
	"testing"

	"surplus/internal/domain/entity"
	domainerrors "surplus/internal/domain/errors"
	"surplus/internal/domain/repository"
	"surplus/internal/domain/service"
	mockRepo "surplus/internal/mocks/repository"
	mockSvc "surplus/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service     *cartService
	txManager   *mockRepo.MockTransactionManager
	cartRepo    *mockRepo.MockCartRepository
	catalogRepo *mockRepo.MockCatalogRepository
	displayIDs  *mockSvc.MockDisplayIDGenerator
	publisher   *mockSvc.MockEventPublisher
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	humanizer, storage := newViewDeps(t)
	f := cartServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		cartRepo:    mockRepo.NewMockCartRepository(t),
		catalogRepo: mockRepo.NewMockCatalogRepository(t),
		displayIDs:  mockSvc.NewMockDisplayIDGenerator(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	f.service = NewCartService(CartServiceParams{
		TxManager:   f.txManager,
		CartRepo:    f.cartRepo,
		CatalogRepo: f.catalogRepo,
		DisplayIDs:  f.displayIDs,
		Publisher:   f.publisher,
		Humanizer:   humanizer,
		Storage:     storage,
		Logger:      newDiscardLogger(),
	}).(*cartService)

	return f
}

// createMemoryCartService wires the service to the in-memory cart repository.
func createMemoryCartService(t *testing.T, products ...*entity.Product) (*cartService, *memoryCartRepository, *mockSvc.MockEventPublisher) {
	repo := newMemoryCartRepository(products...)
	humanizer, storage := newViewDeps(t)

	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	catalogRepo.EXPECT().FindProductByID(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id int64) (*entity.Product, error) {
			for _, p := range products {
				if p.ID == id {
					return p, nil
				}
			}

			return nil, repository.ErrProductNotFound
		}).
		Maybe()

	displayIDs := mockSvc.NewMockDisplayIDGenerator(t)
	displayIDs.EXPECT().Generate().RunAndReturn(func() (string, error) {
		return uuid.NewString()[:8], nil
	}).Maybe()

	publisher := mockSvc.NewMockEventPublisher(t)

	srv := NewCartService(CartServiceParams{
		TxManager:   &memoryTransactionManager{cartRepo: repo},
		CartRepo:    repo,
		CatalogRepo: catalogRepo,
		DisplayIDs:  displayIDs,
		Publisher:   publisher,
		Humanizer:   humanizer,
		Storage:     storage,
		Logger:      newDiscardLogger(),
	}).(*cartService)

	return srv, repo, publisher
}

func TestCartService_GetOrCreateOpenCart_ReturnsExisting(t *testing.T) {
	f := createTestCartService(t)
	userID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID, Status: entity.CartStatusOpen}

	f.cartRepo.EXPECT().FindOpenByUser(mock.Anything, userID).Return(cart, nil)

	got, err := f.service.getOrCreateOpenCart(context.Background(), userID)

	require.NoError(t, err)
	assert.Same(t, cart, got)
}

func TestCartService_GetOrCreateOpenCart_FoldsIntoConcurrentWinner(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	winner := &entity.Cart{ID: uuid.New(), DisplayID: "WIN", UserID: userID, Status: entity.CartStatusOpen}

	f.cartRepo.EXPECT().FindOpenByUser(ctx, userID).Return(nil, repository.ErrCartNotFound).Once()
	f.displayIDs.EXPECT().Generate().Return("LOSE", nil).Once()
	f.cartRepo.EXPECT().CreateOpen(ctx, mock.AnythingOfType("*entity.Cart")).Return(repository.ErrOpenCartExists).Once()
	f.cartRepo.EXPECT().FindOpenByUser(ctx, userID).Return(winner, nil).Once()

	got, err := f.service.getOrCreateOpenCart(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "WIN", got.DisplayID)
}

func TestCartService_GetOrCreateOpenCart_GivesUpAfterRetries(t *testing.T) {
	f := createTestCartService(t)
	userID := uuid.New()

	f.cartRepo.EXPECT().FindOpenByUser(mock.Anything, userID).Return(nil, repository.ErrCartNotFound).Times(maxOpenCartAttempts)
	f.displayIDs.EXPECT().Generate().Return("X", nil).Times(maxOpenCartAttempts)
	f.cartRepo.EXPECT().CreateOpen(mock.Anything, mock.Anything).Return(repository.ErrOpenCartExists).Times(maxOpenCartAttempts)

	_, err := f.service.getOrCreateOpenCart(context.Background(), userID)

	assert.True(t, errors.Is(err, domainerrors.ErrStoreConflict))
}

func TestCartService_AddItem_ProductNotFound(t *testing.T) {
	f := createTestCartService(t)

	f.catalogRepo.EXPECT().FindProductByID(mock.Anything, int64(42)).Return(nil, repository.ErrProductNotFound)

	err := f.service.AddItem(context.Background(), uuid.New(), 42)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartService_ChangeQuantity_NotInCart(t *testing.T) {
	userID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID, Status: entity.CartStatusOpen}

	tests := []struct {
		name  string
		setup func(repo *mockRepo.MockCartRepository)
	}{
		{
			name: "no open cart",
			setup: func(repo *mockRepo.MockCartRepository) {
				repo.EXPECT().LockOpenByUser(mock.Anything, userID).Return(nil, repository.ErrCartNotFound)
			},
		},
		{
			name: "locked cart is no longer open",
			setup: func(repo *mockRepo.MockCartRepository) {
				placed := *cart
				placed.Status = entity.CartStatusPlaced
				repo.EXPECT().LockOpenByUser(mock.Anything, userID).Return(&placed, nil)
			},
		},
		{
			name: "item absent",
			setup: func(repo *mockRepo.MockCartRepository) {
				repo.EXPECT().LockOpenByUser(mock.Anything, userID).Return(cart, nil)
				repo.EXPECT().FindItem(mock.Anything, cart.ID, int64(3)).Return(nil, repository.ErrCartItemNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestCartService(t)
			f.catalogRepo.EXPECT().FindProductByID(mock.Anything, int64(3)).Return(&entity.Product{ID: 3}, nil)
			factory := mockRepo.NewMockRepositoryFactory(t)
			txCartRepo := mockRepo.NewMockCartRepository(t)
			factory.EXPECT().CartRepo().Return(txCartRepo)
			expectTransaction(f.txManager, factory)
			tt.setup(txCartRepo)

			err := f.service.ChangeQuantity(context.Background(), userID, 3, entity.QuantityIncrement)

			assert.True(t, errors.Is(err, domainerrors.ErrProductNotInCart))
		})
	}
}

func TestCartService_ChangeQuantity_WritesUnderCartLock(t *testing.T) {
	f := createTestCartService(t)
	userID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID, Status: entity.CartStatusOpen}
	item := &entity.CartItem{ID: uuid.New(), CartID: cart.ID, ProductID: 3, Quantity: 1}

	f.catalogRepo.EXPECT().FindProductByID(mock.Anything, int64(3)).Return(&entity.Product{ID: 3}, nil)
	factory := mockRepo.NewMockRepositoryFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	expectTransaction(f.txManager, factory)

	locked := false
	txCartRepo.EXPECT().LockOpenByUser(mock.Anything, userID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Cart, error) {
			locked = true

			return cart, nil
		})
	txCartRepo.EXPECT().FindItem(mock.Anything, cart.ID, int64(3)).Return(item, nil)
	txCartRepo.EXPECT().DecrementItem(mock.Anything, item.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (bool, error) {
			assert.True(t, locked, "item written before the cart was locked")

			return true, nil
		})

	require.NoError(t, f.service.ChangeQuantity(context.Background(), userID, 3, entity.QuantityDecrement))
}

func TestCartService_ChangeQuantity_InvalidOperation(t *testing.T) {
	f := createTestCartService(t)

	err := f.service.ChangeQuantity(context.Background(), uuid.New(), 3, entity.QuantityOperation("*"))

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCartService_RemoveItem_WithoutOpenCart(t *testing.T) {
	f := createTestCartService(t)
	userID := uuid.New()

	f.catalogRepo.EXPECT().FindProductByID(mock.Anything, int64(3)).Return(&entity.Product{ID: 3}, nil)
	factory := mockRepo.NewMockRepositoryFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	expectTransaction(f.txManager, factory)
	txCartRepo.EXPECT().LockOpenByUser(mock.Anything, userID).Return(nil, repository.ErrCartNotFound)

	assert.NoError(t, f.service.RemoveItem(context.Background(), userID, 3))
}

func TestCartService_ClearCart_DeletesOnlyOpenCart(t *testing.T) {
	f := createTestCartService(t)
	userID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID, Status: entity.CartStatusOpen}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	expectTransaction(f.txManager, factory)

	txCartRepo.EXPECT().LockOpenByUser(mock.Anything, userID).Return(cart, nil)
	txCartRepo.EXPECT().Delete(mock.Anything, cart.ID).Return(nil)

	assert.NoError(t, f.service.ClearCart(context.Background(), userID))
}

func TestCartService_Checkout_EmptyCart(t *testing.T) {
	userID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID, Status: entity.CartStatusOpen}

	tests := []struct {
		name  string
		setup func(repo *mockRepo.MockCartRepository)
	}{
		{
			name: "no open cart",
			setup: func(repo *mockRepo.MockCartRepository) {
				repo.EXPECT().LockOpenByUser(mock.Anything, userID).Return(nil, repository.ErrCartNotFound)
			},
		},
		{
			name: "open cart without items",
			setup: func(repo *mockRepo.MockCartRepository) {
				repo.EXPECT().LockOpenByUser(mock.Anything, userID).Return(cart, nil)
				repo.EXPECT().ListItems(mock.Anything, cart.ID).Return([]*entity.CartItem{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestCartService(t)
			factory := mockRepo.NewMockRepositoryFactory(t)
			txCartRepo := mockRepo.NewMockCartRepository(t)
			factory.EXPECT().CartRepo().Return(txCartRepo)
			expectTransaction(f.txManager, factory)
			tt.setup(txCartRepo)

			err := f.service.Checkout(context.Background(), userID)

			assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
		})
	}
}

func TestCartService_Checkout_PublishFailureIsNotFatal(t *testing.T) {
	p1 := &entity.Product{ID: 1, Price: 10, Shop: entity.Shop{ID: 4}}
	srv, repo, publisher := createMemoryCartService(t, p1)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, srv.AddItem(ctx, userID, p1.ID))
	publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.MatchedBy(func(event *service.OrderPlacedEvent) bool {
			return event.UserID == userID.String() &&
				len(event.Items) == 1 &&
				event.Items[0].ShopID == 4 &&
				event.Items[0].Price == 10
		})).
		Return(errors.New("broker unavailable"))

	require.NoError(t, srv.Checkout(ctx, userID))

	placed, err := repo.ListPlacedByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, placed, 1)
	assert.NotNil(t, placed[0].OrderedAt)
}

func TestCartService_AddTwice_SingleItemQuantityTwo(t *testing.T) {
	p1 := &entity.Product{ID: 1, Name: "Bagel", Price: 10}
	srv, _, _ := createMemoryCartService(t, p1)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, srv.AddItem(ctx, userID, p1.ID))
	require.NoError(t, srv.AddItem(ctx, userID, p1.ID))

	items, err := srv.GetCart(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "1", items[0].ProductID)
}

func TestCartService_Decrement(t *testing.T) {
	p1 := &entity.Product{ID: 1, Price: 10}
	srv, _, _ := createMemoryCartService(t, p1)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, srv.AddItem(ctx, userID, p1.ID))
	require.NoError(t, srv.AddItem(ctx, userID, p1.ID))

	require.NoError(t, srv.ChangeQuantity(ctx, userID, p1.ID, entity.QuantityDecrement))
	items, err := srv.GetCart(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	require.NoError(t, srv.ChangeQuantity(ctx, userID, p1.ID, entity.QuantityDecrement))
	items, err = srv.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, items)

	err = srv.ChangeQuantity(ctx, userID, p1.ID, entity.QuantityDecrement)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotInCart))
}

func TestCartService_Scenario(t *testing.T) {
	p1 := &entity.Product{ID: 1, Name: "Bagel", Price: 10}
	p2 := &entity.Product{ID: 2, Name: "Milk", Price: 3}
	srv, repo, publisher := createMemoryCartService(t, p1, p2)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, srv.AddItem(ctx, userID, p1.ID))
	require.NoError(t, srv.AddItem(ctx, userID, p1.ID))
	require.NoError(t, srv.AddItem(ctx, userID, p2.ID))

	items, err := srv.GetCart(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "2", items[1].ProductID)
	assert.Equal(t, 1, items[1].Quantity)

	require.NoError(t, srv.ChangeQuantity(ctx, userID, p1.ID, entity.QuantityDecrement))
	require.NoError(t, srv.ChangeQuantity(ctx, userID, p1.ID, entity.QuantityDecrement))

	items, err = srv.GetCart(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ProductID)

	openCart, err := repo.FindOpenByUser(ctx, userID)
	require.NoError(t, err)

	publisher.EXPECT().PublishOrderPlaced(ctx, mock.Anything).Return(nil)
	require.NoError(t, srv.Checkout(ctx, userID))

	placed, err := repo.ListPlacedByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, placed, 1)
	assert.Equal(t, openCart.ID, placed[0].ID)
	assert.Equal(t, entity.CartStatusPlaced, placed[0].Status)

	// A placed cart is never reused and never checked out again.
	items, err = srv.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, items)

	fresh, err := repo.FindOpenByUser(ctx, userID)
	require.NoError(t, err)
	assert.NotEqual(t, openCart.ID, fresh.ID)

	err = srv.Checkout(ctx, userID)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))

	stillOpen, err := repo.FindOpenByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, fresh.ID, stillOpen.ID)
}

func TestCartService_ClearCart_KeepsPlacedCarts(t *testing.T) {
	p1 := &entity.Product{ID: 1, Price: 10}
	srv, repo, publisher := createMemoryCartService(t, p1)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, srv.AddItem(ctx, userID, p1.ID))
	publisher.EXPECT().PublishOrderPlaced(ctx, mock.Anything).Return(nil)
	require.NoError(t, srv.Checkout(ctx, userID))
	require.NoError(t, srv.AddItem(ctx, userID, p1.ID))

	require.NoError(t, srv.ClearCart(ctx, userID))

	assert.Equal(t, 0, repo.openCarts(userID))
	placed, err := repo.ListPlacedByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, placed, 1)
}

func TestCartService_ConcurrentAdds_SingleOpenCart(t *testing.T) {
	p1 := &entity.Product{ID: 1, Price: 10}
	srv, repo, _ := createMemoryCartService(t, p1)
	ctx := context.Background()
	userID := uuid.New()

	const workers = 32
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- srv.AddItem(ctx, userID, p1.ID)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, 1, repo.openCarts(userID))
	items, err := srv.GetCart(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, workers, items[0].Quantity)
}

func TestCartService_AddItem_CheckoutBetweenReadAndWrite(t *testing.T) {
	p1 := &entity.Product{ID: 1, Price: 10}
	p2 := &entity.Product{ID: 2, Price: 3}
	srv, repo, publisher := createMemoryCartService(t, p1, p2)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, srv.AddItem(ctx, userID, p1.ID))
	first, err := repo.FindOpenByUser(ctx, userID)
	require.NoError(t, err)

	publisher.EXPECT().PublishOrderPlaced(ctx, mock.Anything).Return(nil).Once()
	srv.cartRepo = &interleavingCartRepository{
		memoryCartRepository: repo,
		afterFindOpen: func() {
			require.NoError(t, srv.Checkout(ctx, userID))
		},
	}

	require.NoError(t, srv.AddItem(ctx, userID, p2.ID))

	placedItems, err := repo.ListItems(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, placedItems, 1, "placed cart changed after checkout")
	assert.Equal(t, p1.ID, placedItems[0].ProductID)
	assert.Equal(t, 1, placedItems[0].Quantity)

	open, err := repo.FindOpenByUser(ctx, userID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, open.ID)
	openItems, err := repo.ListItems(ctx, open.ID)
	require.NoError(t, err)
	require.Len(t, openItems, 1)
	assert.Equal(t, p2.ID, openItems[0].ProductID)
}

func TestCartService_AddItem_GivesUpWhenCartKeepsClosing(t *testing.T) {
	f := createTestCartService(t)
	userID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID, Status: entity.CartStatusOpen}

	f.catalogRepo.EXPECT().FindProductByID(mock.Anything, int64(3)).Return(&entity.Product{ID: 3}, nil)
	f.cartRepo.EXPECT().FindOpenByUser(mock.Anything, userID).Return(cart, nil).Times(maxOpenCartAttempts)
	factory := mockRepo.NewMockRepositoryFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	expectTransaction(f.txManager, factory)
	txCartRepo.EXPECT().LockOpenByUser(mock.Anything, userID).Return(nil, repository.ErrCartNotFound).Times(maxOpenCartAttempts)

	err := f.service.AddItem(context.Background(), userID, 3)

	assert.True(t, errors.Is(err, domainerrors.ErrStoreConflict))
}
