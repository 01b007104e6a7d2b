package impl

import (
	"context"
	"sort"
	"sync"
	"time"

	"surplus/internal/domain/entity"
	"surplus/internal/domain/repository"

	"github.com/google/uuid"
)

// memoryCartRepository is an in-memory CartRepository that enforces the same uniqueness
// rules as the database: one open cart per user and one item per (cart, product).
type memoryCartRepository struct {
	mu       sync.Mutex
	carts    map[uuid.UUID]*entity.Cart
	items    map[uuid.UUID]*entity.CartItem
	products map[int64]*entity.Product
}

func newMemoryCartRepository(products ...*entity.Product) *memoryCartRepository {
	repo := &memoryCartRepository{
		carts:    make(map[uuid.UUID]*entity.Cart),
		items:    make(map[uuid.UUID]*entity.CartItem),
		products: make(map[int64]*entity.Product),
	}
	for _, p := range products {
		repo.products[p.ID] = p
	}

	return repo
}

func (r *memoryCartRepository) openCartLocked(userID uuid.UUID) *entity.Cart {
	for _, c := range r.carts {
		if c.UserID == userID && c.Status == entity.CartStatusOpen {
			return c
		}
	}

	return nil
}

func (r *memoryCartRepository) itemLocked(cartID uuid.UUID, productID int64) *entity.CartItem {
	for _, it := range r.items {
		if it.CartID == cartID && it.ProductID == productID {
			return it
		}
	}

	return nil
}

func (r *memoryCartRepository) openCarts(userID uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, c := range r.carts {
		if c.UserID == userID && c.Status == entity.CartStatusOpen {
			n++
		}
	}

	return n
}

func (r *memoryCartRepository) FindOpenByUser(_ context.Context, userID uuid.UUID) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c := r.openCartLocked(userID); c != nil {
		clone := *c

		return &clone, nil
	}

	return nil, repository.ErrCartNotFound
}

func (r *memoryCartRepository) LockOpenByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return r.FindOpenByUser(ctx, userID)
}

func (r *memoryCartRepository) CreateOpen(_ context.Context, cart *entity.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.openCartLocked(cart.UserID) != nil {
		return repository.ErrOpenCartExists
	}

	cart.ID = uuid.New()
	cart.CreatedAt = time.Now()
	clone := *cart
	r.carts[cart.ID] = &clone

	return nil
}

func (r *memoryCartRepository) Delete(_ context.Context, cartID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, it := range r.items {
		if it.CartID == cartID {
			delete(r.items, id)
		}
	}
	delete(r.carts, cartID)

	return nil
}

func (r *memoryCartRepository) MarkPlaced(_ context.Context, cartID uuid.UUID, orderedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts[cartID]
	if !ok || c.Status != entity.CartStatusOpen {
		return repository.ErrCartNotFound
	}
	c.Status = entity.CartStatusPlaced
	c.OrderedAt = &orderedAt

	return nil
}

func (r *memoryCartRepository) ListPlacedByUser(_ context.Context, userID uuid.UUID) ([]*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var carts []*entity.Cart
	for _, c := range r.carts {
		if c.UserID == userID && c.Status == entity.CartStatusPlaced {
			clone := *c
			carts = append(carts, &clone)
		}
	}

	return carts, nil
}

func (r *memoryCartRepository) FindPlacedByDisplayID(_ context.Context, userID uuid.UUID, displayID string) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.carts {
		if c.UserID == userID && c.DisplayID == displayID && c.Status == entity.CartStatusPlaced {
			clone := *c

			return &clone, nil
		}
	}

	return nil, repository.ErrCartNotFound
}

func (r *memoryCartRepository) FindItem(_ context.Context, cartID uuid.UUID, productID int64) (*entity.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if it := r.itemLocked(cartID, productID); it != nil {
		clone := *it

		return &clone, nil
	}

	return nil, repository.ErrCartItemNotFound
}

func (r *memoryCartRepository) ListItems(_ context.Context, cartID uuid.UUID) ([]*entity.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]*entity.CartItem, 0)
	for _, it := range r.items {
		if it.CartID == cartID {
			clone := *it
			clone.Product = r.products[it.ProductID]
			items = append(items, &clone)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })

	return items, nil
}

func (r *memoryCartRepository) AddOrIncrementItem(_ context.Context, cartID uuid.UUID, productID int64) (*entity.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it := r.itemLocked(cartID, productID)
	if it == nil {
		it = &entity.CartItem{ID: uuid.New(), CartID: cartID, ProductID: productID, CreatedAt: time.Now()}
		r.items[it.ID] = it
	}
	it.Quantity++
	clone := *it

	return &clone, nil
}

func (r *memoryCartRepository) IncrementItem(_ context.Context, itemID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.items[itemID]
	if !ok {
		return repository.ErrCartItemNotFound
	}
	it.Quantity++

	return nil
}

func (r *memoryCartRepository) DecrementItem(_ context.Context, itemID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.items[itemID]
	if !ok {
		return false, repository.ErrCartItemNotFound
	}
	if it.Quantity <= 1 {
		delete(r.items, itemID)

		return true, nil
	}
	it.Quantity--

	return false, nil
}

func (r *memoryCartRepository) DeleteItem(_ context.Context, cartID uuid.UUID, productID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if it := r.itemLocked(cartID, productID); it != nil {
		delete(r.items, it.ID)
	}

	return nil
}

// memoryTransactionManager runs the callback against the in-memory cart repository. Transactions
// are serialized, which stands in for the open cart row lock taken by LockOpenByUser.
type memoryTransactionManager struct {
	mu       sync.Mutex
	cartRepo repository.CartRepository
}

func (m *memoryTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(m)
}

func (m *memoryTransactionManager) UserRepo() repository.UserRepository   { return nil }
func (m *memoryTransactionManager) TokenRepo() repository.TokenRepository { return nil }
func (m *memoryTransactionManager) CartRepo() repository.CartRepository   { return m.cartRepo }

// interleavingCartRepository runs afterFindOpen once, right after the first FindOpenByUser returns.
// It lets a test slip another request in between reading the open cart and writing to it.
type interleavingCartRepository struct {
	*memoryCartRepository
	afterFindOpen func()
}

func (r *interleavingCartRepository) FindOpenByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := r.memoryCartRepository.FindOpenByUser(ctx, userID)
	if hook := r.afterFindOpen; hook != nil {
		r.afterFindOpen = nil
		hook()
	}

	return cart, err
}
