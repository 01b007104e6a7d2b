package postgres

import (
	"context"
	"time"

	"surplus/internal/domain/entity"
	domainerrors "surplus/internal/domain/errors"
	"surplus/internal/domain/repository"
	"surplus/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// primary pins the statement to the primary so reads observe writes of concurrent requests.
func (repo *cartRepository) primary(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Write)
}

// FindOpenByUser returns the user's open cart.
func (repo *cartRepository) FindOpenByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return repo.findOne(repo.primary(ctx).
		Where("user_id = ? AND status = ?", userID, entity.CartStatusOpen))
}

// LockOpenByUser returns the user's open cart with a row lock held until the transaction ends.
func (repo *cartRepository) LockOpenByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return repo.findOne(repo.primary(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND status = ?", userID, entity.CartStatusOpen))
}

// CreateOpen persists a new open cart. The partial unique index rejects a second open cart.
func (repo *cartRepository) CreateOpen(ctx context.Context, cart *entity.Cart) error {
	cartM := &model.CartModel{
		DisplayID: cart.DisplayID,
		UserID:    cart.UserID,
		Status:    string(entity.CartStatusOpen),
	}

	if err := repo.primary(ctx).Create(cartM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrOpenCartExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	cart.ID = cartM.ID
	cart.Status = entity.CartStatusOpen
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// Delete removes the cart and its items.
func (repo *cartRepository) Delete(ctx context.Context, cartID uuid.UUID) error {
	db := repo.primary(ctx)

	if err := db.Where("cart_id = ?", cartID).Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart items")
	}

	result := db.Where("id = ?", cartID).Delete(&model.CartModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// MarkPlaced moves an open cart to placed.
func (repo *cartRepository) MarkPlaced(ctx context.Context, cartID uuid.UUID, orderedAt time.Time) error {
	result := repo.primary(ctx).
		Model(&model.CartModel{}).
		Where("id = ? AND status = ?", cartID, entity.CartStatusOpen).
		Updates(map[string]any{
			"status":     string(entity.CartStatusPlaced),
			"ordered_at": orderedAt,
			"updated_at": orderedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark cart placed")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// ListPlacedByUser returns placed carts with items, newest first.
func (repo *cartRepository) ListPlacedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Cart, error) {
	var cartModels []*model.CartModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at, id") }).
		Preload("Items.Product.Shop").
		Where("user_id = ? AND status = ?", userID, entity.CartStatusPlaced).
		Order("ordered_at DESC").
		Find(&cartModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list placed carts")
	}

	carts := make([]*entity.Cart, 0, len(cartModels))
	for _, c := range cartModels {
		carts = append(carts, toCartDomain(c))
	}

	return carts, nil
}

// FindPlacedByDisplayID returns the user's most recent placed cart with the display id.
func (repo *cartRepository) FindPlacedByDisplayID(ctx context.Context, userID uuid.UUID, displayID string) (*entity.Cart, error) {
	return repo.findOne(repo.db.WithContext(ctx).
		Where("user_id = ? AND display_id = ? AND status = ?", userID, displayID, entity.CartStatusPlaced).
		Order("ordered_at DESC"))
}

// FindItem returns the item of a product in a cart.
func (repo *cartRepository) FindItem(ctx context.Context, cartID uuid.UUID, productID int64) (*entity.CartItem, error) {
	var itemM model.CartItemModel

	if err := repo.primary(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return toCartItemDomain(&itemM), nil
}

// ListItems returns the cart's items with product and shop, oldest first.
func (repo *cartRepository) ListItems(ctx context.Context, cartID uuid.UUID) ([]*entity.CartItem, error) {
	var itemModels []*model.CartItemModel

	if err := repo.primary(ctx).
		Preload("Product.Shop").
		Where("cart_id = ?", cartID).
		Order("created_at, id").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	items := make([]*entity.CartItem, 0, len(itemModels))
	for _, it := range itemModels {
		items = append(items, toCartItemDomain(it))
	}

	return items, nil
}

// AddOrIncrementItem upserts on (cart_id, product_id) so concurrent adds fold into one row.
func (repo *cartRepository) AddOrIncrementItem(ctx context.Context, cartID uuid.UUID, productID int64) (*entity.CartItem, error) {
	itemM := &model.CartItemModel{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  1,
	}

	err := repo.primary(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
				DoUpdates: clause.Assignments(map[string]any{
					"quantity":   gorm.Expr("cart_items.quantity + 1"),
					"updated_at": gorm.Expr("NOW()"),
				}),
			},
			clause.Returning{},
		).
		Create(itemM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrCartNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert cart item")
	}

	return toCartItemDomain(itemM), nil
}

// IncrementItem atomically adds one unit.
func (repo *cartRepository) IncrementItem(ctx context.Context, itemID uuid.UUID) error {
	result := repo.primary(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ?", itemID).
		Updates(map[string]any{
			"quantity":   gorm.Expr("quantity + 1"),
			"updated_at": gorm.Expr("NOW()"),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// maxDecrementAttempts bounds the retries when a concurrent write changes the quantity
// between the conditional update and the conditional delete.
const maxDecrementAttempts = 3

// DecrementItem removes one unit, deleting the row instead of storing a zero quantity.
// Each statement re-checks the quantity it acts on, so a concurrent increment is never lost.
func (repo *cartRepository) DecrementItem(ctx context.Context, itemID uuid.UUID) (bool, error) {
	db := repo.primary(ctx)

	for range maxDecrementAttempts {
		result := db.Model(&model.CartItemModel{}).
			Where("id = ? AND quantity > 1", itemID).
			Updates(map[string]any{
				"quantity":   gorm.Expr("quantity - 1"),
				"updated_at": gorm.Expr("NOW()"),
			})
		if result.Error != nil {
			return false, errors.Wrap(result.Error, "failed to decrement cart item")
		}
		if result.RowsAffected > 0 {
			return false, nil
		}

		result = db.Where("id = ? AND quantity = 1", itemID).Delete(&model.CartItemModel{})
		if result.Error != nil {
			return false, errors.Wrap(result.Error, "failed to delete cart item")
		}
		if result.RowsAffected > 0 {
			return true, nil
		}

		var count int64
		if err := db.Model(&model.CartItemModel{}).Where("id = ?", itemID).Count(&count).Error; err != nil {
			return false, errors.Wrap(err, "failed to check cart item")
		}
		if count == 0 {
			return false, repository.ErrCartItemNotFound
		}
	}

	return false, errors.Wrap(domainerrors.ErrStoreConflict, "cart item quantity kept changing")
}

// DeleteItem removes the product from the cart.
func (repo *cartRepository) DeleteItem(ctx context.Context, cartID uuid.UUID, productID int64) error {
	if err := repo.primary(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart item")
	}

	return nil
}

func (repo *cartRepository) findOne(query *gorm.DB) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := query.First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return toCartDomain(&cartM), nil
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	cart := &entity.Cart{
		ID:        data.ID,
		DisplayID: data.DisplayID,
		UserID:    data.UserID,
		Status:    entity.CartStatus(data.Status),
		OrderedAt: data.OrderedAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if len(data.Items) > 0 {
		cart.Items = make([]*entity.CartItem, 0, len(data.Items))
		for i := range data.Items {
			cart.Items = append(cart.Items, toCartItemDomain(&data.Items[i]))
		}
	}

	return cart
}

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:        data.ID,
		CartID:    data.CartID,
		ProductID: data.ProductID,
		Product:   toProductDomain(data.Product),
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
