package postgres

import (
	"context"

	"surplus/internal/errors"
	"surplus/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Models lists every persistence model in dependency order.
func Models() []any {
	return []any{
		&model.UserModel{},
		&model.ProfileModel{},
		&model.AuthTokenModel{},
		&model.CategoryModel{},
		&model.ShopModel{},
		&model.ProductModel{},
		&model.CartModel{},
		&model.CartItemModel{},
		&model.WishlistEntryModel{},
	}
}

// Migrate creates or updates the schema, including the partial unique index
// that limits each user to a single open cart.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS pg_uuidv7").Error; err != nil {
		return errors.Wrap(err, "failed to enable pg_uuidv7 extension")
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate schema")
	}

	return nil
}
