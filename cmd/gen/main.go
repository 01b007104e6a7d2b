package main

import (
	"surplus/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.ProfileModel{},
		model.AuthTokenModel{},
		model.CategoryModel{},
		model.ShopModel{},
		model.ProductModel{},
		model.CartModel{},
		model.CartItemModel{},
		model.WishlistEntryModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
