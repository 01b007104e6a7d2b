package postgres

import (
	"context"
	"strings"
	"time"

	"surplus/internal/domain/entity"
	"surplus/internal/domain/repository"
	"surplus/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// catalogRepository implements the repository.CatalogRepository interface.
// Catalog data is read-only here, so every query may be served by a replica.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func (repo *catalogRepository) read(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Read)
}

// ListCategories returns every category ordered by id.
func (repo *catalogRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.read(ctx).Order("id").Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, c := range categoryModels {
		categories = append(categories, &entity.Category{ID: c.ID, Name: c.Name, Image: c.Image})
	}

	return categories, nil
}

// FindProductByID returns a product regardless of its expiry.
func (repo *catalogRepository) FindProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.read(ctx).
		Preload("Shop").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// ListProductsExpiringBetween returns products expiring in [from, to), soonest first.
func (repo *catalogRepository) ListProductsExpiringBetween(ctx context.Context, from, to time.Time) ([]*entity.Product, error) {
	return repo.findProducts(repo.read(ctx).
		Preload("Shop").
		Where("expire_time >= ? AND expire_time < ?", from, to).
		Order("expire_time, id"))
}

// ListProductsByCategory returns the category's products that have not expired yet.
func (repo *catalogRepository) ListProductsByCategory(ctx context.Context, categoryID int64, notExpiredAt time.Time) ([]*entity.Product, error) {
	return repo.findProducts(repo.read(ctx).
		Preload("Shop").
		Where("category_id = ? AND expire_time >= ?", categoryID, notExpiredAt).
		Order("expire_time, id"))
}

// SearchProducts matches the term against product and shop names, case-insensitively.
func (repo *catalogRepository) SearchProducts(ctx context.Context, term string, notExpiredAt time.Time) ([]*entity.Product, error) {
	pattern := "%" + escapeLike(term) + "%"

	return repo.findProducts(repo.read(ctx).
		Joins("Shop").
		Where(`(products.name ILIKE ? OR "Shop".name ILIKE ?) AND products.expire_time >= ?`, pattern, pattern, notExpiredAt).
		Order("products.expire_time, products.id"))
}

func (repo *catalogRepository) findProducts(query *gorm.DB) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, p := range productModels {
		products = append(products, toProductDomain(p))
	}

	return products, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes the term match literally inside a LIKE pattern.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Price:       data.Price,
		Description: data.Description,
		ExpireTime:  data.ExpireTime,
		Image:       data.Image,
		CategoryID:  data.CategoryID,
		Shop:        entity.Shop{ID: data.ShopID},
	}
	if data.Shop != nil {
		product.Shop.Name = data.Shop.Name
		product.Shop.Address = data.Shop.Address
	}

	return product
}
