package sqlite

import (
	"context"
	"strings"
	"time"

	"autoparts/internal/domain/entity"
	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/domain/repository"
	"autoparts/internal/infra/persistence/model"

	"gorm.io/gorm"
)

const productBatchSize = 100

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// List returns the catalog newest first.
func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var productsM []*model.ProductModel
	if err := repo.db.WithContext(ctx).Order("id DESC").Find(&productsM).Error; err != nil {
		return nil, translateError(err, nil, nil, "failed to list products")
	}

	return toProductsDomain(productsM), nil
}

// Search matches query as a substring of the searchable text fields.
// SQLite's LIKE only folds ASCII case and the catalog is mostly Cyrillic, so matching is done here.
func (repo *productRepository) Search(ctx context.Context, query string) ([]*entity.Product, error) {
	products, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matched := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if productMatches(p, needle) {
			matched = append(matched, p)
		}
	}

	return matched, nil
}

func productMatches(p *entity.Product, needle string) bool {
	for _, field := range []string{p.Name, p.Article, p.Brand, p.Description, p.CompatibleCars} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}

func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		return nil, translateError(err, domainerrors.ErrProductNotFound, nil, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) FindByArticle(ctx context.Context, article string) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("article = ?", article).First(&productM).Error; err != nil {
		return nil, translateError(err, domainerrors.ErrProductNotFound, nil, "failed to find product by article")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	productM.ID = 0
	if !productM.CreatedAt.Valid {
		productM.CreatedAt = model.NewTimestamp(time.Now())
	}

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return translateError(err, nil, domainerrors.ErrArticleAlreadyExists, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt.Time

	return nil
}

func (repo *productRepository) CreateBatch(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}

	now := model.NewTimestamp(time.Now())
	productsM := make([]*model.ProductModel, len(products))
	for i, p := range products {
		productsM[i] = fromProductDomain(p)
		productsM[i].ID = 0
		if !productsM[i].CreatedAt.Valid {
			productsM[i].CreatedAt = now
		}
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(productsM, productBatchSize).Error; err != nil {
		return translateError(err, nil, domainerrors.ErrArticleAlreadyExists, "failed to create products")
	}

	for i := range products {
		products[i].ID = productsM[i].ID
		products[i].CreatedAt = productsM[i].CreatedAt.Time
	}

	return nil
}

// Update replaces every editable column. The creation timestamp is kept.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) (int64, error) {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select(model.EditableProductColumns).
		Updates(productM)
	if result.Error != nil {
		return 0, translateError(result.Error, nil, domainerrors.ErrArticleAlreadyExists, "failed to update product")
	}

	return result.RowsAffected, nil
}

func (repo *productRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return 0, translateError(result.Error, nil, nil, "failed to delete product")
	}

	return result.RowsAffected, nil
}

func (repo *productRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.ProductModel{})
	if result.Error != nil {
		return 0, translateError(result.Error, nil, nil, "failed to delete products")
	}

	return result.RowsAffected, nil
}

func (repo *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Count(&count).Error; err != nil {
		return 0, translateError(err, nil, nil, "failed to count products")
	}

	return count, nil
}

func toProductsDomain(productsM []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(productsM))
	for _, productM := range productsM {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:             data.ID,
		Name:           data.Name,
		Article:        data.Article,
		Brand:          data.Brand,
		Price:          data.Price,
		Description:    data.Description,
		Category:       data.Category,
		ImageURL:       data.ImageURL,
		VINNumbers:     data.VINNumbers,
		CompatibleCars: data.CompatibleCars,
		Stock:          data.Stock,
		Warranty:       data.Warranty,
		Country:        data.Country,
		Weight:         data.Weight,
		Dimensions:     data.Dimensions,
		Rating:         data.Rating,
		ReviewsCount:   data.ReviewsCount,
		CreatedAt:      data.CreatedAt.Time,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	productM := &model.ProductModel{
		ID:             data.ID,
		Name:           data.Name,
		Article:        data.Article,
		Brand:          data.Brand,
		Price:          data.Price,
		Description:    data.Description,
		Category:       data.Category,
		ImageURL:       data.ImageURL,
		VINNumbers:     data.VINNumbers,
		CompatibleCars: data.CompatibleCars,
		Stock:          data.Stock,
		Warranty:       data.Warranty,
		Country:        data.Country,
		Weight:         data.Weight,
		Dimensions:     data.Dimensions,
		Rating:         data.Rating,
		ReviewsCount:   data.ReviewsCount,
	}
	if !data.CreatedAt.IsZero() {
		productM.CreatedAt = model.NewTimestamp(data.CreatedAt)
	}

	return productM
}
