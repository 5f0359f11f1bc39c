package impl

import (
	"context"
	"log/slog"
	"strings"

	"autoparts/internal/domain/entity"
	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/domain/repository"
	"autoparts/internal/errors"
	logs "autoparts/internal/infra/log"
	"autoparts/internal/usecase"

	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return logs.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) List(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalog")
	}

	return products, nil
}

// Search rejects a blank query; listing everything is what List is for.
func (srv *catalogService) Search(ctx context.Context, query string) ([]*entity.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("search query is empty")
	}

	products, err := srv.productRepo.Search(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search catalog")
	}

	srv.log(ctx).Debug("Catalog searched", slog.String("query", query), slog.Int("matches", len(products)))

	return products, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

func (srv *catalogService) GetProductByArticle(ctx context.Context, article string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByArticle(ctx, strings.TrimSpace(article))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product by article")
	}

	return product, nil
}

func (srv *catalogService) Count(ctx context.Context) (int64, error) {
	count, err := srv.productRepo.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count catalog")
	}

	return count, nil
}

func (srv *catalogService) CreateProduct(ctx context.Context, session *entity.Session, input *usecase.ProductInput) (*entity.Product, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}
	product, err := productFromInput(input)
	if err != nil {
		return nil, err
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID), slog.String("article", product.Article))

	return product, nil
}

// UpdateProduct replaces every editable field of the product.
func (srv *catalogService) UpdateProduct(ctx context.Context, session *entity.Session, id int64, input *usecase.ProductInput) (*entity.Product, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}
	product, err := productFromInput(input)
	if err != nil {
		return nil, err
	}
	product.ID = id

	rows, err := srv.productRepo.Update(ctx, product)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}
	if rows == 0 {
		return nil, domainerrors.ErrProductNotFound.WrapMessage("failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.Int64("productID", id))

	return product, nil
}

// DeleteProduct does not touch cart lines; they stop showing up once the product is gone.
func (srv *catalogService) DeleteProduct(ctx context.Context, session *entity.Session, id int64) error {
	if err := requireAdmin(session); err != nil {
		return err
	}

	rows, err := srv.productRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}
	if rows == 0 {
		return domainerrors.ErrProductNotFound.WrapMessage("failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Int64("productID", id))

	return nil
}

func productFromInput(input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Price:gte")
	}

	return &entity.Product{
		Name:           strings.TrimSpace(input.Name),
		Article:        strings.TrimSpace(input.Article),
		Brand:          input.Brand,
		Price:          input.Price,
		Description:    input.Description,
		Category:       input.Category,
		ImageURL:       input.ImageURL,
		VINNumbers:     input.VINNumbers,
		CompatibleCars: input.CompatibleCars,
		Stock:          input.Stock,
		Warranty:       input.Warranty,
		Country:        input.Country,
		Weight:         input.Weight,
		Dimensions:     input.Dimensions,
		Rating:         input.Rating,
		ReviewsCount:   input.ReviewsCount,
	}, nil
}
