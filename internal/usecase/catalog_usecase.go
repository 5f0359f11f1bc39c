package usecase

import (
	"context"

	"autoparts/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ProductInput carries every editable product field.
type ProductInput struct {
	Name           string `validate:"required"`
	Article        string `validate:"required"`
	Brand          string
	Price          decimal.Decimal
	Description    string
	Category       string
	ImageURL       string
	VINNumbers     string
	CompatibleCars string

	Stock        int `validate:"gte=0"`
	Warranty     string
	Country      string
	Weight       float64 `validate:"gte=0"`
	Dimensions   string
	Rating       float64 `validate:"gte=0,lte=5"`
	ReviewsCount int     `validate:"gte=0"`
}

// CatalogUsecase browses and, for administrators, edits the product catalog.
type CatalogUsecase interface {
	List(ctx context.Context) ([]*entity.Product, error)
	Search(ctx context.Context, query string) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	GetProductByArticle(ctx context.Context, article string) (*entity.Product, error)
	Count(ctx context.Context) (int64, error)

	CreateProduct(ctx context.Context, session *entity.Session, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, session *entity.Session, id int64, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, session *entity.Session, id int64) error
}
