package repository

import (
	"context"

	"autoparts/internal/domain/entity"
)

// ProductRepository persists the catalog.
type ProductRepository interface {
	// List returns every product, newest first.
	List(ctx context.Context) ([]*entity.Product, error)

	// Search returns products whose name, article, brand, description or compatible cars contain query,
	// ignoring case.
	Search(ctx context.Context, query string) ([]*entity.Product, error)

	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	FindByArticle(ctx context.Context, article string) (*entity.Product, error)

	// Create assigns the generated ID. A duplicate article yields ErrArticleAlreadyExists.
	Create(ctx context.Context, product *entity.Product) error

	// CreateBatch inserts many products at once.
	CreateBatch(ctx context.Context, products []*entity.Product) error

	// Update replaces the row with product.ID and returns the rows affected.
	Update(ctx context.Context, product *entity.Product) (int64, error)

	// Delete removes the product and returns the rows affected. Cart lines are left untouched.
	Delete(ctx context.Context, id int64) (int64, error)

	// DeleteAll empties the catalog.
	DeleteAll(ctx context.Context) (int64, error)

	Count(ctx context.Context) (int64, error)
}
