package sqlite

import (
	"context"
	"testing"

	"autoparts/internal/domain/entity"
	domainerrors "autoparts/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_CreateThenFindByArticle(t *testing.T) {
	ctx := context.Background()
	db, _ := openSeededDB(t)
	repo := NewProductRepository(db)
	product := newTestProduct("TST-1", "Тормозной диск", 1999)
	product.Price = decimal.RequireFromString("1999.99")
	product.Stock = 4
	product.Warranty = "12 мес"

	require.NoError(t, repo.Create(ctx, product))
	assert.NotZero(t, product.ID)

	got, err := repo.FindByArticle(ctx, "TST-1")
	require.NoError(t, err)

	want := *product
	want.CreatedAt = got.CreatedAt
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Name, got.Name)
	assert.True(t, want.Price.Equal(got.Price), "price %s != %s", want.Price, got.Price)
	got.Price = want.Price
	assert.Equal(t, &want, got)
}

func TestProductRepository_CreateDuplicateArticle(t *testing.T) {
	ctx := context.Background()
	db, _ := openSeededDB(t)
	repo := NewProductRepository(db)

	before, err := repo.Count(ctx)
	require.NoError(t, err)

	err = repo.Create(ctx, newTestProduct("MF-001", "Copy", 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrArticleAlreadyExists)
	assert.Equal(t, domainerrors.KindConstraintViolation, domainerrors.KindOf(err))

	after, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestProductRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	db, _ := openSeededDB(t)
	repo := NewProductRepository(db)

	newest := newTestProduct("NEW-1", "Newest", 5)
	require.NoError(t, repo.Create(ctx, newest))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, products)
	assert.Equal(t, newest.ID, products[0].ID)
	for i := 1; i < len(products); i++ {
		assert.Greater(t, products[i-1].ID, products[i].ID)
	}
}

func TestProductRepository_Search(t *testing.T) {
	ctx := context.Background()
	db, _ := openSeededDB(t)
	repo := NewProductRepository(db)

	tests := []struct {
		name     string
		query    string
		wantMin  int
		contains string
	}{
		{name: "brand any case", query: "bosch", wantMin: 5, contains: "bosch"},
		{name: "cyrillic name lower case", query: "масляный", wantMin: 1, contains: "масляный"},
		{name: "article", query: "mf-001", wantMin: 1, contains: "mf-001"},
		{name: "compatible cars", query: "touareg", wantMin: 1, contains: "touareg"},
		{name: "no match", query: "zzzz", wantMin: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.Search(ctx, tt.query)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(found), tt.wantMin)
			if tt.wantMin == 0 {
				assert.Empty(t, found)
			}
			for _, p := range found {
				assert.True(t, productMatches(p, tt.contains), "%s does not match %q", p.Article, tt.contains)
			}
		})
	}
}

func TestProductRepository_SearchIgnoresUnsearchedFields(t *testing.T) {
	ctx := context.Background()
	db, _ := openSeededDB(t)
	repo := NewProductRepository(db)

	// Category is not searched.
	p := newTestProduct("CAT-1", "Plain", 1)
	p.Brand = "Nobody"
	p.Description = ""
	p.CompatibleCars = ""
	p.Category = "UniqueCategoryWord"
	require.NoError(t, repo.Create(ctx, p))

	found, err := repo.Search(ctx, "UniqueCategoryWord")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestProductRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	db, _ := openSeededDB(t)
	repo := NewProductRepository(db)

	product := newTestProduct("UPD-1", "Before", 10)
	require.NoError(t, repo.Create(ctx, product))

	product.Name = "After"
	product.Price = decimal.NewFromInt(20)
	product.Description = ""
	rows, err := repo.Update(ctx, product)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	got, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Name)
	assert.Empty(t, got.Description)
	assert.True(t, decimal.NewFromInt(20).Equal(got.Price))

	missing := newTestProduct("UPD-2", "Ghost", 1)
	missing.ID = 99999
	rows, err = repo.Update(ctx, missing)
	require.NoError(t, err)
	assert.Zero(t, rows)

	rows, err = repo.Delete(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = repo.Delete(ctx, product.ID)
	require.NoError(t, err)
	assert.Zero(t, rows)

	_, err = repo.FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestProductRepository_UpdateToTakenArticle(t *testing.T) {
	ctx := context.Background()
	db, _ := openSeededDB(t)
	repo := NewProductRepository(db)

	product := newTestProduct("OWN-1", "Mine", 10)
	require.NoError(t, repo.Create(ctx, product))

	product.Article = "MF-001"
	_, err := repo.Update(ctx, product)
	assert.ErrorIs(t, err, domainerrors.ErrArticleAlreadyExists)
}

func TestProductRepository_CreateBatch(t *testing.T) {
	ctx := context.Background()
	db, _ := openSeededDB(t)
	repo := NewProductRepository(db)

	_, err := repo.DeleteAll(ctx)
	require.NoError(t, err)

	batch := []*entity.Product{
		newTestProduct("B-1", "One", 1),
		newTestProduct("B-2", "Two", 2),
	}
	require.NoError(t, repo.CreateBatch(ctx, batch))
	assert.NotZero(t, batch[0].ID)
	assert.NotZero(t, batch[1].ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
