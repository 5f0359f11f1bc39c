package sqlite

import (
	"context"
	"testing"

	"autoparts/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_AddItemAccumulates(t *testing.T) {
	ctx := context.Background()
	db, _ := openSeededDB(t)
	products := NewProductRepository(db)
	cart := NewCartRepository(db)

	product := newTestProduct("CART-1", "Фильтр", 250)
	require.NoError(t, products.Create(ctx, product))

	owner := entity.UserCartOwner(1)
	for i := 0; i < 3; i++ {
		require.NoError(t, cart.AddItem(ctx, owner, product.ID, 1))
	}

	lines, err := cart.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, owner, lines[0].Owner)
	assert.Equal(t, product.ID, lines[0].Product.ID)
	assert.True(t, decimal.NewFromInt(750).Equal(lines[0].LineTotal()))

	count, err := cart.Count(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	others, err := cart.List(ctx, entity.LocalCartOwner)
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestCartRepository_SetQuantityAndRemove(t *testing.T) {
	ctx := context.Background()
	db, _ := openSeededDB(t)
	products := NewProductRepository(db)
	cart := NewCartRepository(db)

	product := newTestProduct("CART-2", "Свеча", 100)
	require.NoError(t, products.Create(ctx, product))

	owner := entity.LocalCartOwner
	require.NoError(t, cart.AddItem(ctx, owner, product.ID, 2))

	rows, err := cart.SetQuantity(ctx, owner, product.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	count, err := cart.Count(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)

	rows, err = cart.SetQuantity(ctx, owner, product.ID+1000, 7)
	require.NoError(t, err)
	assert.Zero(t, rows)

	rows, err = cart.Remove(ctx, owner, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = cart.Remove(ctx, owner, product.ID)
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestCartRepository_DeletedProductsAreHidden(t *testing.T) {
	ctx := context.Background()
	db, _ := openSeededDB(t)
	products := NewProductRepository(db)
	cart := NewCartRepository(db)

	kept := newTestProduct("CART-3", "Kept", 10)
	gone := newTestProduct("CART-4", "Gone", 20)
	require.NoError(t, products.Create(ctx, kept))
	require.NoError(t, products.Create(ctx, gone))

	owner := entity.UserCartOwner(2)
	require.NoError(t, cart.AddItem(ctx, owner, kept.ID, 1))
	require.NoError(t, cart.AddItem(ctx, owner, gone.ID, 4))

	_, err := products.Delete(ctx, gone.ID)
	require.NoError(t, err)

	lines, err := cart.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, kept.ID, lines[0].Product.ID)

	count, err := cart.Count(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// The orphaned line is still stored and is removed by Clear.
	rows, err := cart.Clear(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rows)
}

func TestCartRepository_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	db, _ := openSeededDB(t)
	products := NewProductRepository(db)
	cart := NewCartRepository(db)

	first := newTestProduct("ORD-B", "B", 1)
	second := newTestProduct("ORD-A", "A", 1)
	require.NoError(t, products.Create(ctx, first))
	require.NoError(t, products.Create(ctx, second))

	owner := entity.LocalCartOwner
	require.NoError(t, cart.AddItem(ctx, owner, second.ID, 1))
	require.NoError(t, cart.AddItem(ctx, owner, first.ID, 1))

	lines, err := cart.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, second.ID, lines[0].Product.ID)
	assert.Equal(t, first.ID, lines[1].Product.ID)
}

func TestCartRepository_Merge(t *testing.T) {
	ctx := context.Background()
	db, _ := openSeededDB(t)
	products := NewProductRepository(db)
	cart := NewCartRepository(db)

	shared := newTestProduct("MRG-1", "Shared", 10)
	onlyLocal := newTestProduct("MRG-2", "Local only", 10)
	require.NoError(t, products.Create(ctx, shared))
	require.NoError(t, products.Create(ctx, onlyLocal))

	user := entity.UserCartOwner(1)
	require.NoError(t, cart.AddItem(ctx, user, shared.ID, 2))
	require.NoError(t, cart.AddItem(ctx, entity.LocalCartOwner, shared.ID, 3))
	require.NoError(t, cart.AddItem(ctx, entity.LocalCartOwner, onlyLocal.ID, 1))

	require.NoError(t, cart.Merge(ctx, entity.LocalCartOwner, user))

	lines, err := cart.List(ctx, user)
	require.NoError(t, err)
	quantities := make(map[int64]int, len(lines))
	for _, line := range lines {
		quantities[line.Product.ID] = line.Quantity
	}
	assert.Equal(t, map[int64]int{shared.ID: 5, onlyLocal.ID: 1}, quantities)

	local, err := cart.Count(ctx, entity.LocalCartOwner)
	require.NoError(t, err)
	assert.Zero(t, local)

	assert.NoError(t, cart.Merge(ctx, user, user))
	assert.NoError(t, cart.Merge(ctx, entity.LocalCartOwner, user))
}
