package usecase

import (
	"context"

	"autoparts/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CartOutput is a cart resolved against the catalog.
type CartOutput struct {
	Lines []*entity.CartLine
	Total decimal.Decimal
	Count int64
}

// CartUsecase manages the cart of a signed-in user or the anonymous device cart.
type CartUsecase interface {
	AddItem(ctx context.Context, owner entity.CartOwner, productID int64, quantity int) error

	// SetQuantity removes the line when quantity is zero or less.
	SetQuantity(ctx context.Context, owner entity.CartOwner, productID int64, quantity int) error

	Remove(ctx context.Context, owner entity.CartOwner, productID int64) error
	List(ctx context.Context, owner entity.CartOwner) (*CartOutput, error)
	Count(ctx context.Context, owner entity.CartOwner) (int64, error)
	Clear(ctx context.Context, owner entity.CartOwner) error

	// MergeLocalCart moves the anonymous device cart into the session user's cart.
	MergeLocalCart(ctx context.Context, session *entity.Session) error
}
