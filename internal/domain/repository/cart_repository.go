package repository

import (
	"context"

	"autoparts/internal/domain/entity"
)

// CartRepository persists cart lines keyed by (owner, product).
type CartRepository interface {
	// AddItem inserts the line or increases its quantity by quantity in a single statement.
	AddItem(ctx context.Context, owner entity.CartOwner, productID int64, quantity int) error

	// SetQuantity overwrites the quantity of an existing line and returns the rows affected.
	SetQuantity(ctx context.Context, owner entity.CartOwner, productID int64, quantity int) (int64, error)

	// Remove deletes one line and returns the rows affected.
	Remove(ctx context.Context, owner entity.CartOwner, productID int64) (int64, error)

	// List returns the owner's lines joined with the catalog. Lines whose product is gone are skipped.
	List(ctx context.Context, owner entity.CartOwner) ([]*entity.CartLine, error)

	// Count sums the quantities of the visible lines.
	Count(ctx context.Context, owner entity.CartOwner) (int64, error)

	// Clear deletes every line of the owner, including lines whose product is gone.
	Clear(ctx context.Context, owner entity.CartOwner) (int64, error)

	// Merge moves every line of from into to, adding quantities, and empties from.
	Merge(ctx context.Context, from, to entity.CartOwner) error
}
