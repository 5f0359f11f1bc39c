package repository

import (
	"context"

	"autoparts/internal/domain/entity"
)

// OrderRepository persists orders.
type OrderRepository interface {
	// Create inserts the order with status pending and sets ID and CreatedAt.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID returns one order with the owner's display fields.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// ListAll returns every order with the owner's display fields, newest first.
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// ListByOwner is ListAll filtered to one user.
	ListByOwner(ctx context.Context, userID int64) ([]*entity.Order, error)

	// SetStatus writes the status as given and returns the rows affected.
	SetStatus(ctx context.Context, id int64, status entity.OrderStatus) (int64, error)

	DeleteAll(ctx context.Context) (int64, error)
	DeleteByOwner(ctx context.Context, userID int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}
