package usecase

import (
	"context"

	"autoparts/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CreateOrderInput is a fully priced order, typically built from a cart.
type CreateOrderInput struct {
	OwnerID     int64 `validate:"gt=0"`
	TotalAmount decimal.Decimal
	Items       []entity.LineItem

	CheckoutInput
}

// CheckoutInput holds the delivery and payment choices made at checkout.
type CheckoutInput struct {
	DeliveryType    entity.DeliveryType `validate:"required,oneof=pickup delivery"`
	PaymentType     entity.PaymentType  `validate:"required,oneof=cash card online"`
	DeliveryAddress string              `validate:"required_if=DeliveryType delivery"`
	DeliveryPhone   string              `validate:"required"`
	Comment         string
}

// OrderUsecase places orders and manages their lifecycle.
type OrderUsecase interface {
	// Create stores the order and clears the owner's cart in one transaction.
	Create(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	// Checkout turns the session user's cart into an order.
	Checkout(ctx context.Context, session *entity.Session, input *CheckoutInput) (*entity.Order, error)

	GetOrder(ctx context.Context, session *entity.Session, id int64) (*entity.Order, error)
	ListAll(ctx context.Context, session *entity.Session) ([]*entity.Order, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Order, error)
	SetStatus(ctx context.Context, session *entity.Session, orderID int64, status entity.OrderStatus) error
	DeleteAll(ctx context.Context, session *entity.Session) (int64, error)
	DeleteByOwner(ctx context.Context, session *entity.Session, ownerID int64) (int64, error)

	// LineItems decodes the snapshot. A malformed snapshot is logged and read as empty.
	LineItems(ctx context.Context, order *entity.Order) []entity.LineItem
}
