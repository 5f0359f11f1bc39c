package impl

import (
	"context"
	"testing"

	"autoparts/internal/domain/entity"
	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/errors"
	"autoparts/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var pickupCash = usecase.CheckoutInput{
	DeliveryType:  entity.DeliveryPickup,
	PaymentType:   entity.PaymentCash,
	DeliveryPhone: "+79998765432",
}

func TestOrderService_CheckoutEndToEnd(t *testing.T) {
	ctx := context.Background()
	s := newTestStack(t, nil)
	productA := s.createProduct(t, "E2E-A", 100)
	productB := s.createProduct(t, "E2E-B", 50)

	customer := s.userSession(t)
	owner := customer.CartOwner()
	require.NoError(t, s.cart.AddItem(ctx, owner, productA.ID, 2))
	require.NoError(t, s.cart.AddItem(ctx, owner, productB.ID, 1))

	input := pickupCash
	order, err := s.orders.Checkout(ctx, customer, &input)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(250).Equal(order.TotalAmount), order.TotalAmount.String())
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "Самовывоз", order.DeliveryAddress)

	items := s.orders.LineItems(ctx, order)
	require.Len(t, items, 2)
	assert.True(t, decimal.NewFromInt(250).Equal(entity.SumLineItems(items)))

	cart, err := s.cart.List(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)

	admin := s.adminSession(t)
	all, err := s.orders.ListAll(ctx, admin)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, order.ID, all[0].ID)
	assert.Equal(t, "Иван Иванов", all[0].UserName)
	assert.True(t, decimal.NewFromInt(250).Equal(all[0].TotalAmount))

	mine, err := s.orders.ListByOwner(ctx, customer.User.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	theirs, err := s.orders.ListByOwner(ctx, admin.User.ID)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestOrderService_CheckoutValidation(t *testing.T) {
	ctx := context.Background()
	s := newTestStack(t, nil)
	customer := s.userSession(t)

	_, err := s.orders.Checkout(ctx, customer, &pickupCash)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)

	_, err = s.orders.Checkout(ctx, nil, &pickupCash)
	assert.ErrorIs(t, err, domainerrors.ErrNoSession)

	tests := []struct {
		name  string
		input usecase.CheckoutInput
	}{
		{name: "delivery without address", input: usecase.CheckoutInput{DeliveryType: entity.DeliveryDelivery, PaymentType: entity.PaymentCard, DeliveryPhone: "+7"}},
		{name: "missing phone", input: usecase.CheckoutInput{DeliveryType: entity.DeliveryPickup, PaymentType: entity.PaymentCash}},
		{name: "unknown payment", input: usecase.CheckoutInput{DeliveryType: entity.DeliveryPickup, PaymentType: "barter", DeliveryPhone: "+7"}},
		{name: "unknown delivery", input: usecase.CheckoutInput{DeliveryType: "drone", PaymentType: entity.PaymentCash, DeliveryPhone: "+7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.orders.Checkout(ctx, customer, &tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestOrderService_CreateChecksTotal(t *testing.T) {
	ctx := context.Background()
	s := newTestStack(t, nil)

	items := []entity.LineItem{
		{Name: "A", Quantity: 3, UnitPrice: decimal.RequireFromString("0.10"), LineTotal: decimal.RequireFromString("0.30")},
		{Name: "B", Quantity: 1, UnitPrice: decimal.RequireFromString("0.20"), LineTotal: decimal.RequireFromString("0.20")},
	}

	_, err := s.orders.Create(ctx, &usecase.CreateOrderInput{OwnerID: 2, TotalAmount: decimal.RequireFromString("0.49"), Items: items, CheckoutInput: pickupCash})
	assert.ErrorIs(t, err, domainerrors.ErrOrderTotalMismatch)

	_, err = s.orders.Create(ctx, &usecase.CreateOrderInput{OwnerID: 2, TotalAmount: decimal.Zero, CheckoutInput: pickupCash})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)

	order, err := s.orders.Create(ctx, &usecase.CreateOrderInput{OwnerID: 2, TotalAmount: decimal.RequireFromString("0.5"), Items: items, CheckoutInput: pickupCash})
	require.NoError(t, err)

	stored, err := s.orders.GetOrder(ctx, s.userSession(t), order.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.5", stored.TotalAmount.String())
}

func TestOrderService_FailedInsertKeepsCart(t *testing.T) {
	ctx := context.Background()
	s := newTestStack(t, nil)
	product := s.createProduct(t, "ATOM-1", 100)
	customer := s.userSession(t)
	owner := customer.CartOwner()
	require.NoError(t, s.cart.AddItem(ctx, owner, product.ID, 2))

	errDiskFull := errors.New("disk I/O error")
	err := s.db.Callback().Create().Before("gorm:create").Register("test:fail_orders", func(tx *gorm.DB) {
		if tx.Statement.Table == "orders" {
			_ = tx.AddError(errDiskFull)
		}
	})
	require.NoError(t, err)

	_, err = s.orders.Checkout(ctx, customer, &pickupCash)
	require.Error(t, err)
	assert.ErrorIs(t, err, errDiskFull)

	cart, err := s.cart.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)

	orders, err := s.orders.ListByOwner(ctx, customer.User.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_SetStatus(t *testing.T) {
	ctx := context.Background()
	s := newTestStack(t, nil)
	items := []entity.LineItem{{Name: "A", Quantity: 1, UnitPrice: decimal.NewFromInt(5), LineTotal: decimal.NewFromInt(5)}}

	first, err := s.orders.Create(ctx, &usecase.CreateOrderInput{OwnerID: 2, TotalAmount: decimal.NewFromInt(5), Items: items, CheckoutInput: pickupCash})
	require.NoError(t, err)
	second, err := s.orders.Create(ctx, &usecase.CreateOrderInput{OwnerID: 2, TotalAmount: decimal.NewFromInt(5), Items: items, CheckoutInput: pickupCash})
	require.NoError(t, err)

	admin := s.adminSession(t)
	customer := s.userSession(t)

	assert.ErrorIs(t, s.orders.SetStatus(ctx, customer, first.ID, entity.OrderStatusShipped), domainerrors.ErrForbidden)
	assert.ErrorIs(t, s.orders.SetStatus(ctx, admin, first.ID, "lost"), domainerrors.ErrValidationFailed)
	assert.ErrorIs(t, s.orders.SetStatus(ctx, admin, second.ID+100, entity.OrderStatusShipped), domainerrors.ErrOrderNotFound)

	require.NoError(t, s.orders.SetStatus(ctx, admin, first.ID, entity.OrderStatusShipped))
	// Transitions are unrestricted.
	require.NoError(t, s.orders.SetStatus(ctx, admin, second.ID, entity.OrderStatusDelivered))
	require.NoError(t, s.orders.SetStatus(ctx, admin, second.ID, entity.OrderStatusPending))

	all, err := s.orders.ListAll(ctx, admin)
	require.NoError(t, err)
	statuses := map[int64]entity.OrderStatus{}
	for _, o := range all {
		statuses[o.ID] = o.Status
	}
	assert.Equal(t, map[int64]entity.OrderStatus{first.ID: entity.OrderStatusShipped, second.ID: entity.OrderStatusPending}, statuses)
}

func TestOrderService_AccessAndDeletion(t *testing.T) {
	ctx := context.Background()
	s := newTestStack(t, nil)
	items := []entity.LineItem{{Name: "A", Quantity: 1, UnitPrice: decimal.NewFromInt(5), LineTotal: decimal.NewFromInt(5)}}

	for _, owner := range []int64{1, 2, 2} {
		_, err := s.orders.Create(ctx, &usecase.CreateOrderInput{OwnerID: owner, TotalAmount: decimal.NewFromInt(5), Items: items, CheckoutInput: pickupCash})
		require.NoError(t, err)
	}

	admin := s.adminSession(t)
	customer := s.userSession(t)

	_, err := s.orders.ListAll(ctx, customer)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	adminOrders, err := s.orders.ListByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, adminOrders, 1)
	_, err = s.orders.GetOrder(ctx, customer, adminOrders[0].ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = s.orders.DeleteByOwner(ctx, customer, 1)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	rows, err := s.orders.DeleteByOwner(ctx, customer, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rows)

	_, err = s.orders.DeleteAll(ctx, customer)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	rows, err = s.orders.DeleteAll(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}

func TestOrderService_LineItemsToleratesMalformedSnapshot(t *testing.T) {
	ctx := context.Background()
	s := newTestStack(t, nil)

	items := s.orders.LineItems(ctx, &entity.Order{ID: 7, ItemsJSON: []byte(`[{"name":`)})
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
