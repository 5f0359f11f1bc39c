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

// pickupAddress is recorded on pickup orders that name no address.
const pickupAddress = "Самовывоз"

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return logs.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a priced order. The cart is cleared only after the order row is written,
// and both happen in one transaction.
func (srv *orderService) Create(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyCart.WrapMessage("order has no items")
	}
	if sum := entity.SumLineItems(input.Items); !sum.Equal(input.TotalAmount) {
		return nil, domainerrors.ErrOrderTotalMismatch.
			WithDetails("total " + input.TotalAmount.String() + ", items " + sum.String()).
			WrapMessage("failed to create order")
	}

	order, err := buildOrder(input.OwnerID, input.Items, &input.CheckoutInput)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return placeOrder(ctx, repoFactory, order)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to place order", slog.Int64("ownerID", input.OwnerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Order placed", slog.Int64("orderID", order.ID), slog.String("total", order.TotalAmount.String()))

	return order, nil
}

// Checkout prices the session user's cart and places it as one order.
func (srv *orderService) Checkout(ctx context.Context, session *entity.Session, input *usecase.CheckoutInput) (*entity.Order, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	owner := session.CartOwner()
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		lines, err := repoFactory.NewCartRepository().List(ctx, owner)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domainerrors.ErrEmptyCart
		}

		items := make([]entity.LineItem, 0, len(lines))
		for _, line := range lines {
			items = append(items, line.LineItem())
		}

		order, err = buildOrder(session.User.ID, items, input)
		if err != nil {
			return err
		}

		return placeOrder(ctx, repoFactory, order)
	})
	if err != nil {
		srv.log(ctx).Warn("Checkout failed", slog.String("owner", owner.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check out")
	}

	srv.log(ctx).Info("Checkout completed",
		slog.Int64("orderID", order.ID),
		slog.String("total", order.TotalAmount.String()),
		slog.String("delivery", string(order.DeliveryType)),
	)

	return order, nil
}

func buildOrder(ownerID int64, items []entity.LineItem, input *usecase.CheckoutInput) (*entity.Order, error) {
	blob, err := entity.EncodeLineItems(items)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError.WithDetails(err.Error()), "failed to snapshot items")
	}

	address := strings.TrimSpace(input.DeliveryAddress)
	if input.DeliveryType == entity.DeliveryPickup && address == "" {
		address = pickupAddress
	}

	return &entity.Order{
		UserID:          ownerID,
		TotalAmount:     entity.SumLineItems(items),
		ItemsJSON:       blob,
		DeliveryType:    input.DeliveryType,
		PaymentType:     input.PaymentType,
		DeliveryAddress: address,
		DeliveryPhone:   strings.TrimSpace(input.DeliveryPhone),
		Comment:         strings.TrimSpace(input.Comment),
	}, nil
}

// placeOrder writes the order, then clears the owner's cart. A failed insert never reaches the clear.
func placeOrder(ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.Order) error {
	if err := repoFactory.NewOrderRepository().Create(ctx, order); err != nil {
		return err
	}

	_, err := repoFactory.NewCartRepository().Clear(ctx, entity.UserCartOwner(order.UserID))

	return err
}

// GetOrder returns one order to its owner or to an administrator.
func (srv *orderService) GetOrder(ctx context.Context, session *entity.Session, id int64) (*entity.Order, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}
	if !session.IsAdmin() && order.UserID != session.User.ID {
		return nil, domainerrors.ErrForbidden.WrapMessage("order belongs to another user")
	}

	return order, nil
}

func (srv *orderService) ListAll(ctx context.Context, session *entity.Session) ([]*entity.Order, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *orderService) ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by owner")
	}

	return orders, nil
}

// SetStatus allows any transition between the five statuses.
func (srv *orderService) SetStatus(ctx context.Context, session *entity.Session, orderID int64, status entity.OrderStatus) error {
	if err := requireAdmin(session); err != nil {
		return err
	}
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown order status " + string(status))
	}

	rows, err := srv.orderRepo.SetStatus(ctx, orderID, status)
	if err != nil {
		return errors.Wrap(err, "failed to set order status")
	}
	if rows == 0 {
		return domainerrors.ErrOrderNotFound.WrapMessage("failed to set order status")
	}

	srv.log(ctx).Info("Order status changed", slog.Int64("orderID", orderID), slog.String("status", string(status)))

	return nil
}

func (srv *orderService) DeleteAll(ctx context.Context, session *entity.Session) (int64, error) {
	if err := requireAdmin(session); err != nil {
		return 0, err
	}

	rows, err := srv.orderRepo.DeleteAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete orders")
	}

	srv.log(ctx).Warn("All orders deleted", slog.Int64("rows", rows))

	return rows, nil
}

// DeleteByOwner lets a user drop their own history; administrators may drop anyone's.
func (srv *orderService) DeleteByOwner(ctx context.Context, session *entity.Session, ownerID int64) (int64, error) {
	if err := requireSession(session); err != nil {
		return 0, err
	}
	if !session.IsAdmin() && session.User.ID != ownerID {
		return 0, domainerrors.ErrForbidden.WrapMessage("orders belong to another user")
	}

	rows, err := srv.orderRepo.DeleteByOwner(ctx, ownerID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete orders by owner")
	}

	return rows, nil
}

func (srv *orderService) LineItems(ctx context.Context, order *entity.Order) []entity.LineItem {
	items, err := order.Items()
	if err != nil {
		srv.log(ctx).Warn("Unreadable order items", slog.Int64("orderID", order.ID), slog.Any("error", err))

		return []entity.LineItem{}
	}

	return items
}
