package sqlite

import (
	"context"
	"time"

	"autoparts/internal/domain/entity"
	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/domain/repository"
	"autoparts/internal/infra/persistence/model"

	"gorm.io/gorm"
)

const orderWithOwnerColumns = "orders.*, " +
	"COALESCE(users.name, '') AS user_name, " +
	"COALESCE(users.email, '') AS user_email, " +
	"COALESCE(users.phone, '') AS user_phone"

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create stores the order as pending and stamps its creation time.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	orderM.ID = 0
	orderM.Status = string(entity.OrderStatusPending)
	orderM.CreatedAt = model.NewTimestamp(time.Now())
	if len(orderM.ItemsJSON) == 0 {
		orderM.ItemsJSON = "[]"
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return translateError(err, nil, nil, "failed to create order")
	}

	order.ID = orderM.ID
	order.Status = entity.OrderStatusPending
	order.CreatedAt = orderM.CreatedAt.Time

	return nil
}

func (repo *orderRepository) withOwner(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Table("orders").
		Select(orderWithOwnerColumns).
		Joins("LEFT JOIN users ON users.id = orders.user_id")
}

func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var rows []*model.OrderWithOwner
	if err := repo.withOwner(ctx).Where("orders.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, translateError(err, nil, nil, "failed to find order")
	}
	if len(rows) == 0 {
		return nil, domainerrors.ErrOrderNotFound.WrapMessage("failed to find order")
	}

	return toOrderDomain(rows[0]), nil
}

// ListAll returns every order newest first.
func (repo *orderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	var rows []*model.OrderWithOwner
	if err := repo.withOwner(ctx).Order("orders.id DESC").Scan(&rows).Error; err != nil {
		return nil, translateError(err, nil, nil, "failed to list orders")
	}

	return toOrdersDomain(rows), nil
}

func (repo *orderRepository) ListByOwner(ctx context.Context, userID int64) ([]*entity.Order, error) {
	var rows []*model.OrderWithOwner
	err := repo.withOwner(ctx).
		Where("orders.user_id = ?", userID).
		Order("orders.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err, nil, nil, "failed to list orders by owner")
	}

	return toOrdersDomain(rows), nil
}

func (repo *orderRepository) SetStatus(ctx context.Context, id int64, status entity.OrderStatus) (int64, error) {
	result := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Where("id = ?", id).Update("status", string(status))
	if result.Error != nil {
		return 0, translateError(result.Error, nil, nil, "failed to set order status")
	}

	return result.RowsAffected, nil
}

func (repo *orderRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.OrderModel{})
	if result.Error != nil {
		return 0, translateError(result.Error, nil, nil, "failed to delete orders")
	}

	return result.RowsAffected, nil
}

func (repo *orderRepository) DeleteByOwner(ctx context.Context, userID int64) (int64, error) {
	result := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.OrderModel{})
	if result.Error != nil {
		return 0, translateError(result.Error, nil, nil, "failed to delete orders by owner")
	}

	return result.RowsAffected, nil
}

func (repo *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Count(&count).Error; err != nil {
		return 0, translateError(err, nil, nil, "failed to count orders")
	}

	return count, nil
}

func toOrdersDomain(rows []*model.OrderWithOwner) []*entity.Order {
	orders := make([]*entity.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, toOrderDomain(row))
	}

	return orders
}

func toOrderDomain(row *model.OrderWithOwner) *entity.Order {
	if row == nil {
		return nil
	}

	return &entity.Order{
		ID:              row.ID,
		UserID:          row.UserID,
		TotalAmount:     row.TotalAmount,
		Status:          entity.OrderStatus(row.Status),
		CreatedAt:       row.CreatedAt.Time,
		ItemsJSON:       []byte(row.ItemsJSON),
		DeliveryType:    entity.DeliveryType(row.DeliveryType),
		PaymentType:     entity.PaymentType(row.PaymentType),
		DeliveryAddress: row.DeliveryAddress,
		DeliveryPhone:   row.DeliveryPhone,
		Comment:         row.Comment,
		UserName:        row.UserName,
		UserEmail:       row.UserEmail,
		UserPhone:       row.UserPhone,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		TotalAmount:     data.TotalAmount,
		Status:          string(data.Status),
		ItemsJSON:       string(data.ItemsJSON),
		DeliveryType:    string(data.DeliveryType),
		PaymentType:     string(data.PaymentType),
		DeliveryAddress: data.DeliveryAddress,
		DeliveryPhone:   data.DeliveryPhone,
		Comment:         data.Comment,
	}
}
