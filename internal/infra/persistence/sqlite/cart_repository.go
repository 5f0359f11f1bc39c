package sqlite

import (
	"context"

	"autoparts/internal/domain/entity"
	"autoparts/internal/domain/repository"
	"autoparts/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// addQuantity increments the stored line by the incoming quantity on conflict.
var addQuantity = clause.OnConflict{
	Columns:   []clause.Column{{Name: "owner_key"}, {Name: "product_id"}},
	DoUpdates: clause.Assignments(map[string]any{"quantity": gorm.Expr("cart_items.quantity + excluded.quantity")}),
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// AddItem is one INSERT ... ON CONFLICT DO UPDATE, so concurrent increments cannot be lost.
func (repo *cartRepository) AddItem(ctx context.Context, owner entity.CartOwner, productID int64, quantity int) error {
	line := &model.CartItemModel{
		OwnerKey:  owner.String(),
		ProductID: productID,
		Quantity:  quantity,
	}

	if err := repo.db.WithContext(ctx).Clauses(addQuantity).Create(line).Error; err != nil {
		return translateError(err, nil, nil, "failed to add cart item")
	}

	return nil
}

func (repo *cartRepository) SetQuantity(ctx context.Context, owner entity.CartOwner, productID int64, quantity int) (int64, error) {
	result := repo.db.WithContext(ctx).Model(&model.CartItemModel{}).
		Where("owner_key = ? AND product_id = ?", owner.String(), productID).
		Update("quantity", quantity)
	if result.Error != nil {
		return 0, translateError(result.Error, nil, nil, "failed to set cart quantity")
	}

	return result.RowsAffected, nil
}

func (repo *cartRepository) Remove(ctx context.Context, owner entity.CartOwner, productID int64) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("owner_key = ? AND product_id = ?", owner.String(), productID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return 0, translateError(result.Error, nil, nil, "failed to remove cart item")
	}

	return result.RowsAffected, nil
}

// List joins the catalog; lines pointing at deleted products drop out here.
func (repo *cartRepository) List(ctx context.Context, owner entity.CartOwner) ([]*entity.CartLine, error) {
	var rows []*model.CartLineRow
	err := repo.db.WithContext(ctx).
		Table("cart_items").
		Select("cart_items.owner_key, cart_items.quantity AS line_quantity, products.*").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.owner_key = ?", owner.String()).
		Order("cart_items.rowid").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err, nil, nil, "failed to list cart")
	}

	lines := make([]*entity.CartLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, &entity.CartLine{
			Owner:    entity.CartOwner(row.OwnerKey),
			Product:  *toProductDomain(&row.ProductModel),
			Quantity: row.LineQuantity,
		})
	}

	return lines, nil
}

func (repo *cartRepository) Count(ctx context.Context, owner entity.CartOwner) (int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Table("cart_items").
		Select("COALESCE(SUM(cart_items.quantity), 0)").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.owner_key = ?", owner.String()).
		Scan(&total).Error
	if err != nil {
		return 0, translateError(err, nil, nil, "failed to count cart")
	}

	return total, nil
}

func (repo *cartRepository) Clear(ctx context.Context, owner entity.CartOwner) (int64, error) {
	result := repo.db.WithContext(ctx).Where("owner_key = ?", owner.String()).Delete(&model.CartItemModel{})
	if result.Error != nil {
		return 0, translateError(result.Error, nil, nil, "failed to clear cart")
	}

	return result.RowsAffected, nil
}

// Merge adds every line of from onto to and then empties from. Callers run it inside a transaction.
func (repo *cartRepository) Merge(ctx context.Context, from, to entity.CartOwner) error {
	if from == to {
		return nil
	}

	var lines []*model.CartItemModel
	if err := repo.db.WithContext(ctx).Where("owner_key = ?", from.String()).Find(&lines).Error; err != nil {
		return translateError(err, nil, nil, "failed to read cart for merge")
	}
	if len(lines) == 0 {
		return nil
	}

	for _, line := range lines {
		line.OwnerKey = to.String()
	}
	if err := repo.db.WithContext(ctx).Clauses(addQuantity).Create(&lines).Error; err != nil {
		return translateError(err, nil, nil, "failed to merge cart")
	}

	if _, err := repo.Clear(ctx, from); err != nil {
		return err
	}

	return nil
}
