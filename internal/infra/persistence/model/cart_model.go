package model

// CartItemModel mirrors the 'cart_items' table, one row per (owner, product).
type CartItemModel struct {
	OwnerKey  string `gorm:"primaryKey;type:text"`
	ProductID int64  `gorm:"primaryKey;autoIncrement:false"`
	Quantity  int    `gorm:"not null;default:1;check:chk_cart_items_quantity,quantity > 0"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

// CartLineRow is a cart row joined with its product.
type CartLineRow struct {
	OwnerKey     string
	LineQuantity int
	ProductModel `gorm:"embedded"`
}

// LegacyCartTable is the per-user cart table of stores created before schema version 9.
const LegacyCartTable = "cart"
