package model

import (
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	UserID      int64           `gorm:"not null;index"`
	TotalAmount decimal.Decimal `gorm:"type:text;not null"`
	Status      string          `gorm:"type:text;default:'pending'"`
	CreatedAt   Timestamp       `gorm:"type:datetime;autoCreateTime:false"`

	// Raw text so a malformed blob cannot fail the row scan.
	ItemsJSON string `gorm:"column:items_json;type:text;not null"`

	// Checkout details, added in schema version 6.
	DeliveryType    string `gorm:"type:text;not null;default:'pickup'"`
	PaymentType     string `gorm:"type:text;not null;default:'cash'"`
	DeliveryAddress string `gorm:"type:text"`
	DeliveryPhone   string `gorm:"type:text"`
	Comment         string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// CheckoutOrderColumns are the order fields added in schema version 6.
var CheckoutOrderColumns = []string{"DeliveryType", "PaymentType", "DeliveryAddress", "DeliveryPhone", "Comment"}

// OrderWithOwner is an order row joined with its owner's display fields.
type OrderWithOwner struct {
	OrderModel `gorm:"embedded"`

	UserName  string
	UserEmail string
	UserPhone string
}
