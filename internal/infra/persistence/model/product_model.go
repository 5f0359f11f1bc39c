package model

import (
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. Column names follow the layout of stores created by the mobile app.
type ProductModel struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	Name           string          `gorm:"column:productsName;type:text;not null"`
	Article        string          `gorm:"type:text;unique;not null"`
	Brand          string          `gorm:"type:text;not null"`
	Price          decimal.Decimal `gorm:"type:text;not null"`
	Description    string          `gorm:"type:text"`
	Category       string          `gorm:"type:text"`
	ImageURL       string          `gorm:"column:imageUrl;type:text"`
	VINNumbers     string          `gorm:"column:vinNumbers;type:text"`
	CompatibleCars string          `gorm:"column:compatibleCars;type:text"`

	// Inventory columns, added in schema version 9.
	Stock        int       `gorm:"not null;default:0"`
	Warranty     string    `gorm:"type:text"`
	Country      string    `gorm:"type:text"`
	Weight       float64   `gorm:"not null;default:0"`
	Dimensions   string    `gorm:"type:text"`
	Rating       float64   `gorm:"not null;default:0"`
	ReviewsCount int       `gorm:"not null;default:0"`
	CreatedAt    Timestamp `gorm:"type:datetime;autoCreateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// LegacyProductColumns are the product fields present since the first schema version.
var LegacyProductColumns = []string{
	"Name", "Article", "Brand", "Price", "Description", "Category", "ImageURL", "VINNumbers", "CompatibleCars",
}

// InventoryProductColumns are the product fields added in schema version 9.
var InventoryProductColumns = []string{
	"Stock", "Warranty", "Country", "Weight", "Dimensions", "Rating", "ReviewsCount", "CreatedAt",
}

// EditableProductColumns are rewritten by a full product update. CreatedAt is kept.
var EditableProductColumns = []string{
	"Name", "Article", "Brand", "Price", "Description", "Category", "ImageURL", "VINNumbers", "CompatibleCars",
	"Stock", "Warranty", "Country", "Weight", "Dimensions", "Rating", "ReviewsCount",
}
