package models

import "github.com/shopspring/decimal"

// Category groups products. It keeps no back-reference to its products.
type Category struct {
	CategoryID    int    `gorm:"primaryKey;column:category_id"`
	CategoryTitle string `gorm:"type:varchar(255)"`
	ImageURL      string `gorm:"type:varchar(255)"`
}

// Product represents a product in the catalogue.
type Product struct {
	ProductID    int             `gorm:"primaryKey;column:product_id"`
	ProductTitle string          `gorm:"type:varchar(255)"`
	ImageURL     string          `gorm:"type:varchar(255)"`
	SKU          string          `gorm:"column:sku;type:varchar(255)"`
	PriceUnit    decimal.Decimal `gorm:"type:decimal(10,2)"` // not validated, see DESIGN.md
	Quantity     int
	CategoryID   *int      `gorm:"column:category_id"`
	Category     *Category `gorm:"foreignKey:CategoryID;references:CategoryID"`
}
