package dto

import "github.com/shopspring/decimal"

// CategoryDto is the transfer form of a category.
type CategoryDto struct {
	CategoryID    int    `json:"categoryId"`
	CategoryTitle string `json:"categoryTitle" validate:"omitempty,max=255"`
	ImageURL      string `json:"imageUrl" validate:"omitempty,max=255"`
}

// ProductDto is the transfer form of a product.
type ProductDto struct {
	ProductID    int             `json:"productId"`
	ProductTitle string          `json:"productTitle" validate:"omitempty,max=255"`
	ImageURL     string          `json:"imageUrl" validate:"omitempty,max=255"`
	SKU          string          `json:"sku" validate:"omitempty,max=255"`
	PriceUnit    decimal.Decimal `json:"priceUnit"`
	Quantity     int             `json:"quantity"`
	Category     *CategoryDto    `json:"category,omitempty"`
}
