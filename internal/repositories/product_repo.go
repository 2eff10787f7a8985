package repositories

import (
	"storefront/internal/models"
)

// ProductRepository defines the interface for product data access.
// FindByID returns (nil, nil) when no product has the given id.
type ProductRepository interface {
	FindAll() ([]models.Product, error)
	FindByID(id int) (*models.Product, error)
	Save(product *models.Product) (*models.Product, error)
	DeleteByID(id int) error
	Delete(product *models.Product) error
}

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	FindAll() ([]models.Category, error)
	FindByID(id int) (*models.Category, error)
	Save(category *models.Category) (*models.Category, error)
	DeleteByID(id int) error
	Delete(category *models.Category) error
}
