package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// FindAll retrieves all products with their categories.
func (r *GORMProductRepository) FindAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Preload("Category").Order("product_id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// FindByID retrieves a single product by its ID.
func (r *GORMProductRepository) FindByID(id int) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").First(&product, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// Save creates the product when it has no ID yet and replaces it otherwise.
// A new category carried by the product is created along with it.
func (r *GORMProductRepository) Save(product *models.Product) (*models.Product, error) {
	if err := r.db.Save(product).Error; err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	saved, err := r.FindByID(product.ProductID)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, fmt.Errorf("product with ID %d vanished after save", product.ProductID)
	}
	return saved, nil
}

// DeleteByID deletes a product by its ID. Deleting a missing product is a no-op.
func (r *GORMProductRepository) DeleteByID(id int) error {
	if err := r.db.Delete(&models.Product{}, "product_id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// Delete deletes the given product.
func (r *GORMProductRepository) Delete(product *models.Product) error {
	return r.DeleteByID(product.ProductID)
}

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

func (r *GORMCategoryRepository) FindAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("category_id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

func (r *GORMCategoryRepository) FindByID(id int) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by ID %d: %w", id, err)
	}
	return &category, nil
}

func (r *GORMCategoryRepository) Save(category *models.Category) (*models.Category, error) {
	if err := r.db.Save(category).Error; err != nil {
		return nil, fmt.Errorf("failed to save category: %w", err)
	}
	saved := *category
	return &saved, nil
}

func (r *GORMCategoryRepository) DeleteByID(id int) error {
	if err := r.db.Delete(&models.Category{}, "category_id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func (r *GORMCategoryRepository) Delete(category *models.Category) error {
	return r.DeleteByID(category.CategoryID)
}
