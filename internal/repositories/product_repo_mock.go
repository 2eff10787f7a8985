package repositories

import (
	"slices"
	"sync"

	"storefront/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[int]models.Product
	nextID   int
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[int]models.Product),
		nextID:   1,
	}
}

// FindAll returns all products ordered by ID.
func (r *MockProductRepository) FindAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, copyProduct(p))
	}
	slices.SortFunc(productList, func(a, b models.Product) int { return a.ProductID - b.ProductID })
	return productList, nil
}

// FindByID returns a product by its ID, or nil when there is none.
func (r *MockProductRepository) FindByID(id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	p := copyProduct(product)
	return &p, nil
}

// Save adds or replaces a product, assigning an ID when it has none.
func (r *MockProductRepository) Save(product *models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyProduct(*product)
	if stored.ProductID == 0 {
		stored.ProductID = r.nextID
	}
	if stored.ProductID >= r.nextID {
		r.nextID = stored.ProductID + 1
	}
	r.products[stored.ProductID] = stored
	out := copyProduct(stored)
	return &out, nil
}

// DeleteByID removes a product by its ID.
func (r *MockProductRepository) DeleteByID(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, id)
	return nil
}

// Delete removes the given product.
func (r *MockProductRepository) Delete(product *models.Product) error {
	return r.DeleteByID(product.ProductID)
}

func copyProduct(p models.Product) models.Product {
	if p.Category != nil {
		c := *p.Category
		p.Category = &c
	}
	if p.CategoryID != nil {
		id := *p.CategoryID
		p.CategoryID = &id
	}
	return p
}

// MockCategoryRepository is an in-memory implementation of CategoryRepository.
type MockCategoryRepository struct {
	categories map[int]models.Category
	nextID     int
	mu         sync.RWMutex
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: make(map[int]models.Category),
		nextID:     1,
	}
}

func (r *MockCategoryRepository) FindAll() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		list = append(list, c)
	}
	slices.SortFunc(list, func(a, b models.Category) int { return a.CategoryID - b.CategoryID })
	return list, nil
}

func (r *MockCategoryRepository) FindByID(id int) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *MockCategoryRepository) Save(category *models.Category) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *category
	if stored.CategoryID == 0 {
		stored.CategoryID = r.nextID
	}
	if stored.CategoryID >= r.nextID {
		r.nextID = stored.CategoryID + 1
	}
	r.categories[stored.CategoryID] = stored
	return &stored, nil
}

func (r *MockCategoryRepository) DeleteByID(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.categories, id)
	return nil
}

func (r *MockCategoryRepository) Delete(category *models.Category) error {
	return r.DeleteByID(category.CategoryID)
}
