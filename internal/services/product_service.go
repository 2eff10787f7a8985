package services

import (
	"storefront/internal/dto"
	"storefront/internal/mapping"
	"storefront/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher
}

// NewProductService creates a new ProductService. events may be nil.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
	}
}

// FindAll retrieves all products.
func (s *ProductService) FindAll() ([]dto.ProductDto, error) {
	products, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	return mapping.ProductsToDtos(products), nil
}

// FindByID retrieves a single product by its ID.
func (s *ProductService) FindByID(id int) (*dto.ProductDto, error) {
	product, err := findOrFail(DomainProduct, id, s.repo.FindByID)
	if err != nil {
		return nil, err
	}
	return mapping.ProductToDto(product), nil
}

// Save creates or replaces a product.
func (s *ProductService) Save(d *dto.ProductDto) (*dto.ProductDto, error) {
	return s.save(d, "product.saved")
}

// Update replaces the product at the ID carried by d.
func (s *ProductService) Update(d *dto.ProductDto) (*dto.ProductDto, error) {
	return s.save(d, "product.updated")
}

// UpdateByID replaces the product stored under id, which must exist.
func (s *ProductService) UpdateByID(id int, d *dto.ProductDto) (*dto.ProductDto, error) {
	if d == nil {
		return nil, ErrNilInput
	}
	if _, err := findOrFail(DomainProduct, id, s.repo.FindByID); err != nil {
		return nil, err
	}
	entity := mapping.ProductToEntity(d)
	entity.ProductID = id
	saved, err := s.repo.Save(entity)
	if err != nil {
		return nil, err
	}
	publish(s.events, "product.updated", map[string]any{"productId": saved.ProductID})
	return mapping.ProductToDto(saved), nil
}

func (s *ProductService) save(d *dto.ProductDto, eventType string) (*dto.ProductDto, error) {
	if d == nil {
		return nil, ErrNilInput
	}
	saved, err := s.repo.Save(mapping.ProductToEntity(d))
	if err != nil {
		return nil, err
	}
	publish(s.events, eventType, map[string]any{"productId": saved.ProductID})
	return mapping.ProductToDto(saved), nil
}

// DeleteByID deletes a product. The product is fetched first; deleting a
// missing product fails with NotFound and never reaches the store's delete.
func (s *ProductService) DeleteByID(id int) error {
	product, err := findOrFail(DomainProduct, id, s.repo.FindByID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(product); err != nil {
		return err
	}
	publish(s.events, "product.deleted", map[string]any{"productId": id})
	return nil
}
