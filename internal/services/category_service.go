package services

import (
	"storefront/internal/dto"
	"storefront/internal/mapping"
	"storefront/internal/repositories"
)

// CategoryService handles business logic related to product categories.
type CategoryService struct {
	repo   repositories.CategoryRepository
	events EventPublisher
}

func NewCategoryService(repo repositories.CategoryRepository, events EventPublisher) *CategoryService {
	return &CategoryService{repo: repo, events: events}
}

func (s *CategoryService) FindAll() ([]dto.CategoryDto, error) {
	categories, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	return mapping.CategoriesToDtos(categories), nil
}

func (s *CategoryService) FindByID(id int) (*dto.CategoryDto, error) {
	category, err := findOrFail(DomainCategory, id, s.repo.FindByID)
	if err != nil {
		return nil, err
	}
	return mapping.CategoryToDto(category), nil
}

func (s *CategoryService) Save(d *dto.CategoryDto) (*dto.CategoryDto, error) {
	return s.save(d, "category.saved")
}

func (s *CategoryService) Update(d *dto.CategoryDto) (*dto.CategoryDto, error) {
	return s.save(d, "category.updated")
}

// UpdateByID replaces the category stored under id, which must exist.
func (s *CategoryService) UpdateByID(id int, d *dto.CategoryDto) (*dto.CategoryDto, error) {
	if d == nil {
		return nil, ErrNilInput
	}
	if _, err := findOrFail(DomainCategory, id, s.repo.FindByID); err != nil {
		return nil, err
	}
	entity := mapping.CategoryToEntity(d)
	entity.CategoryID = id
	saved, err := s.repo.Save(entity)
	if err != nil {
		return nil, err
	}
	publish(s.events, "category.updated", map[string]any{"categoryId": saved.CategoryID})
	return mapping.CategoryToDto(saved), nil
}

func (s *CategoryService) save(d *dto.CategoryDto, eventType string) (*dto.CategoryDto, error) {
	if d == nil {
		return nil, ErrNilInput
	}
	saved, err := s.repo.Save(mapping.CategoryToEntity(d))
	if err != nil {
		return nil, err
	}
	publish(s.events, eventType, map[string]any{"categoryId": saved.CategoryID})
	return mapping.CategoryToDto(saved), nil
}

// DeleteByID deletes a category after checking that it exists.
func (s *CategoryService) DeleteByID(id int) error {
	category, err := findOrFail(DomainCategory, id, s.repo.FindByID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(category); err != nil {
		return err
	}
	publish(s.events, "category.deleted", map[string]any{"categoryId": id})
	return nil
}
