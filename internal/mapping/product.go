package mapping

import (
	"storefront/internal/dto"
	"storefront/internal/models"
)

func CategoryToDto(c *models.Category) *dto.CategoryDto {
	if c == nil {
		return nil
	}
	return &dto.CategoryDto{
		CategoryID:    c.CategoryID,
		CategoryTitle: c.CategoryTitle,
		ImageURL:      c.ImageURL,
	}
}

func CategoryToEntity(d *dto.CategoryDto) *models.Category {
	if d == nil {
		return nil
	}
	return &models.Category{
		CategoryID:    d.CategoryID,
		CategoryTitle: d.CategoryTitle,
		ImageURL:      d.ImageURL,
	}
}

func CategoriesToDtos(categories []models.Category) []dto.CategoryDto {
	out := make([]dto.CategoryDto, 0, len(categories))
	for i := range categories {
		out = append(out, *CategoryToDto(&categories[i]))
	}
	return out
}

// ProductToDto maps a product and, when present, its category.
func ProductToDto(p *models.Product) *dto.ProductDto {
	if p == nil {
		return nil
	}
	return &dto.ProductDto{
		ProductID:    p.ProductID,
		ProductTitle: p.ProductTitle,
		ImageURL:     p.ImageURL,
		SKU:          p.SKU,
		PriceUnit:    p.PriceUnit,
		Quantity:     p.Quantity,
		Category:     CategoryToDto(p.Category),
	}
}

// ProductToEntity is the inverse of ProductToDto. The category foreign key is
// taken from the nested category; a product without one stays uncategorised.
func ProductToEntity(d *dto.ProductDto) *models.Product {
	if d == nil {
		return nil
	}
	p := &models.Product{
		ProductID:    d.ProductID,
		ProductTitle: d.ProductTitle,
		ImageURL:     d.ImageURL,
		SKU:          d.SKU,
		PriceUnit:    d.PriceUnit,
		Quantity:     d.Quantity,
		Category:     CategoryToEntity(d.Category),
	}
	if p.Category != nil {
		id := p.Category.CategoryID
		p.CategoryID = &id
	}
	return p
}

func ProductsToDtos(products []models.Product) []dto.ProductDto {
	out := make([]dto.ProductDto, 0, len(products))
	for i := range products {
		out = append(out, *ProductToDto(&products[i]))
	}
	return out
}
