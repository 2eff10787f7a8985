package handlers

import (
	"storefront/internal/dto"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// RegisterRoutes registers the product routes on router.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleFindAll)
	productRoutes.Get("/:productId", h.HandleFindByID)
	productRoutes.Post("/", h.HandleSave)
	productRoutes.Put("/", h.HandleUpdate)
	productRoutes.Put("/:productId", h.HandleUpdateByID)
	productRoutes.Delete("/:productId", h.HandleDeleteByID)
}

func (h *ProductHandler) HandleFindAll(c *fiber.Ctx) error {
	products, err := h.service.FindAll()
	if err != nil {
		return err
	}
	return c.JSON(dto.Collection[dto.ProductDto]{Collection: products})
}

func (h *ProductHandler) HandleFindByID(c *fiber.Ctx) error {
	id, err := intParam(c, "productId")
	if err != nil {
		return err
	}
	product, err := h.service.FindByID(id)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

func (h *ProductHandler) HandleSave(c *fiber.Ctx) error {
	var req dto.ProductDto
	if err := parseBody(c, &req); err != nil {
		return err
	}
	saved, err := h.service.Save(&req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	var req dto.ProductDto
	if err := parseBody(c, &req); err != nil {
		return err
	}
	updated, err := h.service.Update(&req)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (h *ProductHandler) HandleUpdateByID(c *fiber.Ctx) error {
	id, err := intParam(c, "productId")
	if err != nil {
		return err
	}
	var req dto.ProductDto
	if err := parseBody(c, &req); err != nil {
		return err
	}
	updated, err := h.service.UpdateByID(id, &req)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (h *ProductHandler) HandleDeleteByID(c *fiber.Ctx) error {
	id, err := intParam(c, "productId")
	if err != nil {
		return err
	}
	if err := h.service.DeleteByID(id); err != nil {
		return err
	}
	return c.JSON(true)
}
