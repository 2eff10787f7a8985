package handlers

import (
	"storefront/internal/dto"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for product categories.
type CategoryHandler struct {
	service *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// RegisterRoutes registers the category routes on router.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleFindAll)
	categoryRoutes.Get("/:categoryId", h.HandleFindByID)
	categoryRoutes.Post("/", h.HandleSave)
	categoryRoutes.Put("/", h.HandleUpdate)
	categoryRoutes.Put("/:categoryId", h.HandleUpdateByID)
	categoryRoutes.Delete("/:categoryId", h.HandleDeleteByID)
}

func (h *CategoryHandler) HandleFindAll(c *fiber.Ctx) error {
	categories, err := h.service.FindAll()
	if err != nil {
		return err
	}
	return c.JSON(dto.Collection[dto.CategoryDto]{Collection: categories})
}

func (h *CategoryHandler) HandleFindByID(c *fiber.Ctx) error {
	id, err := intParam(c, "categoryId")
	if err != nil {
		return err
	}
	category, err := h.service.FindByID(id)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

func (h *CategoryHandler) HandleSave(c *fiber.Ctx) error {
	var req dto.CategoryDto
	if err := parseBody(c, &req); err != nil {
		return err
	}
	saved, err := h.service.Save(&req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

func (h *CategoryHandler) HandleUpdate(c *fiber.Ctx) error {
	var req dto.CategoryDto
	if err := parseBody(c, &req); err != nil {
		return err
	}
	updated, err := h.service.Update(&req)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (h *CategoryHandler) HandleUpdateByID(c *fiber.Ctx) error {
	id, err := intParam(c, "categoryId")
	if err != nil {
		return err
	}
	var req dto.CategoryDto
	if err := parseBody(c, &req); err != nil {
		return err
	}
	updated, err := h.service.UpdateByID(id, &req)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (h *CategoryHandler) HandleDeleteByID(c *fiber.Ctx) error {
	id, err := intParam(c, "categoryId")
	if err != nil {
		return err
	}
	if err := h.service.DeleteByID(id); err != nil {
		return err
	}
	return c.JSON(true)
}
