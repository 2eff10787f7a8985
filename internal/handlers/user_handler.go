package handlers

import (
	"storefront/internal/dto"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for users and their credentials.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterRoutes registers the user routes on router.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleFindAll)
	userRoutes.Get("/username/:username", h.HandleFindByUsername)
	userRoutes.Get("/:userId", h.HandleFindByID)
	userRoutes.Post("/", h.HandleSave)
	userRoutes.Put("/", h.HandleUpdate)
	userRoutes.Put("/:userId", h.HandleUpdateByID)
	userRoutes.Delete("/:userId", h.HandleDeleteByID)
}

func (h *UserHandler) HandleFindAll(c *fiber.Ctx) error {
	users, err := h.service.FindAll()
	if err != nil {
		return err
	}
	for i := range users {
		hidePassword(&users[i])
	}
	return c.JSON(dto.Collection[dto.UserDto]{Collection: users})
}

func (h *UserHandler) HandleFindByID(c *fiber.Ctx) error {
	id, err := intParam(c, "userId")
	if err != nil {
		return err
	}
	user, err := h.service.FindByID(id)
	if err != nil {
		return err
	}
	return c.JSON(hidePassword(user))
}

func (h *UserHandler) HandleFindByUsername(c *fiber.Ctx) error {
	user, err := h.service.FindByUsername(c.Params("username"))
	if err != nil {
		return err
	}
	return c.JSON(hidePassword(user))
}

func (h *UserHandler) HandleSave(c *fiber.Ctx) error {
	var req dto.UserDto
	if err := parseBody(c, &req); err != nil {
		return err
	}
	saved, err := h.service.Save(&req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(hidePassword(saved))
}

func (h *UserHandler) HandleUpdate(c *fiber.Ctx) error {
	var req dto.UserDto
	if err := parseBody(c, &req); err != nil {
		return err
	}
	updated, err := h.service.Update(&req)
	if err != nil {
		return err
	}
	return c.JSON(hidePassword(updated))
}

func (h *UserHandler) HandleUpdateByID(c *fiber.Ctx) error {
	id, err := intParam(c, "userId")
	if err != nil {
		return err
	}
	var req dto.UserDto
	if err := parseBody(c, &req); err != nil {
		return err
	}
	updated, err := h.service.UpdateByID(id, &req)
	if err != nil {
		return err
	}
	return c.JSON(hidePassword(updated))
}

func (h *UserHandler) HandleDeleteByID(c *fiber.Ctx) error {
	id, err := intParam(c, "userId")
	if err != nil {
		return err
	}
	if err := h.service.DeleteByID(id); err != nil {
		return err
	}
	return c.JSON(true)
}

// hidePassword clears the password hash before a user leaves the service.
func hidePassword(u *dto.UserDto) *dto.UserDto {
	if u != nil && u.Credential != nil {
		u.Credential.Password = ""
	}
	return u
}
