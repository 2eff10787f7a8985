package handlers

import (
	"net/url"

	"storefront/internal/dto"
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FavouriteHandler handles HTTP requests for favourites.
type FavouriteHandler struct {
	service *services.FavouriteService
}

// NewFavouriteHandler creates a new FavouriteHandler.
func NewFavouriteHandler(service *services.FavouriteService) *FavouriteHandler {
	return &FavouriteHandler{service: service}
}

// RegisterRoutes registers the favourite routes on router.
func (h *FavouriteHandler) RegisterRoutes(router fiber.Router) {
	favouriteRoutes := router.Group("/favourites")
	favouriteRoutes.Get("/", h.HandleFindAll)
	favouriteRoutes.Post("/find", h.HandleFindByBody)
	favouriteRoutes.Delete("/delete", h.HandleDeleteByBody)
	favouriteRoutes.Get("/:userId/:productId/:likeDate", h.HandleFindByID)
	favouriteRoutes.Post("/", h.HandleSave)
	favouriteRoutes.Put("/", h.HandleUpdate)
	favouriteRoutes.Delete("/:userId/:productId/:likeDate", h.HandleDeleteByID)
}

func (h *FavouriteHandler) HandleFindAll(c *fiber.Ctx) error {
	favourites, err := h.service.FindAll()
	if err != nil {
		return err
	}
	return c.JSON(dto.Collection[dto.FavouriteDto]{Collection: favourites})
}

func (h *FavouriteHandler) HandleFindByID(c *fiber.Ctx) error {
	id, err := favouriteIDFromPath(c)
	if err != nil {
		return err
	}
	favourite, err := h.service.FindByID(id)
	if err != nil {
		return err
	}
	return c.JSON(favourite)
}

// HandleFindByBody looks a favourite up by the key carried in the body.
func (h *FavouriteHandler) HandleFindByBody(c *fiber.Ctx) error {
	id, err := favouriteIDFromBody(c)
	if err != nil {
		return err
	}
	favourite, err := h.service.FindByID(id)
	if err != nil {
		return err
	}
	return c.JSON(favourite)
}

func (h *FavouriteHandler) HandleSave(c *fiber.Ctx) error {
	var req dto.FavouriteDto
	if err := parseBody(c, &req); err != nil {
		return err
	}
	saved, err := h.service.Save(&req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

func (h *FavouriteHandler) HandleUpdate(c *fiber.Ctx) error {
	var req dto.FavouriteDto
	if err := parseBody(c, &req); err != nil {
		return err
	}
	updated, err := h.service.Update(&req)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (h *FavouriteHandler) HandleDeleteByID(c *fiber.Ctx) error {
	id, err := favouriteIDFromPath(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteByID(id); err != nil {
		return err
	}
	return c.JSON(true)
}

// HandleDeleteByBody deletes the favourite whose key is carried in the body.
func (h *FavouriteHandler) HandleDeleteByBody(c *fiber.Ctx) error {
	id, err := favouriteIDFromBody(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteByID(id); err != nil {
		return err
	}
	return c.JSON(true)
}

func favouriteIDFromPath(c *fiber.Ctx) (models.FavouriteID, error) {
	userID, err := intParam(c, "userId")
	if err != nil {
		return models.FavouriteID{}, err
	}
	productID, err := intParam(c, "productId")
	if err != nil {
		return models.FavouriteID{}, err
	}
	raw, err := url.PathUnescape(c.Params("likeDate"))
	if err != nil {
		return models.FavouriteID{}, badRequest("Invalid likeDate", err)
	}
	likeDate, err := dto.ParseLikeDate(raw)
	if err != nil {
		return models.FavouriteID{}, badRequest("Invalid likeDate", err)
	}
	return models.NewFavouriteID(userID, productID, likeDate), nil
}

func favouriteIDFromBody(c *fiber.Ctx) (models.FavouriteID, error) {
	var req dto.FavouriteDto
	if err := parseBody(c, &req); err != nil {
		return models.FavouriteID{}, err
	}
	if req.LikeDate.IsZero() {
		return models.FavouriteID{}, &BadRequestError{
			Msg:    "Validation failed",
			Fields: map[string]string{"LikeDate": "Field 'LikeDate' failed on the 'required' tag"},
		}
	}
	return models.NewFavouriteID(req.UserID, req.ProductID, req.LikeDate), nil
}
