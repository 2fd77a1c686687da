package handlers

import (
	"github.com/gofiber/fiber/v2"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/services"
)

// CartHandler serves the cart endpoints.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service: service,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cart := router.Group("/cart")
	cart.Get("/", h.HandleGetCart)
	cart.Delete("/", h.HandleClearCart)
	cart.Post("/items", h.HandleAddItem)
	cart.Put("/items/:id", h.HandleUpdateItem)
	cart.Delete("/items/:id", h.HandleRemoveItem)
}

// HandleGetCart returns the current cart, enriched and totaled.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart, err := h.service.GetCart(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, cart)
}

// HandleAddItem adds a product to the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req models.AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Error: "Invalid request body",
		})
	}
	if req.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Error: "productId is required",
		})
	}

	item, err := h.service.AddItem(middleware.UserID(c), req.ProductID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, item)
}

// HandleUpdateItem changes the quantity of one cart item.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var req models.UpdateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Error: "Invalid request body",
		})
	}

	item, err := h.service.UpdateItem(middleware.UserID(c), c.Params("id"), req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, item)
}

// HandleRemoveItem removes one item from the cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	if err := h.service.RemoveItem(middleware.UserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.Response{Message: "Cart item removed"})
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	if err := h.service.ClearCart(middleware.UserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.Response{Message: "Cart cleared"})
}
