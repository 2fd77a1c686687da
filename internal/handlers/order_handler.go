package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/services"
)

// OrderHandler serves the user-facing order endpoints.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orders := router.Group("/orders")
	orders.Post("/checkout", h.HandleCheckout)
	orders.Get("/", h.HandleListOrders)
	orders.Get("/:id", h.HandleGetOrder)
}

// HandleCheckout places an order from the user's cart.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	var req models.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Error: "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Error: validationMessage(err),
		})
	}

	order, err := h.service.Checkout(middleware.UserID(c), req.ShippingAddress)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, order)
}

// HandleListOrders lists the requesting user's orders.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	query := orderQueryFromCtx(c).Normalize(services.DefaultAdminPageSize)
	query.UserID = middleware.UserID(c)

	orders, total, err := h.service.ListOrders(query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.NewPagedResponse(orders, total, query.Page, query.Size))
}

// HandleGetOrder returns one of the requesting user's orders.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	order, err := h.service.GetOrder(c.Params("id"), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, order)
}

// orderQueryFromCtx reads the shared order query parameters.
func orderQueryFromCtx(c *fiber.Ctx) models.OrderQuery {
	return models.OrderQuery{
		Status: models.OrderStatus(c.Query("status")),
		Page:   c.QueryInt("page", 0),
		Size:   c.QueryInt("size", 0),
		Sort:   c.Query("sort"),
	}
}

// validationMessage flattens validator errors into a single message.
func validationMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return "Validation failed"
	}
	e := validationErrors[0]
	return fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
}
