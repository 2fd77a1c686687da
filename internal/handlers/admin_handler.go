package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storefront/internal/models"
	"storefront/internal/services"
)

// AdminHandler serves the admin product CRUD and order administration
// endpoints.
type AdminHandler struct {
	products *services.ProductService
	orders   *services.OrderService
	validate *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(products *services.ProductService, orders *services.OrderService) *AdminHandler {
	return &AdminHandler{
		products: products,
		orders:   orders,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the admin routes with the Fiber app. The
// caller is expected to guard the router group with the admin
// middleware.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	admin := router.Group("/admin")

	products := admin.Group("/products")
	products.Get("/", h.HandleListProducts)
	products.Post("/", h.HandleCreateProduct)
	products.Get("/:id", h.HandleGetProduct)
	products.Put("/:id", h.HandleUpdateProduct)
	products.Delete("/:id", h.HandleDeleteProduct)

	orders := admin.Group("/orders")
	orders.Get("/", h.HandleListOrders)
	orders.Get("/:id", h.HandleGetOrder)
	orders.Patch("/:id/status", h.HandleUpdateOrderStatus)
}

// HandleListProducts pages the full catalog for the admin screens.
func (h *AdminHandler) HandleListProducts(c *fiber.Ctx) error {
	query := productQueryFromCtx(c).Normalize(services.DefaultAdminPageSize)
	products, total, err := h.products.ListProducts(query, services.DefaultAdminPageSize)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.NewPagedResponse(products, total, query.Page, query.Size))
}

// HandleGetProduct returns a single product for editing.
func (h *AdminHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.products.GetProduct(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, product)
}

// HandleCreateProduct creates a product.
func (h *AdminHandler) HandleCreateProduct(c *fiber.Ctx) error {
	req, ok := h.parseProductRequest(c)
	if !ok {
		return nil
	}
	product, err := h.products.CreateProduct(*req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, product)
}

// HandleUpdateProduct overwrites a product.
func (h *AdminHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	req, ok := h.parseProductRequest(c)
	if !ok {
		return nil
	}
	product, err := h.products.UpdateProduct(c.Params("id"), *req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, product)
}

// HandleDeleteProduct removes a product from the catalog.
func (h *AdminHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.products.DeleteProduct(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.Response{Message: "Product deleted successfully"})
}

// HandleListOrders pages orders across all users.
func (h *AdminHandler) HandleListOrders(c *fiber.Ctx) error {
	query := orderQueryFromCtx(c).Normalize(services.DefaultAdminPageSize)

	orders, total, err := h.orders.ListOrders(query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.NewPagedResponse(orders, total, query.Page, query.Size))
}

// HandleGetOrder returns any user's order.
func (h *AdminHandler) HandleGetOrder(c *fiber.Ctx) error {
	order, err := h.orders.GetOrder(c.Params("id"), "")
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, order)
}

// HandleUpdateOrderStatus overwrites an order's status.
func (h *AdminHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var req models.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Error: "Invalid request body",
		})
	}
	if req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Error: "status is required",
		})
	}

	order, err := h.orders.UpdateOrderStatus(c.Params("id"), req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, order)
}

// parseProductRequest parses and validates the product payload, writing
// the error response itself when the payload is rejected.
func (h *AdminHandler) parseProductRequest(c *fiber.Ctx) (*models.ProductRequest, bool) {
	var req models.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Error: "Invalid request body",
		})
		return nil, false
	}
	if err := h.validate.Struct(req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(models.Response{
			Error: validationMessage(err),
		})
		return nil, false
	}
	return &req, true
}
