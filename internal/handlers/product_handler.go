package handlers

import (
	"github.com/gofiber/fiber/v2"

	"storefront/internal/models"
	"storefront/internal/services"
)

// ProductHandler serves the public catalog endpoints.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Get("/", h.HandleListProducts)
	products.Get("/categories", h.HandleGetCategories)
	products.Get("/:id", h.HandleGetProduct)
}

// HandleListProducts returns a filtered, sorted, paginated product page.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	query := productQueryFromCtx(c).Normalize(services.DefaultCatalogPageSize)
	products, total, err := h.service.ListProducts(query, services.DefaultCatalogPageSize)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.NewPagedResponse(products, total, query.Page, query.Size))
}

// HandleGetProduct returns a single product.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProduct(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, product)
}

// HandleGetCategories returns the distinct category list.
func (h *ProductHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.Categories()
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, categories)
}

// productQueryFromCtx reads the shared catalog query parameters.
func productQueryFromCtx(c *fiber.Ctx) models.ProductQuery {
	return models.ProductQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Page:     c.QueryInt("page", 0),
		Size:     c.QueryInt("size", 0),
		Sort:     c.Query("sort"),
	}
}
