package repositories

import (
	"storefront/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// List returns one page of products matching the query plus the
	// total number of matches before paging.
	List(query models.ProductQuery) ([]models.Product, int, error)
	GetByID(id string) (*models.Product, error)
	// Categories returns the distinct, sorted category names.
	Categories() ([]string, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}

// CartRepository defines the interface for cart data access. Each user
// owns exactly one cart; it is created empty on first access and never
// deleted.
type CartRepository interface {
	GetByUser(userID string) (*models.Cart, error)
	Save(cart *models.Cart) error
}

// OrderRepository defines the interface for order data access. Orders
// are never deleted; after creation only their status may change.
type OrderRepository interface {
	List(query models.OrderQuery) ([]models.Order, int, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status models.OrderStatus) (*models.Order, error)
}
