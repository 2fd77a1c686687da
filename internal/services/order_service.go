package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// Validation errors surfaced by the order operations.
var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrInvalidStatus = errors.New("invalid order status")
)

// EventPublisher publishes order lifecycle events to a message broker.
type EventPublisher interface {
	PublishOrderEvent(event string, payload map[string]interface{}) error
}

// OrderService handles checkout, order queries and status administration.
type OrderService struct {
	orders   repositories.OrderRepository
	products repositories.ProductRepository
	carts    repositories.CartRepository
	events   EventPublisher
}

// NewOrderService creates a new OrderService. events may be nil, in
// which case no events are published.
func NewOrderService(orders repositories.OrderRepository, products repositories.ProductRepository, carts repositories.CartRepository, events EventPublisher) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		carts:    carts,
		events:   events,
	}
}

// Checkout converts the user's non-empty cart into an order. Each cart
// item is snapshotted into an order item, the product's stock is
// decremented by the ordered quantity floored at zero, and the cart is
// cleared. The order total is recomputed from the snapshots, not copied
// from the cart.
func (s *OrderService) Checkout(userID string, address models.ShippingAddress) (*models.Order, error) {
	cart, err := s.carts.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	var totalAmount float64
	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, cartItem := range cart.Items {
		name := "Unknown Product"
		imageURL := ""
		product, err := s.products.GetByID(cartItem.ProductID)
		if err == nil {
			name = product.Name
			imageURL = product.ImageURL
			// Quantity is not validated against stock; the decrement is
			// floored so stock never goes negative.
			product.Stock -= cartItem.Quantity
			if product.Stock < 0 {
				product.Stock = 0
			}
			if err := s.products.Update(product); err != nil {
				return nil, fmt.Errorf("failed to decrement stock for product %s: %w", product.ID, err)
			}
		}

		item := models.OrderItem{
			ID:              uuid.New().String(),
			ProductID:       cartItem.ProductID,
			ProductName:     name,
			ProductImageURL: imageURL,
			Quantity:        cartItem.Quantity,
			UnitPrice:       cartItem.UnitPrice,
			TotalPrice:      float64(cartItem.Quantity) * cartItem.UnitPrice,
		}
		totalAmount += item.TotalPrice
		items = append(items, item)
	}

	now := time.Now()
	order := &models.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		Items:           items,
		ShippingAddress: address,
		TotalAmount:     totalAmount,
		Status:          models.OrderStatusCreated,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.orders.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	cart.Items = []models.CartItem{}
	cart.TotalAmount = 0
	cart.UpdatedAt = now
	if err := s.carts.Save(cart); err != nil {
		log.Printf("Warning: order %s created but cart for user %s could not be cleared: %v", order.ID, userID, err)
	}

	s.publish("order.created", map[string]interface{}{
		"orderId": order.ID,
		"userId":  order.UserID,
		"status":  order.Status,
		"total":   order.TotalAmount,
	})

	return order, nil
}

// ListOrders returns one page of orders matching the query. An empty
// UserID lists orders across all users (admin view).
func (s *OrderService) ListOrders(query models.OrderQuery) ([]models.Order, int, error) {
	if query.Status != "" && !query.Status.Valid() {
		return nil, 0, fmt.Errorf("%w: %s", ErrInvalidStatus, query.Status)
	}
	return s.orders.List(query.Normalize(DefaultAdminPageSize))
}

// GetOrder retrieves a single order. When userID is non-empty the order
// must belong to that user; foreign orders surface as not found.
func (s *OrderService) GetOrder(id, userID string) (*models.Order, error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if userID != "" && order.UserID != userID {
		return nil, fmt.Errorf("order %s: %w", id, repositories.ErrOrderNotFound)
	}
	return order, nil
}

// UpdateOrderStatus overwrites an order's status. The status value must
// be a known one but transitions are not constrained; the admin endpoint
// is allowed to move an order to any state.
func (s *OrderService) UpdateOrderStatus(id string, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	order, err := s.orders.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}

	s.publish("order.status_updated", map[string]interface{}{
		"orderId": order.ID,
		"userId":  order.UserID,
		"status":  order.Status,
	})

	return order, nil
}

func (s *OrderService) publish(event string, payload map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishOrderEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}
