package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront/internal/models"
)

// MemoryOrderRepository is an in-memory implementation of OrderRepository.
type MemoryOrderRepository struct {
	orders map[string]models.Order
	mu     sync.RWMutex
}

// NewMemoryOrderRepository creates an empty MemoryOrderRepository.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// List filters orders by user and status, then sorts and pages them.
// Newest orders come first unless a sort expression says otherwise.
func (r *MemoryOrderRepository) List(query models.OrderQuery) ([]models.Order, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if query.UserID != "" && o.UserID != query.UserID {
			continue
		}
		if query.Status != "" && o.Status != query.Status {
			continue
		}
		matched = append(matched, o)
	}

	sortOrders(matched, query.Sort)
	total := len(matched)
	return pageSlice(matched, query.Page, query.Size), total, nil
}

// sortOrders orders the slice by the requested sort key. Known fields
// sort ascending unless ",desc" is given; anything else falls back to
// newest first, with the ID as a tie-breaker so identical queries
// always list in the same order.
func sortOrders(orders []models.Order, sortExpr string) {
	field, desc := parseSort(sortExpr)

	var less func(a, b models.Order) bool
	switch field {
	case "createdAt":
		less = func(a, b models.Order) bool {
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.ID < b.ID
		}
	case "totalAmount":
		less = func(a, b models.Order) bool { return a.TotalAmount < b.TotalAmount }
	default:
		sort.SliceStable(orders, func(i, j int) bool {
			a, b := orders[i], orders[j]
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID > b.ID
		})
		return
	}

	sort.SliceStable(orders, func(i, j int) bool {
		if desc {
			return less(orders[j], orders[i])
		}
		return less(orders[i], orders[j])
	})
}

// GetByID returns an order by its ID.
func (r *MemoryOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, ErrOrderNotFound)
	}
	return &order, nil
}

// Create adds a new order.
func (r *MemoryOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	if order.UpdatedAt.IsZero() {
		order.UpdatedAt = now
	}
	r.orders[order.ID] = *order
	return nil
}

// UpdateStatus overwrites the order's status and bumps its update
// timestamp, returning the updated order.
func (r *MemoryOrderRepository) UpdateStatus(id string, status models.OrderStatus) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, ErrOrderNotFound)
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return &order, nil
}
