package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront/internal/models"
)

// MemoryCartRepository is an in-memory implementation of CartRepository.
type MemoryCartRepository struct {
	carts map[string]models.Cart // keyed by user ID
	mu    sync.RWMutex
}

// NewMemoryCartRepository creates an empty MemoryCartRepository.
func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{
		carts: make(map[string]models.Cart),
	}
}

// GetByUser returns the user's cart, creating an empty one on first
// access.
func (r *MemoryCartRepository) GetByUser(userID string) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[userID]
	if !ok {
		now := time.Now()
		cart = models.Cart{
			ID:        uuid.New().String(),
			UserID:    userID,
			Items:     []models.CartItem{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		r.carts[userID] = cart
	}

	// Copy the item slice so callers can mutate their view freely and
	// commit it back through Save.
	out := cart
	out.Items = make([]models.CartItem, len(cart.Items))
	copy(out.Items, cart.Items)
	return &out, nil
}

// Save stores the cart as the user's current cart.
func (r *MemoryCartRepository) Save(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *cart
	stored.Items = make([]models.CartItem, len(cart.Items))
	copy(stored.Items, cart.Items)
	r.carts[cart.UserID] = stored
	return nil
}
