package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/models"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetByUser returns the user's cart with its items preloaded, creating
// an empty cart on first access.
func (r *GORMCartRepository) GetByUser(userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items").First(&cart, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		now := time.Now()
		cart = models.Cart{
			ID:        uuid.New().String(),
			UserID:    userID,
			Items:     []models.CartItem{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := r.db.Create(&cart).Error; err != nil {
			return nil, fmt.Errorf("failed to create cart for user %s: %w", userID, err)
		}
		return &cart, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return &cart, nil
}

// Save replaces the stored cart and its items with the given state.
func (r *GORMCartRepository) Save(cart *models.Cart) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Items are replaced wholesale; the item set is small and this
		// keeps removals and quantity changes in one code path.
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart items: %w", err)
		}
		for i := range cart.Items {
			cart.Items[i].CartID = cart.ID
		}
		if len(cart.Items) > 0 {
			if err := tx.Create(&cart.Items).Error; err != nil {
				return fmt.Errorf("failed to save cart items: %w", err)
			}
		}
		err := tx.Model(&models.Cart{}).
			Where("id = ?", cart.ID).
			Update("updated_at", cart.UpdatedAt).Error
		if err != nil {
			return fmt.Errorf("failed to save cart: %w", err)
		}
		return nil
	})
}
