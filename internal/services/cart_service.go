package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CartService maintains each user's cart item list and derived totals.
type CartService struct {
	carts    repositories.CartRepository
	products repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(carts repositories.CartRepository, products repositories.ProductRepository) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
	}
}

// GetCart returns the user's cart with items enriched by current product
// data and the total recomputed from quantity and unit price. Stored
// totals are never trusted.
func (s *CartService) GetCart(userID string) (*models.Cart, error) {
	cart, err := s.carts.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	for i := range cart.Items {
		product, err := s.products.GetByID(cart.Items[i].ProductID)
		if err == nil {
			cart.Items[i].Product = product
		}
	}
	cart.Recompute()
	return cart, nil
}

// AddItem adds quantity units of a product to the user's cart. Quantity
// is clamped to a minimum of 1. If the product is already in the cart
// the quantities are summed into the existing line; otherwise a new line
// is appended with the unit price snapshotted from the current product
// price. Stock is not checked in the cart path.
func (s *CartService) AddItem(userID, productID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}
	product, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	var item *models.CartItem
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += quantity
			item = &cart.Items[i]
			break
		}
	}
	if item == nil {
		cart.Items = append(cart.Items, models.CartItem{
			ID:        uuid.New().String(),
			CartID:    cart.ID,
			ProductID: product.ID,
			Quantity:  quantity,
			UnitPrice: product.Price,
		})
		item = &cart.Items[len(cart.Items)-1]
	}

	cart.UpdatedAt = time.Now()
	cart.Recompute()
	if err := s.carts.Save(cart); err != nil {
		return nil, err
	}

	result := *item
	result.Product = product
	return &result, nil
}

// UpdateItem sets the quantity of an existing cart item, clamped to a
// minimum of 1.
func (s *CartService) UpdateItem(userID, itemID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}
	cart, err := s.carts.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	var item *models.CartItem
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			item = &cart.Items[i]
			break
		}
	}
	if item == nil {
		return nil, fmt.Errorf("cart item %s: %w", itemID, repositories.ErrCartItemNotFound)
	}

	item.Quantity = quantity
	cart.UpdatedAt = time.Now()
	cart.Recompute()
	if err := s.carts.Save(cart); err != nil {
		return nil, err
	}

	result := *item
	return &result, nil
}

// RemoveItem removes one item from the user's cart.
func (s *CartService) RemoveItem(userID, itemID string) error {
	cart, err := s.carts.GetByUser(userID)
	if err != nil {
		return err
	}

	index := -1
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			index = i
			break
		}
	}
	if index == -1 {
		return fmt.Errorf("cart item %s: %w", itemID, repositories.ErrCartItemNotFound)
	}

	cart.Items = append(cart.Items[:index], cart.Items[index+1:]...)
	cart.UpdatedAt = time.Now()
	cart.Recompute()
	return s.carts.Save(cart)
}

// ClearCart empties the user's cart. It is idempotent.
func (s *CartService) ClearCart(userID string) error {
	cart, err := s.carts.GetByUser(userID)
	if err != nil {
		return err
	}
	cart.Items = []models.CartItem{}
	cart.TotalAmount = 0
	cart.UpdatedAt = time.Now()
	return s.carts.Save(cart)
}
