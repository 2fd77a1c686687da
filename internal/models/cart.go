package models

import "time"

// CartItem is a single product line inside a cart. UnitPrice is captured
// when the item is added and does not follow later product price changes.
type CartItem struct {
	ID         string   `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CartID     string   `json:"-" gorm:"type:varchar(36);index"`
	ProductID  string   `json:"productId" gorm:"type:varchar(36)"`
	Product    *Product `json:"product,omitempty" gorm:"-"`
	Quantity   int      `json:"quantity"`
	UnitPrice  float64  `json:"unitPrice"`
	TotalPrice float64  `json:"totalPrice" gorm:"-"`
}

// Cart is the single pre-purchase collection of items for one user.
// TotalAmount and the per-item totals are never persisted; they are
// recomputed from quantity and unit price every time the cart is read.
type Cart struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string     `json:"userId" gorm:"type:varchar(64);uniqueIndex"`
	Items       []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	TotalAmount float64    `json:"totalAmount" gorm:"-"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Recompute derives each item total and the cart total from quantity and
// unit price.
func (c *Cart) Recompute() {
	var total float64
	for i := range c.Items {
		c.Items[i].TotalPrice = float64(c.Items[i].Quantity) * c.Items[i].UnitPrice
		total += c.Items[i].TotalPrice
	}
	c.TotalAmount = total
}

// AddToCartRequest is the payload for POST /cart/items.
type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest is the payload for PUT /cart/items/{id}.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
