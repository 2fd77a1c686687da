package models

import "time"

// OrderStatus enumerates the lifecycle states of an order.
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "CREATED"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusCreated, OrderStatusPaid, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// ShippingAddress is the delivery address embedded in an order.
type ShippingAddress struct {
	FirstName    string `json:"firstName" gorm:"type:varchar(100)" validate:"required,max=100"`
	LastName     string `json:"lastName" gorm:"type:varchar(100)" validate:"required,max=100"`
	AddressLine1 string `json:"addressLine1" gorm:"type:varchar(255)" validate:"required,max=255"`
	AddressLine2 string `json:"addressLine2,omitempty" gorm:"type:varchar(255)" validate:"omitempty,max=255"`
	City         string `json:"city" gorm:"type:varchar(100)" validate:"required,max=100"`
	PostalCode   string `json:"postalCode" gorm:"type:varchar(20)" validate:"required,max=20"`
	Phone        string `json:"phone" gorm:"type:varchar(30)" validate:"required,max=30"`
}

// OrderItem is an immutable snapshot of a cart item taken at checkout.
// Product name, image and unit price are copied so that later product
// edits do not alter historical orders.
type OrderItem struct {
	ID              string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID         string  `json:"-" gorm:"type:varchar(36);index"`
	ProductID       string  `json:"productId" gorm:"type:varchar(36)"`
	ProductName     string  `json:"productName" gorm:"type:varchar(100)"`
	ProductImageURL string  `json:"productImageUrl" gorm:"type:varchar(500)"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unitPrice"`
	TotalPrice      float64 `json:"totalPrice"`
}

// Order is the record of a completed checkout. Only its status and
// update timestamp change after creation.
type Order struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string          `json:"userId" gorm:"type:varchar(64);index"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ShippingAddress ShippingAddress `json:"shippingAddress" gorm:"embedded;embeddedPrefix:ship_"`
	TotalAmount     float64         `json:"totalAmount"`
	Status          OrderStatus     `json:"status" gorm:"type:varchar(16);index"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// CreateOrderRequest is the payload for POST /orders/checkout.
type CreateOrderRequest struct {
	ShippingAddress ShippingAddress `json:"shippingAddress" validate:"required"`
}

// UpdateOrderStatusRequest is the payload for PATCH /admin/orders/{id}/status.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required"`
}

// OrderQuery holds the filter and paging parameters accepted by the
// order listing endpoints. An empty UserID matches all users.
type OrderQuery struct {
	UserID string
	Status OrderStatus
	Page   int
	Size   int
	Sort   string
}

// Normalize clamps a negative page to zero and substitutes defaultSize
// for a missing size.
func (q OrderQuery) Normalize(defaultSize int) OrderQuery {
	if q.Size <= 0 {
		q.Size = defaultSize
	}
	if q.Page < 0 {
		q.Page = 0
	}
	return q
}
