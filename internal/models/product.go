package models

import "time"

// Product represents a product in the store catalog.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(100);index"`
	Description string    `json:"description,omitempty" gorm:"type:varchar(500)"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl" gorm:"type:varchar(500)"`
	Category    string    `json:"category,omitempty" gorm:"type:varchar(100);index"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductRequest is the payload for creating or updating a product
// through the admin endpoints.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageURL    string  `json:"imageUrl" validate:"required,max=500"`
	Category    string  `json:"category" validate:"omitempty,max=100"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

// ProductQuery holds the filter, sort and paging parameters accepted by
// the product listing endpoints. Page is zero-based.
type ProductQuery struct {
	Search   string
	Category string
	Page     int
	Size     int
	Sort     string
}

// Normalize clamps a negative page to zero and substitutes defaultSize
// for a missing size. Handlers and services share this so the paging
// values echoed in responses are the ones actually queried.
func (q ProductQuery) Normalize(defaultSize int) ProductQuery {
	if q.Size <= 0 {
		q.Size = defaultSize
	}
	if q.Page < 0 {
		q.Page = 0
	}
	return q
}
