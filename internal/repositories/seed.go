package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"storefront/internal/models"
)

// SeedDemoData loads a demo catalog, an empty cart for the given user
// and a couple of historical orders into the repositories. It is meant
// for the memory-backed development server.
func SeedDemoData(products ProductRepository, carts CartRepository, orders OrderRepository, userID string) error {
	catalog := []models.Product{
		{
			Name:        "Wireless Headphones Pro Max",
			Description: "Premium wireless headphones with active noise cancellation, 30-hour battery life and fast charging.",
			Price:       2899,
			Stock:       34,
			ImageURL:    "https://images.unsplash.com/photo-1583394838336-acd977736f90?w=400&h=400&fit=crop",
			Category:    "Electronics",
		},
		{
			Name:        "Mechanical Keyboard RGB 87-Key",
			Description: "Mechanical keyboard with Cherry MX Blue switches, RGB backlight and programmable keys.",
			Price:       1499,
			Stock:       18,
			ImageURL:    "https://images.unsplash.com/photo-1514996937319-344454492b37?w=400&h=400&fit=crop",
			Category:    "Electronics",
		},
		{
			Name:        "4K UHD Monitor 27\" IPS",
			Description: "27-inch 4K UHD IPS panel with HDR10 support and 99% sRGB coverage.",
			Price:       7999,
			Stock:       12,
			ImageURL:    "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=400&h=400&fit=crop",
			Category:    "Electronics",
		},
		{
			Name:        "Wireless Gaming Mouse",
			Description: "Professional gaming mouse with 25,600 DPI sensor and programmable buttons.",
			Price:       899,
			Stock:       45,
			ImageURL:    "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=400&h=400&fit=crop",
			Category:    "Electronics",
		},
		{
			Name:        "Oversize Basic T-Shirt",
			Description: "100% cotton oversize t-shirt with a soft feel and colorfast fabric.",
			Price:       249,
			Stock:       85,
			ImageURL:    "https://images.unsplash.com/photo-1521572267360-ee0c2909d518?w=400&h=400&fit=crop",
			Category:    "Clothing",
		},
		{
			Name:        "Slim Fit Jeans",
			Description: "Classic blue jeans with a slim fit cut and stretch fabric.",
			Price:       599,
			Stock:       72,
			ImageURL:    "https://images.unsplash.com/photo-1542272604-787c3835535d?w=400&h=400&fit=crop",
			Category:    "Clothing",
		},
		{
			Name:        "Minimalist Table Lamp",
			Description: "Modern table lamp with touch control and a built-in dimmer.",
			Price:       899,
			Stock:       40,
			ImageURL:    "https://images.unsplash.com/photo-1519710164239-da123dc03ef4?w=400&h=400&fit=crop",
			Category:    "Home",
		},
		{
			Name:        "Ceramic Coffee Mug Set",
			Description: "Set of four ceramic coffee mugs, microwave and dishwasher safe.",
			Price:       299,
			Stock:       120,
			ImageURL:    "https://images.unsplash.com/photo-1517705008128-361805f42e86?w=400&h=400&fit=crop",
			Category:    "Home",
		},
		{
			Name:        "Professional Running Shoes",
			Description: "Running shoes with air cushioning and breathable mesh upper.",
			Price:       1799,
			Stock:       28,
			ImageURL:    "https://images.unsplash.com/photo-1520333789090-1afc82db536a?w=400&h=400&fit=crop",
			Category:    "Sports",
		},
		{
			Name:        "Premium Yoga Mat",
			Description: "Non-slip 6mm yoga mat made from eco-friendly material, carry strap included.",
			Price:       349,
			Stock:       70,
			ImageURL:    "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400&h=400&fit=crop",
			Category:    "Sports",
		},
		{
			Name:        "JavaScript: The Complete Guide",
			Description: "Modern JavaScript from the ground up, covering ES6+ with practical examples.",
			Price:       189,
			Stock:       45,
			ImageURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop",
			Category:    "Books",
		},
		{
			Name:        "Clean Code Handbook",
			Description: "The craft of writing readable code, with best practices and refactoring techniques.",
			Price:       159,
			Stock:       38,
			ImageURL:    "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=400&h=400&fit=crop",
			Category:    "Books",
		},
	}

	for i := range catalog {
		if err := products.Create(&catalog[i]); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", catalog[i].Name, err)
		}
	}

	// Touching the cart creates it empty.
	if _, err := carts.GetByUser(userID); err != nil {
		return fmt.Errorf("failed to seed cart: %w", err)
	}

	address := models.ShippingAddress{
		FirstName:    "Jane",
		LastName:     "Doe",
		AddressLine1: "Main Street 123",
		AddressLine2: "Apt 5",
		City:         "Istanbul",
		PostalCode:   "34000",
		Phone:        "+90 555 000 0000",
	}

	history := []models.Order{
		{
			UserID: userID,
			Items: []models.OrderItem{
				snapshotItem(&catalog[0], 1),
			},
			ShippingAddress: address,
			TotalAmount:     catalog[0].Price,
			Status:          models.OrderStatusDelivered,
			CreatedAt:       time.Now().AddDate(0, 0, -7),
			UpdatedAt:       time.Now().AddDate(0, 0, -5),
		},
		{
			UserID: userID,
			Items: []models.OrderItem{
				snapshotItem(&catalog[4], 2),
				snapshotItem(&catalog[5], 1),
			},
			ShippingAddress: address,
			TotalAmount:     catalog[4].Price*2 + catalog[5].Price,
			Status:          models.OrderStatusShipped,
			CreatedAt:       time.Now().AddDate(0, 0, -3),
			UpdatedAt:       time.Now().AddDate(0, 0, -1),
		},
	}

	for i := range history {
		if err := orders.Create(&history[i]); err != nil {
			return fmt.Errorf("failed to seed order: %w", err)
		}
	}
	return nil
}

func snapshotItem(product *models.Product, quantity int) models.OrderItem {
	return models.OrderItem{
		ID:              uuid.New().String(),
		ProductID:       product.ID,
		ProductName:     product.Name,
		ProductImageURL: product.ImageURL,
		Quantity:        quantity,
		UnitPrice:       product.Price,
		TotalPrice:      float64(quantity) * product.Price,
	}
}
