package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

func seedCatalog(t *testing.T, repo *repositories.MemoryProductRepository, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		category := "Electronics"
		if i%2 == 1 {
			category = "Books"
		}
		product := &models.Product{
			Name:        fmt.Sprintf("Product %02d", i),
			Description: fmt.Sprintf("Description for product %02d", i),
			Price:       float64(10 * (i + 1)),
			ImageURL:    "https://example.com/p.jpg",
			Category:    category,
			Stock:       5,
		}
		require.NoError(t, repo.Create(product))
	}
}

func TestMemoryProductRepository_Pagination(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	seedCatalog(t, repo, 25)

	// 25 items at size 12: pages of 12, 12 and 1.
	page0, total, err := repo.List(models.ProductQuery{Page: 0, Size: 12})
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Len(t, page0, 12)

	page2, total, err := repo.List(models.ProductQuery{Page: 2, Size: 12})
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Len(t, page2, 1)

	// Out-of-range pages yield an empty slice, not an error, and the
	// total is still reported.
	page9, total, err := repo.List(models.ProductQuery{Page: 9, Size: 12})
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Empty(t, page9)
}

func TestMemoryProductRepository_PagesDoNotOverlap(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	seedCatalog(t, repo, 10)

	seen := make(map[string]bool)
	for page := 0; page < 4; page++ {
		items, _, err := repo.List(models.ProductQuery{Page: page, Size: 3, Sort: "name"})
		require.NoError(t, err)
		for _, p := range items {
			assert.False(t, seen[p.ID], "product %s appeared on two pages", p.ID)
			seen[p.ID] = true
		}
	}
	assert.Len(t, seen, 10)
}

func TestMemoryProductRepository_SearchFilter(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	require.NoError(t, repo.Create(&models.Product{Name: "Wireless Headphones", Description: "Noise cancelling", Category: "Electronics"}))
	require.NoError(t, repo.Create(&models.Product{Name: "Yoga Mat", Description: "Non-slip wireless-free zone", Category: "Sports"}))
	require.NoError(t, repo.Create(&models.Product{Name: "Coffee Mug", Description: "Ceramic", Category: "Home"}))

	// Case-insensitive substring over name OR description.
	items, total, err := repo.List(models.ProductQuery{Search: "WIRELESS", Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, items, 2)

	// Search and category combine with AND.
	items, total, err = repo.List(models.ProductQuery{Search: "wireless", Category: "Sports", Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Yoga Mat", items[0].Name)
}

func TestMemoryProductRepository_Sort(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	require.NoError(t, repo.Create(&models.Product{Name: "Banana", Price: 3}))
	require.NoError(t, repo.Create(&models.Product{Name: "Apple", Price: 2}))
	require.NoError(t, repo.Create(&models.Product{Name: "Cherry", Price: 1}))

	byName, _, err := repo.List(models.ProductQuery{Size: 10, Sort: "name"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "Banana", "Cherry"}, names(byName))

	byPriceDesc, _, err := repo.List(models.ProductQuery{Size: 10, Sort: "price,desc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Banana", "Apple", "Cherry"}, names(byPriceDesc))
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestMemoryProductRepository_Categories(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	require.NoError(t, repo.Create(&models.Product{Name: "A", Category: "Home"}))
	require.NoError(t, repo.Create(&models.Product{Name: "B", Category: "Books"}))
	require.NoError(t, repo.Create(&models.Product{Name: "C", Category: "Books"}))
	require.NoError(t, repo.Create(&models.Product{Name: "D"}))

	categories, err := repo.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Books", "Home"}, categories)
}

func TestMemoryOrderRepository_NewestFirst(t *testing.T) {
	repo := repositories.NewMemoryOrderRepository()
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(&models.Order{
			UserID: "user-1",
			Status: models.OrderStatusCreated,
		}))
	}

	orders, total, err := repo.List(models.OrderQuery{UserID: "user-1", Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, orders, 3)
	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i].CreatedAt.After(orders[i-1].CreatedAt))
	}
}

func TestMemoryOrderRepository_SortCreatedAt(t *testing.T) {
	repo := repositories.NewMemoryOrderRepository()
	base := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(&models.Order{
			UserID:      "user-1",
			Status:      models.OrderStatusCreated,
			TotalAmount: float64(100 * (3 - i)),
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		}))
	}

	// Bare field sorts ascending, ",desc" inverts it.
	asc, _, err := repo.List(models.OrderQuery{Size: 10, Sort: "createdAt"})
	require.NoError(t, err)
	require.Len(t, asc, 3)
	for i := 1; i < len(asc); i++ {
		assert.True(t, asc[i].CreatedAt.After(asc[i-1].CreatedAt))
	}

	desc, _, err := repo.List(models.OrderQuery{Size: 10, Sort: "createdAt,desc"})
	require.NoError(t, err)
	require.Len(t, desc, 3)
	for i := 1; i < len(desc); i++ {
		assert.True(t, desc[i].CreatedAt.Before(desc[i-1].CreatedAt))
	}

	byTotal, _, err := repo.List(models.OrderQuery{Size: 10, Sort: "totalAmount,desc"})
	require.NoError(t, err)
	require.Len(t, byTotal, 3)
	assert.Equal(t, 300.0, byTotal[0].TotalAmount)
	assert.Equal(t, 100.0, byTotal[2].TotalAmount)
}

func TestMemoryOrderRepository_UnknownSortFieldIsDeterministic(t *testing.T) {
	repo := repositories.NewMemoryOrderRepository()
	for i := 0; i < 8; i++ {
		require.NoError(t, repo.Create(&models.Order{
			UserID: "user-1",
			Status: models.OrderStatusCreated,
		}))
	}

	first, _, err := repo.List(models.OrderQuery{Size: 10, Sort: "status"})
	require.NoError(t, err)
	require.Len(t, first, 8)

	// An unrecognized field falls back to the newest-first default;
	// repeated identical queries must list in the same order.
	for run := 0; run < 20; run++ {
		again, _, err := repo.List(models.OrderQuery{Size: 10, Sort: "status"})
		require.NoError(t, err)
		require.Len(t, again, 8)
		for i := range first {
			assert.Equal(t, first[i].ID, again[i].ID)
		}
	}
}
