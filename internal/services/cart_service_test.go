package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
)

const testUser = "user-1"

// newCartFixture builds a cart service backed by memory repositories
// with one seeded product.
func newCartFixture(t *testing.T) (*services.CartService, *repositories.MemoryProductRepository, *models.Product) {
	t.Helper()
	products := repositories.NewMemoryProductRepository()
	carts := repositories.NewMemoryCartRepository()

	product := &models.Product{
		Name:     "Wireless Headphones",
		Price:    100,
		ImageURL: "https://example.com/h.jpg",
		Category: "Electronics",
		Stock:    10,
	}
	require.NoError(t, products.Create(product))

	return services.NewCartService(carts, products), products, product
}

func TestCartService_AddItemSnapshotsUnitPrice(t *testing.T) {
	service, products, product := newCartFixture(t)

	item, err := service.AddItem(testUser, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 100.0, item.UnitPrice)

	// A later price change must not affect the captured unit price.
	product.Price = 150
	require.NoError(t, products.Update(product))

	cart, err := service.GetCart(testUser)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 100.0, cart.Items[0].UnitPrice)
	assert.Equal(t, 200.0, cart.TotalAmount)
}

func TestCartService_AddItemIsAdditive(t *testing.T) {
	service, _, product := newCartFixture(t)

	_, err := service.AddItem(testUser, product.ID, 2)
	require.NoError(t, err)

	cart, err := service.GetCart(testUser)
	require.NoError(t, err)
	assert.Equal(t, 200.0, cart.TotalAmount)

	// Adding the same product again grows the existing line instead of
	// appending a second one.
	item, err := service.AddItem(testUser, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)

	cart, err = service.GetCart(testUser)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 500.0, cart.TotalAmount)
}

func TestCartService_AddItemClampsQuantity(t *testing.T) {
	service, _, product := newCartFixture(t)

	item, err := service.AddItem(testUser, product.ID, -4)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestCartService_AddItemUnknownProduct(t *testing.T) {
	service, _, _ := newCartFixture(t)

	_, err := service.AddItem(testUser, "no-such-product", 1)
	assert.True(t, errors.Is(err, repositories.ErrProductNotFound))

	cart, err := service.GetCart(testUser)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartService_UpdateItem(t *testing.T) {
	service, _, product := newCartFixture(t)

	added, err := service.AddItem(testUser, product.ID, 2)
	require.NoError(t, err)

	item, err := service.UpdateItem(testUser, added.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, item.Quantity)
	assert.Equal(t, 700.0, item.TotalPrice)

	// Quantity is clamped to a minimum of 1.
	item, err = service.UpdateItem(testUser, added.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestCartService_UpdateItemNotFoundLeavesCartUnchanged(t *testing.T) {
	service, _, product := newCartFixture(t)

	_, err := service.AddItem(testUser, product.ID, 2)
	require.NoError(t, err)

	_, err = service.UpdateItem(testUser, "missing-item", 5)
	assert.True(t, errors.Is(err, repositories.ErrCartItemNotFound))

	cart, err := service.GetCart(testUser)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 200.0, cart.TotalAmount)
}

func TestCartService_RemoveItem(t *testing.T) {
	service, _, product := newCartFixture(t)

	added, err := service.AddItem(testUser, product.ID, 2)
	require.NoError(t, err)

	require.NoError(t, service.RemoveItem(testUser, added.ID))

	cart, err := service.GetCart(testUser)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.TotalAmount)

	err = service.RemoveItem(testUser, added.ID)
	assert.True(t, errors.Is(err, repositories.ErrCartItemNotFound))
}

func TestCartService_ClearCartIsIdempotent(t *testing.T) {
	service, _, product := newCartFixture(t)

	_, err := service.AddItem(testUser, product.ID, 3)
	require.NoError(t, err)

	require.NoError(t, service.ClearCart(testUser))
	require.NoError(t, service.ClearCart(testUser))

	cart, err := service.GetCart(testUser)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.TotalAmount)
}

func TestCartService_GetCartEnrichesItems(t *testing.T) {
	service, _, product := newCartFixture(t)

	_, err := service.AddItem(testUser, product.ID, 1)
	require.NoError(t, err)

	cart, err := service.GetCart(testUser)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.NotNil(t, cart.Items[0].Product)
	assert.Equal(t, product.Name, cart.Items[0].Product.Name)
}
