package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storefront/internal/models"
	"storefront/internal/services"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(query models.ProductQuery) ([]models.Product, int, error) {
	args := m.Called(query)
	return args.Get(0).([]models.Product), args.Int(1), args.Error(2)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Categories() ([]string, error) {
	args := m.Called()
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProductService_ListProducts_DefaultsSize(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expected := []models.Product{
		{ID: "1", Name: "Product A", Price: 10.0, Stock: 100},
		{ID: "2", Name: "Product B", Price: 20.0, Stock: 50},
	}

	// A zero size must be replaced with the catalog default before the
	// query reaches the repository.
	wantQuery := models.ProductQuery{Size: services.DefaultCatalogPageSize}
	mockRepo.On("List", wantQuery).Return(expected, 2, nil).Once()

	products, total, err := service.ListProducts(models.ProductQuery{}, services.DefaultCatalogPageSize)

	assert.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListProducts_NegativePageClamped(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	wantQuery := models.ProductQuery{Page: 0, Size: 5}
	mockRepo.On("List", wantQuery).Return([]models.Product{}, 0, nil).Once()

	_, _, err := service.ListProducts(models.ProductQuery{Page: -3, Size: 5}, services.DefaultCatalogPageSize)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expected := &models.Product{ID: "1", Name: "Product A", Price: 10.0, Stock: 100}

	mockRepo.On("GetByID", "1").Return(expected, nil).Once()
	product, err := service.GetProduct("1")
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("product 99 not found")).Once()
	product, err = service.GetProduct("99")
	assert.Error(t, err)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	req := models.ProductRequest{
		Name:     "New Product",
		Price:    50.0,
		ImageURL: "https://example.com/p.jpg",
		Category: "Electronics",
		Stock:    20,
	}

	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	product, err := service.CreateProduct(req)
	assert.NoError(t, err)
	assert.Equal(t, req.Name, product.Name)
	assert.Equal(t, req.Price, product.Price)
	assert.Equal(t, req.Stock, product.Stock)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	existing := &models.Product{ID: "1", Name: "Old Name", Price: 12.0, Stock: 95}
	req := models.ProductRequest{
		Name:     "Updated Name",
		Price:    15.0,
		ImageURL: "https://example.com/p.jpg",
		Stock:    90,
	}

	mockRepo.On("GetByID", "1").Return(existing, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	product, err := service.UpdateProduct("1", req)
	assert.NoError(t, err)
	assert.Equal(t, "1", product.ID)
	assert.Equal(t, "Updated Name", product.Name)
	assert.Equal(t, 15.0, product.Price)
	mockRepo.AssertExpectations(t)

	// Updating a missing product surfaces the repository error and never
	// reaches Update.
	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("product 99 not found")).Once()
	product, err = service.UpdateProduct("99", req)
	assert.Error(t, err)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("Delete", "1").Return(nil).Once()
	assert.NoError(t, service.DeleteProduct("1"))

	mockRepo.On("Delete", "99").Return(fmt.Errorf("product 99 not found")).Once()
	assert.Error(t, service.DeleteProduct("99"))
	mockRepo.AssertExpectations(t)
}
