package services

import (
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// Default page sizes for the listing endpoints.
const (
	DefaultCatalogPageSize = 12
	DefaultAdminPageSize   = 10
)

// ProductService handles catalog queries and admin product management.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns one page of products matching the query plus the
// total match count. A missing or non-positive size falls back to the
// given default.
func (s *ProductService) ListProducts(query models.ProductQuery, defaultSize int) ([]models.Product, int, error) {
	return s.repo.List(query.Normalize(defaultSize))
}

// GetProduct retrieves a single product by its ID.
func (s *ProductService) GetProduct(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// Categories returns the distinct category names.
func (s *ProductService) Categories() ([]string, error) {
	return s.repo.Categories()
}

// CreateProduct creates a new product from an admin request.
func (s *ProductService) CreateProduct(req models.ProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Stock:       req.Stock,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct overwrites an existing product with the request fields.
func (s *ProductService) UpdateProduct(id string, req models.ProductRequest) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.ImageURL = req.ImageURL
	product.Category = req.Category
	product.Stock = req.Stock
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
