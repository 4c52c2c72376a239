package services_test

import (
	"fmt"
	"testing"

	"oasis/internal/models"
	"oasis/internal/repositories"
	"oasis/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(filter repositories.ProductFilter) ([]models.Product, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetFeatured() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
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

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll() ([]models.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id string) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func TestProductService_ListProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	service := services.NewProductService(mockRepo, mockCategories)

	filter := repositories.ProductFilter{
		Search:   "honey",
		MinPrice: 100,
		SortBy:   repositories.SortByPriceLow,
	}
	expected := []models.Product{
		{ID: "p1", Name: "Organic Honey", Price: 250.0},
		{ID: "p2", Name: "Forest Honey", Price: 450.0},
	}
	mockRepo.On("GetAll", filter).Return(expected, nil).Once()

	products, err := service.ListProducts(filter)
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_FeaturedProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, new(MockCategoryRepository))

	expected := []models.Product{{ID: "p1", Name: "Organic Honey", IsFeatured: true}}
	mockRepo.On("GetFeatured").Return(expected, nil).Once()

	products, err := service.FeaturedProducts()
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, new(MockCategoryRepository))

	product := &models.Product{ID: "p1", Name: "Organic Honey"}
	mockRepo.On("GetByID", "p1").Return(product, nil).Once()
	mockRepo.On("GetByID", "missing").Return(nil, fmt.Errorf("product with ID missing not found")).Once()

	found, err := service.GetProductByID("p1")
	assert.NoError(t, err)
	assert.Equal(t, product, found)

	_, err = service.GetProductByID("missing")
	assert.Error(t, err)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, new(MockCategoryRepository))

	product := &models.Product{Name: "Cold-Pressed Oil", Price: 350.0}
	mockRepo.On("Create", product).Return(nil).Once()

	assert.NoError(t, service.CreateProduct(product))
	mockRepo.AssertExpectations(t)
}

func TestProductService_Categories(t *testing.T) {
	mockCategories := new(MockCategoryRepository)
	service := services.NewProductService(new(MockProductRepository), mockCategories)

	expected := []models.Category{{ID: "c1", Name: "Pantry"}}
	mockCategories.On("GetAll").Return(expected, nil).Once()

	categories, err := service.ListCategories()
	assert.NoError(t, err)
	assert.Equal(t, expected, categories)

	category := &models.Category{Name: "Beverages"}
	mockCategories.On("Create", category).Return(nil).Once()
	assert.NoError(t, service.CreateCategory(category))
	mockCategories.AssertExpectations(t)
}
