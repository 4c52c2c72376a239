package services_test

import (
	"fmt"
	"testing"

	"oasis/internal/models"
	"oasis/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCartRepository is a mock implementation of repositories.CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetByUser(userID string) ([]models.CartItem, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *MockCartRepository) GetByID(id, userID string) (*models.CartItem, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartRepository) GetByUserAndProduct(userID, productID string) (*models.CartItem, error) {
	args := m.Called(userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartRepository) Create(item *models.CartItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockCartRepository) UpdateQuantity(id, userID string, quantity int) error {
	args := m.Called(id, userID, quantity)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(id, userID string) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteByUser(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func TestCartService_AddToCart_NewLine(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewCartService(mockCart, mockProducts)

	product := &models.Product{ID: "prod-1", Name: "Organic Honey", Price: 250.0, StockQuantity: 10, IsActive: true}
	mockProducts.On("GetByID", "prod-1").Return(product, nil).Once()
	mockCart.On("GetByUserAndProduct", "user-1", "prod-1").
		Return(nil, fmt.Errorf("no cart item for product prod-1")).Once()
	mockCart.On("Create", mock.AnythingOfType("*models.CartItem")).Return(nil).Once()

	err := service.AddToCart("user-1", "prod-1", 2)
	assert.NoError(t, err)
	mockCart.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
}

func TestCartService_AddToCart_MergesExistingLine(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewCartService(mockCart, mockProducts)

	product := &models.Product{ID: "prod-1", Name: "Organic Honey", Price: 250.0, StockQuantity: 10, IsActive: true}
	existing := &models.CartItem{ID: "line-1", UserID: "user-1", ProductID: "prod-1", Quantity: 2}

	// Adding 3 more to an existing line of 2 updates it to 5, never
	// creating a second line for the same (user, product).
	mockProducts.On("GetByID", "prod-1").Return(product, nil).Once()
	mockCart.On("GetByUserAndProduct", "user-1", "prod-1").Return(existing, nil).Once()
	mockCart.On("UpdateQuantity", "line-1", "user-1", 5).Return(nil).Once()

	err := service.AddToCart("user-1", "prod-1", 3)
	assert.NoError(t, err)
	mockCart.AssertExpectations(t)
	mockCart.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCartService_AddToCart_InactiveProduct(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewCartService(mockCart, mockProducts)

	product := &models.Product{ID: "prod-1", Name: "Retired Item", Price: 100.0, IsActive: false}
	mockProducts.On("GetByID", "prod-1").Return(product, nil).Once()

	err := service.AddToCart("user-1", "prod-1", 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
	mockCart.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCartService_AddToCart_UnknownProduct(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewCartService(mockCart, mockProducts)

	mockProducts.On("GetByID", "ghost").Return(nil, fmt.Errorf("product with ID ghost not found")).Once()

	err := service.AddToCart("user-1", "ghost", 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCartService_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewCartService(mockCart, mockProducts)

	mockCart.On("Delete", "line-1", "user-1").Return(nil).Once()

	err := service.UpdateQuantity("user-1", "line-1", 0)
	assert.NoError(t, err)
	mockCart.AssertExpectations(t)
	mockCart.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)

	// Negative quantities behave the same way.
	mockCart.On("Delete", "line-2", "user-1").Return(nil).Once()
	err = service.UpdateQuantity("user-1", "line-2", -3)
	assert.NoError(t, err)
	mockCart.AssertExpectations(t)
}

func TestCartService_UpdateQuantity_Persists(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewCartService(mockCart, mockProducts)

	mockCart.On("UpdateQuantity", "line-1", "user-1", 4).Return(nil).Once()

	err := service.UpdateQuantity("user-1", "line-1", 4)
	assert.NoError(t, err)
	mockCart.AssertExpectations(t)
}

func TestCartService_ClearCart(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewCartService(mockCart, mockProducts)

	mockCart.On("DeleteByUser", "user-1").Return(nil).Once()

	err := service.ClearCart("user-1")
	assert.NoError(t, err)
	mockCart.AssertExpectations(t)
}

func TestCartTotal_IndependentOfOrder(t *testing.T) {
	honey := &models.Product{ID: "p1", Price: 500.0}
	tea := &models.Product{ID: "p2", Price: 300.0}

	forward := []models.CartItem{
		{ProductID: "p1", Quantity: 2, Product: honey},
		{ProductID: "p2", Quantity: 1, Product: tea},
	}
	reversed := []models.CartItem{
		{ProductID: "p2", Quantity: 1, Product: tea},
		{ProductID: "p1", Quantity: 2, Product: honey},
	}

	assert.Equal(t, 1300.0, services.CartTotal(forward))
	assert.Equal(t, services.CartTotal(forward), services.CartTotal(reversed))

	assert.Equal(t, 3, services.CartItemCount(forward))
	assert.Equal(t, services.CartItemCount(forward), services.CartItemCount(reversed))
}

func TestCartTotal_EmptyCart(t *testing.T) {
	assert.Equal(t, 0.0, services.CartTotal(nil))
	assert.Equal(t, 0, services.CartItemCount(nil))
}
