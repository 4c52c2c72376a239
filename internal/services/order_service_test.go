package services_test

import (
	"testing"

	"oasis/internal/models"
	"oasis/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id, userID string) (*models.Order, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Place(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(id, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) ConfirmPayment(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func orderHistory() []models.Order {
	honey := &models.Product{ID: "p1", Name: "Organic Honey"}
	tea := &models.Product{ID: "p2", Name: "Green Tea"}
	return []models.Order{
		{
			ID:          "order-3",
			UserID:      "user-1",
			Status:      models.OrderStatusConfirmed,
			TotalAmount: 1300.0,
			Items:       []models.OrderItem{{ProductID: "p1", Product: honey, Quantity: 2}},
		},
		{
			ID:          "order-2",
			UserID:      "user-1",
			Status:      models.OrderStatusDelivered,
			TotalAmount: 599.0,
			Items:       []models.OrderItem{{ProductID: "p2", Product: tea, Quantity: 1}},
		},
		{
			ID:          "order-1",
			UserID:      "user-1",
			Status:      models.OrderStatusDelivered,
			TotalAmount: 250.0,
			Items:       []models.OrderItem{{ProductID: "p1", Product: honey, Quantity: 1}},
		},
	}
}

func TestOrderService_OrdersByUser(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo)

	mockRepo.On("GetByUser", "user-1").Return(orderHistory(), nil)

	orders, err := service.OrdersByUser("user-1", "", "")
	assert.NoError(t, err)
	assert.Len(t, orders, 3)
}

func TestOrderService_OrdersByUser_StatusFilter(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo)

	mockRepo.On("GetByUser", "user-1").Return(orderHistory(), nil)

	orders, err := service.OrdersByUser("user-1", models.OrderStatusDelivered, "")
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	for _, order := range orders {
		assert.Equal(t, models.OrderStatusDelivered, order.Status)
	}
}

func TestOrderService_OrdersByUser_Search(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo)

	mockRepo.On("GetByUser", "user-1").Return(orderHistory(), nil)

	// Matches against product names, case-insensitively.
	orders, err := service.OrdersByUser("user-1", "", "honey")
	assert.NoError(t, err)
	assert.Len(t, orders, 2)

	// Matches against the order ID too.
	orders, err = service.OrdersByUser("user-1", "", "order-2")
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, "order-2", orders[0].ID)

	// Status and search combine.
	orders, err = service.OrdersByUser("user-1", models.OrderStatusDelivered, "honey")
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, "order-1", orders[0].ID)
}

func TestOrderService_Stats(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo)

	mockRepo.On("GetByUser", "user-1").Return(orderHistory(), nil)

	stats, err := service.Stats("user-1")
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 2149.0, stats.TotalSpent)
	assert.Equal(t, 2, stats.DeliveredOrders)
}

func TestOrderService_Stats_NoOrders(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo)

	mockRepo.On("GetByUser", "user-2").Return([]models.Order{}, nil)

	stats, err := service.Stats("user-2")
	assert.NoError(t, err)
	assert.Equal(t, services.DashboardStats{}, stats)
}

func TestOrderService_RecentOrders(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo)

	mockRepo.On("GetByUser", "user-1").Return(orderHistory(), nil)

	orders, err := service.RecentOrders("user-1", 2)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, "order-3", orders[0].ID)

	// A limit beyond the history returns everything.
	orders, err = service.RecentOrders("user-1", 10)
	assert.NoError(t, err)
	assert.Len(t, orders, 3)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo)

	mockRepo.On("UpdateStatus", "order-1", models.OrderStatusShipped).Return(nil).Once()

	assert.NoError(t, service.UpdateOrderStatus("order-1", models.OrderStatusShipped))
	mockRepo.AssertExpectations(t)
}

func TestOrderService_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo)

	err := service.UpdateOrderStatus("order-1", "teleported")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order status")
	mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}
