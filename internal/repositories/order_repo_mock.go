package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"oasis/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// When given a MockProductRepository it mirrors the GORM transaction:
// Place decrements stock and refuses orders that would oversell.
type MockOrderRepository struct {
	orders   map[string]models.Order
	products *MockProductRepository
	mu       sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository(products *MockProductRepository) *MockOrderRepository {
	return &MockOrderRepository{
		orders:   make(map[string]models.Order),
		products: products,
	}
}

// GetByUser returns a user's orders, newest first.
func (r *MockOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0)
	for _, order := range r.orders {
		if order.UserID == userID {
			orderList = append(orderList, order)
		}
	}
	sort.Slice(orderList, func(i, j int) bool {
		return orderList[i].CreatedAt.After(orderList[j].CreatedAt)
	})
	return orderList, nil
}

// GetByID returns an owned order by its ID.
func (r *MockOrderRepository) GetByID(id, userID string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok || order.UserID != userID {
		return nil, fmt.Errorf("order with ID %s not found", id)
	}
	return &order, nil
}

// Place stores the order and decrements product stock; a shortfall on
// any line leaves the order unstored, matching the GORM rollback.
func (r *MockOrderRepository) Place(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}

	if r.products != nil {
		for _, item := range order.Items {
			product, err := r.products.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product.StockQuantity < item.Quantity {
				return fmt.Errorf("%w for product %s", ErrInsufficientStock, item.ProductID)
			}
		}
		for _, item := range order.Items {
			product, _ := r.products.GetByID(item.ProductID)
			product.StockQuantity -= item.Quantity
			if err := r.products.Update(product); err != nil {
				return err
			}
		}
	}

	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = *order
	return nil
}

// UpdateStatus updates the lifecycle status of an order.
func (r *MockOrderRepository) UpdateStatus(id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order with ID %s not found for status update", id)
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}

// ConfirmPayment marks an order confirmed with its payment completed.
func (r *MockOrderRepository) ConfirmPayment(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order with ID %s not found for payment confirmation", id)
	}
	order.Status = models.OrderStatusConfirmed
	order.PaymentStatus = models.PaymentStatusCompleted
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}
