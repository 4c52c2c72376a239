package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"oasis/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
// Product lookups resolve through an optional MockProductRepository so
// GetByUser can attach product records the way the GORM preload does.
type MockCartRepository struct {
	items    map[string]models.CartItem
	products *MockProductRepository
	mu       sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository(products *MockProductRepository) *MockCartRepository {
	return &MockCartRepository{
		items:    make(map[string]models.CartItem),
		products: products,
	}
}

// GetByUser returns all cart lines for a user in insertion order.
func (r *MockCartRepository) GetByUser(userID string) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itemList := make([]models.CartItem, 0)
	for _, item := range r.items {
		if item.UserID != userID {
			continue
		}
		r.attachProduct(&item)
		itemList = append(itemList, item)
	}
	sort.Slice(itemList, func(i, j int) bool {
		return itemList[i].CreatedAt.Before(itemList[j].CreatedAt)
	})
	return itemList, nil
}

// GetByID returns an owned cart line by its ID.
func (r *MockCartRepository) GetByID(id, userID string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return nil, fmt.Errorf("cart item with ID %s not found", id)
	}
	r.attachProduct(&item)
	return &item, nil
}

// GetByUserAndProduct returns the line for a (user, product) pair, if any.
func (r *MockCartRepository) GetByUserAndProduct(userID, productID string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			r.attachProduct(&item)
			return &item, nil
		}
	}
	return nil, fmt.Errorf("no cart item for product %s", productID)
}

// Create adds a new cart line.
func (r *MockCartRepository) Create(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()
	r.items[item.ID] = *item
	return nil
}

// UpdateQuantity persists a new quantity for an owned cart line.
func (r *MockCartRepository) UpdateQuantity(id, userID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return fmt.Errorf("cart item with ID %s not found for update", id)
	}
	item.Quantity = quantity
	r.items[id] = item
	return nil
}

// Delete removes an owned cart line.
func (r *MockCartRepository) Delete(id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return fmt.Errorf("cart item with ID %s not found for deletion", id)
	}
	delete(r.items, id)
	return nil
}

// DeleteByUser removes every cart line belonging to a user.
func (r *MockCartRepository) DeleteByUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *MockCartRepository) attachProduct(item *models.CartItem) {
	if r.products == nil {
		return
	}
	if product, err := r.products.GetByID(item.ProductID); err == nil {
		item.Product = product
	}
}
