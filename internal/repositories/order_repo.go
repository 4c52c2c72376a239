package repositories

import (
	"errors"

	"oasis/internal/models"
)

// ErrInsufficientStock is returned by Place when a product's stock does
// not cover the purchased quantity. The whole placement rolls back.
var ErrInsufficientStock = errors.New("insufficient stock")

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetByUser(userID string) ([]models.Order, error)
	GetByID(id, userID string) (*models.Order, error)
	// Place persists the order with its items and decrements product
	// stock as a single unit. Nothing is written on failure.
	Place(order *models.Order) error
	UpdateStatus(id, status string) error
	// ConfirmPayment marks the order confirmed with payment completed,
	// the synthetic transition performed right after placement.
	ConfirmPayment(id string) error
}
