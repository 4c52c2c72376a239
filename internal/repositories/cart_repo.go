package repositories

import (
	"oasis/internal/models"
)

// CartRepository defines the interface for cart line data access.
// Every operation is scoped by the owning user ID.
type CartRepository interface {
	GetByUser(userID string) ([]models.CartItem, error)
	GetByID(id, userID string) (*models.CartItem, error)
	GetByUserAndProduct(userID, productID string) (*models.CartItem, error)
	Create(item *models.CartItem) error
	UpdateQuantity(id, userID string, quantity int) error
	Delete(id, userID string) error
	DeleteByUser(userID string) error
}

// WishlistRepository defines the interface for wishlist data access.
type WishlistRepository interface {
	GetByUser(userID string) ([]models.WishlistItem, error)
	Add(item *models.WishlistItem) error
	Remove(userID, productID string) error
}
