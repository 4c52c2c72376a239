package services

import (
	"fmt"

	"oasis/internal/models"
	"oasis/internal/repositories"
)

// WishlistService handles the products a user saved for later.
type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
	productRepo  repositories.ProductRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(wishlistRepo repositories.WishlistRepository, productRepo repositories.ProductRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// Items retrieves a user's wishlist with products attached.
func (s *WishlistService) Items(userID string) ([]models.WishlistItem, error) {
	return s.wishlistRepo.GetByUser(userID)
}

// Add saves a product on the user's wishlist; repeat adds are no-ops.
func (s *WishlistService) Add(userID, productID string) error {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return fmt.Errorf("product %s not found: %w", productID, err)
	}
	item := &models.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	}
	return s.wishlistRepo.Add(item)
}

// Remove drops a product from the user's wishlist.
func (s *WishlistService) Remove(userID, productID string) error {
	return s.wishlistRepo.Remove(userID, productID)
}
