package services

import (
	"fmt"

	"oasis/internal/models"
	"oasis/internal/repositories"
)

// CartService handles business logic for the shopping cart. The store
// is the single source of truth; reads always reflect persisted state.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Items retrieves all cart lines for a user with products attached.
func (s *CartService) Items(userID string) ([]models.CartItem, error) {
	return s.cartRepo.GetByUser(userID)
}

// AddToCart adds a product to the user's cart. A repeated add merges
// into the existing line, so one (user, product) pair never holds two
// lines.
func (s *CartService) AddToCart(userID, productID string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return fmt.Errorf("product %s not found: %w", productID, err)
	}
	if !product.IsActive {
		return fmt.Errorf("product %s is not available", product.Name)
	}

	if existing, err := s.cartRepo.GetByUserAndProduct(userID, productID); err == nil && existing != nil {
		return s.UpdateQuantity(userID, existing.ID, existing.Quantity+quantity)
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Create(item); err != nil {
		return fmt.Errorf("failed to add item to cart: %w", err)
	}
	return nil
}

// UpdateQuantity sets a new quantity on an owned cart line. A quantity
// of zero or less removes the line.
func (s *CartService) UpdateQuantity(userID, itemID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveFromCart(userID, itemID)
	}
	if err := s.cartRepo.UpdateQuantity(itemID, userID, quantity); err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	return nil
}

// RemoveFromCart deletes a cart line scoped to its owner.
func (s *CartService) RemoveFromCart(userID, itemID string) error {
	if err := s.cartRepo.Delete(itemID, userID); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

// ClearCart deletes every cart line for a user.
func (s *CartService) ClearCart(userID string) error {
	if err := s.cartRepo.DeleteByUser(userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// CartTotal sums price x quantity over the given lines.
func CartTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		if item.Product != nil {
			total += item.Product.Price * float64(item.Quantity)
		}
	}
	return total
}

// CartItemCount sums quantities over the given lines.
func CartItemCount(items []models.CartItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
