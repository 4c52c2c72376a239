package services

import (
	"fmt"
	"strings"

	"oasis/internal/models"
	"oasis/internal/repositories"
)

// DashboardStats summarizes a user's purchase history.
type DashboardStats struct {
	TotalOrders     int     `json:"total_orders"`
	TotalSpent      float64 `json:"total_spent"`
	DeliveredOrders int     `json:"delivered_orders"`
}

// OrderService handles business logic for order history and fulfillment.
type OrderService struct {
	orderRepo repositories.OrderRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
	}
}

// OrdersByUser retrieves a user's orders, optionally narrowed by status
// and by a search term matched against the order ID and product names.
func (s *OrderService) OrdersByUser(userID, status, search string) ([]models.Order, error) {
	orders, err := s.orderRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	if status == "" && search == "" {
		return orders, nil
	}

	filtered := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if status != "" && order.Status != status {
			continue
		}
		if search != "" && !orderMatches(order, search) {
			continue
		}
		filtered = append(filtered, order)
	}
	return filtered, nil
}

func orderMatches(order models.Order, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(order.ID), needle) {
		return true
	}
	for _, item := range order.Items {
		if item.Product != nil && strings.Contains(strings.ToLower(item.Product.Name), needle) {
			return true
		}
	}
	return false
}

// OrderByID retrieves a single order scoped to its owner.
func (s *OrderService) OrderByID(id, userID string) (*models.Order, error) {
	return s.orderRepo.GetByID(id, userID)
}

// Stats aggregates dashboard numbers over a user's order history.
func (s *OrderService) Stats(userID string) (DashboardStats, error) {
	orders, err := s.orderRepo.GetByUser(userID)
	if err != nil {
		return DashboardStats{}, err
	}

	stats := DashboardStats{TotalOrders: len(orders)}
	for _, order := range orders {
		stats.TotalSpent += order.TotalAmount
		if order.Status == models.OrderStatusDelivered {
			stats.DeliveredOrders++
		}
	}
	return stats, nil
}

// RecentOrders returns the newest orders up to the given limit.
func (s *OrderService) RecentOrders(userID string, limit int) ([]models.Order, error) {
	orders, err := s.orderRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

// UpdateOrderStatus applies an externally driven fulfillment transition.
func (s *OrderService) UpdateOrderStatus(id, status string) error {
	if !models.ValidOrderStatuses[status] {
		return fmt.Errorf("invalid order status: %s", status)
	}
	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	return nil
}
