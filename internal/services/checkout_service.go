package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"oasis/internal/models"
	"oasis/internal/repositories"
	"oasis/pkg/rabbitmq"
)

// Checkout steps. Progression is shipping -> payment -> confirmation,
// with a single backward transition payment -> shipping.
const (
	StepShipping     = "shipping"
	StepPayment      = "payment"
	StepConfirmation = "confirmation"
)

// CheckoutSession is the per-user state of one checkout run. It lives
// in memory from Begin until a fresh Begin replaces it.
type CheckoutSession struct {
	UserID       string       `json:"user_id"`
	Step         string       `json:"step"`
	Shipping     ShippingInfo `json:"shipping"`
	PromoCode    string       `json:"promo_code,omitempty"`
	discountRate float64
	placing      bool
}

// CheckoutService drives the shipping -> payment -> confirmation flow
// and turns a cart into an order.
type CheckoutService struct {
	cartRepo  repositories.CartRepository
	orderRepo repositories.OrderRepository
	userRepo  repositories.UserRepository
	mqClient  *rabbitmq.Client

	mu       sync.Mutex
	sessions map[string]*CheckoutSession

	paymentDelay time.Duration
}

// NewCheckoutService creates a new CheckoutService. The RabbitMQ client
// may be nil; event publishing is then skipped.
func NewCheckoutService(
	cartRepo repositories.CartRepository,
	orderRepo repositories.OrderRepository,
	userRepo repositories.UserRepository,
	mqClient *rabbitmq.Client,
) *CheckoutService {
	return &CheckoutService{
		cartRepo:     cartRepo,
		orderRepo:    orderRepo,
		userRepo:     userRepo,
		mqClient:     mqClient,
		sessions:     make(map[string]*CheckoutSession),
		paymentDelay: 2 * time.Second, // Simulated payment round-trip
	}
}

// SetPaymentDelay overrides the simulated payment processing delay.
func (s *CheckoutService) SetPaymentDelay(d time.Duration) {
	s.paymentDelay = d
}

// Begin starts a checkout for the user, replacing any previous session.
// The shipping form is prefilled from the saved profile. An empty cart
// cannot enter checkout.
func (s *CheckoutService) Begin(userID string) (*CheckoutSession, error) {
	items, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	session := &CheckoutSession{
		UserID: userID,
		Step:   StepShipping,
	}
	if user, err := s.userRepo.GetByID(userID); err == nil {
		session.Shipping = ShippingInfo{
			FullName: user.FullName,
			Email:    user.Email,
			Phone:    user.Phone,
			Address:  user.Address,
			City:     user.City,
			State:    user.State,
			Pincode:  user.Pincode,
		}
	}

	s.mu.Lock()
	s.sessions[userID] = session
	snapshot := s.snapshot(session)
	s.mu.Unlock()

	return snapshot, nil
}

// Session returns the user's current checkout session.
func (s *CheckoutService) Session(userID string) (*CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		return nil, fmt.Errorf("no checkout in progress")
	}
	return s.snapshot(session), nil
}

// SubmitShipping validates the shipping form and advances the session
// from the shipping step to the payment step. A violated rule blocks
// the transition and is reported by name.
func (s *CheckoutService) SubmitShipping(userID string, info ShippingInfo) error {
	if err := info.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		return fmt.Errorf("no checkout in progress")
	}
	if session.Step != StepShipping {
		return fmt.Errorf("checkout is not at the shipping step")
	}
	session.Shipping = info
	session.Step = StepPayment
	return nil
}

// BackToShipping is the only backward transition, payment -> shipping.
func (s *CheckoutService) BackToShipping(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		return fmt.Errorf("no checkout in progress")
	}
	if session.Step != StepPayment {
		return fmt.Errorf("checkout is not at the payment step")
	}
	session.Step = StepShipping
	return nil
}

// ApplyPromo resolves a promo code against the session. The discount is
// ephemeral: it lives only in the session and is re-derived from the
// subtotal at placement time.
func (s *CheckoutService) ApplyPromo(userID, code string) (OrderQuote, error) {
	rate, err := PromoRate(code)
	if err != nil {
		return OrderQuote{}, err
	}

	s.mu.Lock()
	session, ok := s.sessions[userID]
	if !ok {
		s.mu.Unlock()
		return OrderQuote{}, fmt.Errorf("no checkout in progress")
	}
	session.PromoCode = code
	session.discountRate = rate
	s.mu.Unlock()

	return s.Quote(userID)
}

// Quote prices the user's cart under the session's discount.
func (s *CheckoutService) Quote(userID string) (OrderQuote, error) {
	s.mu.Lock()
	session, ok := s.sessions[userID]
	if !ok {
		s.mu.Unlock()
		return OrderQuote{}, fmt.Errorf("no checkout in progress")
	}
	rate := session.discountRate
	s.mu.Unlock()

	items, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return OrderQuote{}, fmt.Errorf("failed to load cart: %w", err)
	}
	return QuoteFor(CartTotal(items), rate), nil
}

// PlaceOrder turns the cart into an order. The order row, its item
// snapshots and the stock decrements are written atomically; the
// profile write-back, cart clear and event publish that follow are
// best-effort and only logged on failure. After the simulated payment
// delay the order is marked confirmed with payment completed.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID, paymentMethod string) (*models.Order, error) {
	if !models.ValidPaymentMethods[paymentMethod] {
		return nil, fmt.Errorf("unsupported payment method: %s", paymentMethod)
	}

	s.mu.Lock()
	session, ok := s.sessions[userID]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("no checkout in progress")
	}
	if session.Step != StepPayment {
		s.mu.Unlock()
		return nil, fmt.Errorf("checkout is not at the payment step")
	}
	if session.placing {
		s.mu.Unlock()
		return nil, fmt.Errorf("order placement already in progress")
	}
	session.placing = true
	shipping := session.Shipping
	rate := session.discountRate
	s.mu.Unlock()

	order, err := s.place(ctx, userID, paymentMethod, shipping, rate)

	s.mu.Lock()
	session.placing = false
	if err == nil {
		session.Step = StepConfirmation
	}
	s.mu.Unlock()

	return order, err
}

func (s *CheckoutService) place(ctx context.Context, userID, paymentMethod string, shipping ShippingInfo, discountRate float64) (*models.Order, error) {
	items, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	quote := QuoteFor(CartTotal(items), discountRate)

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if item.Product == nil {
			return nil, fmt.Errorf("product %s no longer exists", item.ProductID)
		}
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Product.Price, // Price at the time of purchase
		})
	}

	order := &models.Order{
		UserID:          userID,
		Items:           orderItems,
		TotalAmount:     quote.Total,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
		PaymentMethod:   paymentMethod,
		ShippingAddress: shipping.Address,
		ShippingCity:    shipping.City,
		ShippingState:   shipping.State,
		ShippingPincode: shipping.Pincode,
		Phone:           shipping.Phone,
	}

	if err := s.orderRepo.Place(order); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	// Best-effort follow-ups. The order exists; these must not undo it.
	profile := models.Profile{
		FullName: shipping.FullName,
		Phone:    shipping.Phone,
		Address:  shipping.Address,
		City:     shipping.City,
		State:    shipping.State,
		Pincode:  shipping.Pincode,
	}
	if err := s.userRepo.UpdateProfile(userID, profile); err != nil {
		log.Printf("Warning: failed to save shipping profile for user %s: %v", userID, err)
	}
	if err := s.cartRepo.DeleteByUser(userID); err != nil {
		log.Printf("Warning: failed to clear cart for user %s: %v", userID, err)
	}
	s.publishOrderEvent("order.created", order)

	if err := s.simulatePayment(ctx); err != nil {
		return order, fmt.Errorf("payment interrupted: %w", err)
	}

	if err := s.orderRepo.ConfirmPayment(order.ID); err != nil {
		return order, fmt.Errorf("failed to confirm payment for order %s: %w", order.ID, err)
	}
	order.Status = models.OrderStatusConfirmed
	order.PaymentStatus = models.PaymentStatusCompleted
	s.publishOrderEvent("order.confirmed", order)

	return order, nil
}

// simulatePayment stands in for the payment-gateway round trip.
func (s *CheckoutService) simulatePayment(ctx context.Context) error {
	if s.paymentDelay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.paymentDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *CheckoutService) publishOrderEvent(event string, order *models.Order) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
		"total":    order.TotalAmount,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", event, err)
		return
	}
	if err := s.mqClient.Publish(event, body); err != nil {
		log.Printf("Warning: failed to publish %s event for order %s: %v", event, order.ID, err)
	}
}

// snapshot copies a session for callers outside the lock.
func (s *CheckoutService) snapshot(session *CheckoutSession) *CheckoutSession {
	copied := *session
	copied.placing = false
	return &copied
}
