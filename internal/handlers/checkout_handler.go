package handlers

import (
	"log"
	"strings"

	"oasis/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler handles HTTP requests for the checkout flow.
type CheckoutHandler struct {
	service  *services.CheckoutService
	validate *validator.Validate
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(service *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the checkout routes with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	checkoutRoutes := router.Group("/checkout")
	checkoutRoutes.Post("/", h.HandleBegin)
	checkoutRoutes.Get("/", h.HandleSession)
	checkoutRoutes.Post("/shipping", h.HandleSubmitShipping)
	checkoutRoutes.Post("/back", h.HandleBackToShipping)
	checkoutRoutes.Post("/promo", h.HandleApplyPromo)
	checkoutRoutes.Post("/place", h.HandlePlaceOrder)
}

// HandleBegin starts a checkout session for the user's cart.
func (h *CheckoutHandler) HandleBegin(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Please log in to checkout",
		})
	}

	session, err := h.service.Begin(userID)
	if err != nil {
		log.Printf("Error beginning checkout for user %s: %v", userID, err)
		if strings.Contains(err.Error(), "cart is empty") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Your cart is empty",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not start checkout",
			"error":   err.Error(),
		})
	}

	quote, err := h.service.Quote(userID)
	if err != nil {
		log.Printf("Error quoting checkout for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not price checkout",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"session": session,
		"quote":   quote,
	})
}

// HandleSession returns the current checkout session and its quote.
func (h *CheckoutHandler) HandleSession(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Please log in to checkout",
		})
	}

	session, err := h.service.Session(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No checkout in progress",
		})
	}

	quote, err := h.service.Quote(userID)
	if err != nil {
		log.Printf("Error quoting checkout for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not price checkout",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"session": session,
		"quote":   quote,
	})
}

// HandleSubmitShipping validates the shipping form and advances to the
// payment step. A violated rule is reported by name with 422.
func (h *CheckoutHandler) HandleSubmitShipping(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Please log in to checkout",
		})
	}

	var info services.ShippingInfo
	if err := c.BodyParser(&info); err != nil {
		log.Printf("Error parsing shipping request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.SubmitShipping(userID, info); err != nil {
		if strings.Contains(err.Error(), "no checkout") || strings.Contains(err.Error(), "not at the") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Shipping validation failed",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Shipping information saved",
		"step":    services.StepPayment,
	})
}

// HandleBackToShipping moves the session from payment back to shipping.
func (h *CheckoutHandler) HandleBackToShipping(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Please log in to checkout",
		})
	}

	if err := h.service.BackToShipping(userID); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Returned to shipping",
		"step":    services.StepShipping,
	})
}

// ApplyPromoRequest represents the request body for a promo code.
type ApplyPromoRequest struct {
	Code string `json:"code" validate:"required"`
}

// HandleApplyPromo applies a promo code to the checkout session.
func (h *CheckoutHandler) HandleApplyPromo(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Please log in to checkout",
		})
	}

	var req ApplyPromoRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing promo request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Promo code is required",
		})
	}

	quote, err := h.service.ApplyPromo(userID, req.Code)
	if err != nil {
		if strings.Contains(err.Error(), "invalid promo code") {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": "Invalid promo code",
			})
		}
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Promo code applied",
		"quote":   quote,
	})
}

// PlaceOrderRequest represents the request body for order placement.
type PlaceOrderRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
}

// HandlePlaceOrder runs the order placement sequence and returns the
// confirmed order.
func (h *CheckoutHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Please log in to checkout",
		})
	}

	var req PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing place-order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Payment method is required",
		})
	}

	order, err := h.service.PlaceOrder(c.Context(), userID, req.PaymentMethod)
	if err != nil {
		log.Printf("Error placing order for user %s: %v", userID, err)
		switch {
		case strings.Contains(err.Error(), "insufficient stock"):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Order failed: not enough stock for one of your items",
				"error":   err.Error(),
			})
		case strings.Contains(err.Error(), "unsupported payment method"):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		case strings.Contains(err.Error(), "no checkout") ||
			strings.Contains(err.Error(), "not at the") ||
			strings.Contains(err.Error(), "already in progress"):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to place order. Please try again.",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed successfully",
		"order":   order,
		"step":    services.StepConfirmation,
	})
}
