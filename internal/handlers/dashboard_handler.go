package handlers

import (
	"fmt"
	"log"

	"oasis/internal/models"
	"oasis/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Number of recent orders shown on the dashboard.
const recentOrderLimit = 5

// DashboardHandler handles HTTP requests for the user dashboard.
type DashboardHandler struct {
	authService  *services.AuthService
	orderService *services.OrderService
	validate     *validator.Validate
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(authService *services.AuthService, orderService *services.OrderService) *DashboardHandler {
	return &DashboardHandler{
		authService:  authService,
		orderService: orderService,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the dashboard routes with the Fiber app.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/dashboard", h.HandleGetDashboard)
	router.Get("/profile", h.HandleGetProfile)
	router.Put("/profile", h.HandleUpdateProfile)
}

// HandleGetDashboard returns purchase stats, the most recent orders and
// the saved profile in one response.
func (h *DashboardHandler) HandleGetDashboard(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Please log in to view your dashboard",
		})
	}

	stats, err := h.orderService.Stats(userID)
	if err != nil {
		log.Printf("Error computing stats for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load dashboard",
			"error":   err.Error(),
		})
	}

	recent, err := h.orderService.RecentOrders(userID, recentOrderLimit)
	if err != nil {
		log.Printf("Error loading recent orders for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load dashboard",
			"error":   err.Error(),
		})
	}

	profile, err := h.authService.GetProfile(userID)
	if err != nil {
		log.Printf("Error loading profile for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load dashboard",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"stats":         stats,
		"recent_orders": recent,
		"profile":       profile,
	})
}

// HandleGetProfile returns the user's saved profile.
func (h *DashboardHandler) HandleGetProfile(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Please log in to view your profile",
		})
	}

	profile, err := h.authService.GetProfile(userID)
	if err != nil {
		log.Printf("Error loading profile for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load profile",
			"error":   err.Error(),
		})
	}
	return c.JSON(profile)
}

// HandleUpdateProfile saves the profile fields, which become the
// default shipping address on the next checkout.
func (h *DashboardHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Please log in to update your profile",
		})
	}

	var profile models.Profile
	if err := c.BodyParser(&profile); err != nil {
		log.Printf("Error parsing profile request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(profile); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if err := h.authService.UpdateProfile(userID, profile); err != nil {
		log.Printf("Error updating profile for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update profile",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
	})
}
