package handlers

import (
	"log"

	"storefront/internal/middleware"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles checkout and the payment redirect endpoints.
type OrderHandler struct {
	service *services.CheckoutService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.CheckoutService) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterRoutes registers the order routes. Checkout requires
// authentication; the redirect endpoints are public because the payment
// processor's hosted page calls back into them.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/checkout", authRequired, h.HandleCheckout)
	orderRoutes.Get("/success", h.HandlePaymentSuccess)
	orderRoutes.Get("/cancel", h.HandlePaymentCancel)
}

// HandleCheckout validates the caller's cart and opens a payment session,
// returning the redirect URL.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	checkoutURL, err := h.service.Checkout(c.Context(), user.ID)
	if err != nil {
		log.Printf("Checkout failed for user %d: %v", user.ID, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"checkout_url": checkoutURL})
}

// HandlePaymentSuccess reports the outcome of a finished payment session.
func (h *OrderHandler) HandlePaymentSuccess(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"code":   "validation_error",
			"detail": "session_id query parameter is required",
		})
	}

	message, email, err := h.service.PaymentSuccess(c.Context(), sessionID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": message, "email": email})
}

// HandlePaymentCancel acknowledges a canceled or failed payment.
func (h *OrderHandler) HandlePaymentCancel(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Payment canceled or failed"})
}
