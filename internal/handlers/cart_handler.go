package handlers

import (
	"log"

	"storefront/internal/middleware"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles the per-user cart routes.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// RegisterRoutes registers the cart routes, all of which require
// authentication.
func (h *CartHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	cartRoutes := router.Group("/cart", authRequired)
	cartRoutes.Post("/add", h.HandleAddToCart)
	cartRoutes.Get("/", h.HandleViewCart)
	cartRoutes.Delete("/:product_id", h.HandleRemoveFromCart)
}

// AddToCartRequest represents the request body for adding a product.
// Quantity defaults to 1 when absent; explicit values pass through
// unchecked.
type AddToCartRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  *int `json:"quantity"`
}

// HandleAddToCart adds a product to the caller's cart, merging with any
// existing line for the same product.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing cart request body: %v", err)
		return respondBadBody(c, err)
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	item, err := h.service.AddItem(user.ID, req.ProductID, quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// HandleViewCart lists the caller's cart with current product snapshots.
func (h *CartHandler) HandleViewCart(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	items, err := h.service.ListItems(user.ID)
	if err != nil {
		log.Printf("Error listing cart for user %d: %v", user.ID, err)
		return respondError(c, err)
	}
	return c.JSON(items)
}

// HandleRemoveFromCart deletes one product line from the caller's cart.
func (h *CartHandler) HandleRemoveFromCart(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		return respondBadBody(c, err)
	}

	if err := h.service.RemoveItem(user.ID, productID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item removed from cart"})
}
