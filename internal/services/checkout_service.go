package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/payment"
	"storefront/internal/repositories"
	"storefront/pkg/rabbitmq"
)

// CheckoutService validates the cart against current stock and delegates to
// the external payment processor.
type CheckoutService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	provider    payment.Provider
	mqClient    *rabbitmq.Client
	baseURL     string
}

// NewCheckoutService creates a new CheckoutService. mqClient may be nil, in
// which case no events are published.
func NewCheckoutService(
	cartRepo repositories.CartRepository,
	productRepo repositories.ProductRepository,
	provider payment.Provider,
	mqClient *rabbitmq.Client,
	baseURL string,
) *CheckoutService {
	return &CheckoutService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		provider:    provider,
		mqClient:    mqClient,
		baseURL:     baseURL,
	}
}

// Checkout runs the full checkout flow for a user and returns the processor's
// redirect URL. Validation is all-or-nothing: any unavailable line aborts the
// checkout before the processor is contacted. The cart is left untouched on
// success; clearing it is the processor webhook's problem, which this system
// does not implement yet.
func (s *CheckoutService) Checkout(ctx context.Context, userID uint) (string, error) {
	items, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", apperrors.New(apperrors.KindBusinessRule, "cart_empty", "Cart is empty")
	}

	lineItems, total, err := s.validateStock(items)
	if err != nil {
		return "", err
	}

	session, err := s.provider.CreateSession(ctx, payment.SessionParams{
		LineItems:  lineItems,
		SuccessURL: s.baseURL + "/orders/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  s.baseURL + "/orders/cancel",
	})
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindExternal, "checkout_failed", "Checkout failed: "+err.Error(), err)
	}

	s.publishSessionCreated(userID, session.ID, total, len(lineItems))

	return session.URL, nil
}

// validateStock re-reads every product at this instant and builds the
// processor line items. It is the single seam for the read-then-decide stock
// check: there is no locking, so two concurrent checkouts can both pass and
// oversell. A transactional discipline would replace this function only.
func (s *CheckoutService) validateStock(items []models.CartItem) ([]payment.LineItem, float64, error) {
	lineItems := make([]payment.LineItem, 0, len(items))
	var total float64

	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, 0, err
		}
		if err != nil || product.Quantity < item.Quantity {
			return nil, 0, apperrors.Newf(apperrors.KindBusinessRule, "product_unavailable",
				"Product %d not available or out of stock", item.ProductID)
		}

		lineItems = append(lineItems, payment.LineItem{
			Name: product.Name,
			// The processor wants minor units; truncation toward zero
			// matches the historical behavior.
			UnitAmount: int64(product.Price * 100),
			Quantity:   item.Quantity,
		})
		total += product.Price * float64(item.Quantity)
	}
	return lineItems, total, nil
}

// publishSessionCreated emits a checkout event. Publish failures are logged
// and swallowed; the checkout already succeeded.
func (s *CheckoutService) publishSessionCreated(userID uint, sessionID string, total float64, lines int) {
	if s.mqClient == nil {
		return
	}

	event := map[string]interface{}{
		"type":       "checkout.session_created",
		"user_id":    userID,
		"session_id": sessionID,
		"total":      total,
		"lines":      lines,
		"created_at": time.Now().UTC().Format(time.RFC3339),
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal checkout event: %v", err)
		return
	}
	if err := s.mqClient.PublishCheckoutEvent(body); err != nil {
		log.Printf("Warning: failed to publish checkout event for session %s: %v", sessionID, err)
	} else {
		log.Printf("Published checkout event for session %s", sessionID)
	}
}

// PaymentSuccess retrieves a finished session and reports a confirmation
// message plus the customer's email, empty when the processor has none. No
// order record is created.
func (s *CheckoutService) PaymentSuccess(ctx context.Context, sessionID string) (string, string, error) {
	details, err := s.provider.RetrieveSession(ctx, sessionID)
	if err != nil {
		return "", "", apperrors.Wrap(apperrors.KindExternal, "session_lookup_failed",
			"Failed to retrieve payment session: "+err.Error(), err)
	}
	return "Payment successful", details.CustomerEmail, nil
}
