package payment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/payment"

	"github.com/stretchr/testify/assert"
)

func TestStripeClient_CreateSession(t *testing.T) {
	var gotForm map[string]string
	var gotAuth, gotIdempotency string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotIdempotency = r.Header.Get("Idempotency-Key")

		assert.NoError(t, r.ParseForm())
		gotForm = map[string]string{}
		for k := range r.PostForm {
			gotForm[k] = r.PostForm.Get(k)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "cs_test_123", "url": "https://checkout.stripe.com/pay/cs_test_123"}`))
	}))
	defer server.Close()

	client := payment.NewStripeClientWithBaseURL("sk_test_key", server.URL)
	session, err := client.CreateSession(context.Background(), payment.SessionParams{
		LineItems: []payment.LineItem{
			{Name: "Laptop", UnitAmount: 99999, Quantity: 2},
		},
		SuccessURL: "http://127.0.0.1:8000/orders/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  "http://127.0.0.1:8000/orders/cancel",
	})
	assert.NoError(t, err)
	assert.Equal(t, "cs_test_123", session.ID)
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_123", session.URL)

	assert.Equal(t, "Bearer sk_test_key", gotAuth)
	assert.NotEmpty(t, gotIdempotency)
	assert.Equal(t, "payment", gotForm["mode"])
	assert.Equal(t, "card", gotForm["payment_method_types[0]"])
	assert.Equal(t, "usd", gotForm["line_items[0][price_data][currency]"])
	assert.Equal(t, "Laptop", gotForm["line_items[0][price_data][product_data][name]"])
	assert.Equal(t, "99999", gotForm["line_items[0][price_data][unit_amount]"])
	assert.Equal(t, "2", gotForm["line_items[0][quantity]"])
	assert.Equal(t, "http://127.0.0.1:8000/orders/success?session_id={CHECKOUT_SESSION_ID}", gotForm["success_url"])
}

func TestStripeClient_CreateSession_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error": {"message": "Your card was declined."}}`))
	}))
	defer server.Close()

	client := payment.NewStripeClientWithBaseURL("sk_test_key", server.URL)
	_, err := client.CreateSession(context.Background(), payment.SessionParams{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Your card was declined.")
}

func TestStripeClient_RetrieveSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/checkout/sessions/cs_test_123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "cs_test_123", "customer_details": {"email": "buyer@example.com"}}`))
	}))
	defer server.Close()

	client := payment.NewStripeClientWithBaseURL("sk_test_key", server.URL)
	details, err := client.RetrieveSession(context.Background(), "cs_test_123")
	assert.NoError(t, err)
	assert.Equal(t, "cs_test_123", details.ID)
	assert.Equal(t, "buyer@example.com", details.CustomerEmail)
}

func TestStripeClient_RetrieveSession_NoCustomerDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "cs_test_456", "customer_details": null}`))
	}))
	defer server.Close()

	client := payment.NewStripeClientWithBaseURL("sk_test_key", server.URL)
	details, err := client.RetrieveSession(context.Background(), "cs_test_456")
	assert.NoError(t, err)
	assert.Equal(t, "", details.CustomerEmail)
}
