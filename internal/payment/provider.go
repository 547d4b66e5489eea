// Package payment abstracts the external payment processor. The checkout
// flow only constructs line items and redirect URLs; session semantics
// belong to the processor.
package payment

import "context"

// LineItem is one purchasable entry of a checkout session. UnitAmount is
// expressed in minor currency units (cents).
type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int
}

// SessionParams carries everything needed to open a redirect session.
type SessionParams struct {
	LineItems  []LineItem
	SuccessURL string
	CancelURL  string
}

// Session is the processor's answer to a create call.
type Session struct {
	ID  string
	URL string
}

// SessionDetails is the processor's answer to a retrieve call.
type SessionDetails struct {
	ID            string
	CustomerEmail string
}

// Provider creates and retrieves hosted checkout sessions.
type Provider interface {
	CreateSession(ctx context.Context, params SessionParams) (*Session, error)
	RetrieveSession(ctx context.Context, sessionID string) (*SessionDetails, error)
}
