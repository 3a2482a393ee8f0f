package models

import (
	"github.com/mamonis/studio-backend/pkg/patron"
)

// CreateCheckoutSessionRequest is the raw body of POST /create-checkout-session.
// Both fields stay loosely typed so a wrong JSON type is reported as a
// validation failure rather than a decode failure.
type CreateCheckoutSessionRequest struct {
	Amount interface{} `json:"amount"`
	Type   interface{} `json:"type"`
}

// PatronCheckout is a checkout request after parsing.
// Field order is validation order.
type PatronCheckout struct {
	Amount int64       `validate:"gte=100"`
	Type   patron.Type `validate:"patron_type"`
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
