package payment

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"
	"go.uber.org/zap"
)

var (
	// ErrProviderRejected means Stripe answered, but not with a session.
	ErrProviderRejected = errors.New("stripe rejected checkout session")
	// ErrTransport means no answer came back from Stripe.
	ErrTransport = errors.New("stripe request failed")
)

const (
	CurrencyJPY     = "jpy"
	IntervalMonthly = "month"
)

// LineItem describes the single item a patron checkout sells.
type LineItem struct {
	Name        string
	Description string
	Amount      int64
	// Interval is empty for a one-off payment, or a Stripe recurring
	// interval such as "month" for a subscription.
	Interval string
}

type StripeService struct {
	sessions   session.Client
	successURL string
	cancelURL  string
}

// NewStripeService returns a service bound to its own backend instead of the
// package-level stripe.Key. apiURL may be empty to use api.stripe.com.
func NewStripeService(secretKey, apiURL, successURL, cancelURL string, logger *zap.Logger) *StripeService {
	backendConfig := &stripe.BackendConfig{
		// Failures surface straight to the caller.
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     logger.Sugar(),
	}
	if apiURL != "" {
		backendConfig.URL = stripe.String(apiURL)
	}

	return &StripeService{
		sessions: session.Client{
			B:   stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig),
			Key: secretKey,
		},
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

// CheckoutSessionParams builds the session descriptor for item.
func (s *StripeService) CheckoutSessionParams(item LineItem) *stripe.CheckoutSessionParams {
	mode := stripe.CheckoutSessionModePayment
	var recurring *stripe.CheckoutSessionLineItemPriceDataRecurringParams
	if item.Interval != "" {
		mode = stripe.CheckoutSessionModeSubscription
		recurring = &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
			Interval: stripe.String(item.Interval),
		}
	}

	return &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(mode)),
		SuccessURL:         stripe.String(s.successURL),
		CancelURL:          stripe.String(s.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(CurrencyJPY),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(item.Name),
						Description: stripe.String(item.Description),
					},
					UnitAmount: stripe.Int64(item.Amount),
					Recurring:  recurring,
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
}

func (s *StripeService) CreateCheckoutSession(ctx context.Context, item LineItem) (*stripe.CheckoutSession, error) {
	params := s.CheckoutSessionParams(item)
	params.Context = ctx

	sess, err := s.sessions.New(params)
	if err != nil {
		return nil, classify(err)
	}

	return sess, nil
}

func classify(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return fmt.Errorf("%w: status=%d type=%s code=%s: %s",
			ErrProviderRejected, stripeErr.HTTPStatusCode, stripeErr.Type, stripeErr.Code, stripeErr.Msg)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	// Undecodable upstream bodies land here.
	return fmt.Errorf("%w: %w", ErrProviderRejected, err)
}
