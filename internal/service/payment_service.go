package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mamonis/studio-backend/internal/models"
	"github.com/mamonis/studio-backend/pkg/patron"
	"github.com/mamonis/studio-backend/pkg/payment"
	"github.com/mamonis/studio-backend/pkg/utils"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"
)

// CheckoutProvider creates hosted checkout sessions.
type CheckoutProvider interface {
	CreateCheckoutSession(ctx context.Context, item payment.LineItem) (*stripe.CheckoutSession, error)
}

type PaymentService struct {
	provider  CheckoutProvider
	validator *utils.Validator
	logger    *zap.Logger
}

func NewPaymentService(provider CheckoutProvider, validator *utils.Validator, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		provider:  provider,
		validator: validator,
		logger:    logger,
	}
}

// CreateCheckoutSession validates req and asks the provider for a session.
// Returned errors wrap one of ErrInvalidAmount, ErrInvalidType, ErrUpstream
// or ErrInternal.
func (s *PaymentService) CreateCheckoutSession(ctx context.Context, req models.CreateCheckoutSessionRequest) (*models.CheckoutSession, error) {
	checkout, err := s.parse(req)
	if err != nil {
		return nil, err
	}

	sess, err := s.provider.CreateCheckoutSession(ctx, LineItemFor(checkout))
	if err != nil {
		if errors.Is(err, payment.ErrProviderRejected) {
			s.logger.Error("stripe api error",
				zap.Int64("amount", checkout.Amount),
				zap.String("type", string(checkout.Type)),
				zap.Error(err))
			return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
		}
		s.logger.Error("creating checkout session", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if sess == nil || sess.URL == "" {
		s.logger.Error("checkout session has no url", zap.String("type", string(checkout.Type)))
		return nil, fmt.Errorf("%w: session without url", ErrUpstream)
	}

	s.logger.Info("checkout session created",
		zap.String("session_id", sess.ID),
		zap.String("type", string(checkout.Type)),
		zap.Int64("amount", checkout.Amount))

	return &models.CheckoutSession{
		ID:  sess.ID,
		URL: sess.URL,
	}, nil
}

func (s *PaymentService) parse(req models.CreateCheckoutSessionRequest) (models.PatronCheckout, error) {
	amount, ok := parseAmount(req.Amount)
	if !ok {
		return models.PatronCheckout{}, ErrInvalidAmount
	}
	typ, _ := req.Type.(string)

	checkout := models.PatronCheckout{
		Amount: amount,
		Type:   patron.Type(typ),
	}

	if err := s.validator.Struct(checkout); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Field() {
			case "Amount":
				return checkout, ErrInvalidAmount
			case "Type":
				return checkout, ErrInvalidType
			}
		}
		return checkout, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return checkout, nil
}

// parseAmount accepts integral JSON numbers and numeric strings.
func parseAmount(v interface{}) (int64, bool) {
	var f float64
	switch a := v.(type) {
	case float64:
		f = a
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > 1e15 {
		return 0, false
	}
	return int64(f), true
}

// LineItemFor maps a validated checkout to the item sold on Stripe.
func LineItemFor(checkout models.PatronCheckout) payment.LineItem {
	if checkout.Type.Recurring() {
		return payment.LineItem{
			Name:        "MAMONIS Patronage - 毎月支援",
			Description: "創作活動を応援する毎月の支援",
			Amount:      checkout.Amount,
			Interval:    payment.IntervalMonthly,
		}
	}
	return payment.LineItem{
		Name:        "MAMONIS Patronage - 単発支援",
		Description: "創作活動を応援する一回の支援",
		Amount:      checkout.Amount,
	}
}
