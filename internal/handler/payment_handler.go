package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mamonis/studio-backend/internal/models"
	"github.com/mamonis/studio-backend/internal/service"
	"go.uber.org/zap"
)

type CheckoutCreator interface {
	CreateCheckoutSession(ctx context.Context, req models.CreateCheckoutSessionRequest) (*models.CheckoutSession, error)
}

type PaymentHandler struct {
	paymentService CheckoutCreator
	logger         *zap.Logger
}

func NewPaymentHandler(paymentService CheckoutCreator, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// CreateCheckoutSession handles POST /create-checkout-session. The body is
// decoded as JSON whatever the Content-Type says.
func (h *PaymentHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	var req *models.CreateCheckoutSessionRequest
	if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
		h.logger.Error("decoding checkout request", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(models.MsgInternal))
	}
	// a JSON null decodes without error
	if req == nil {
		h.logger.Error("decoding checkout request: body is null")
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(models.MsgInternal))
	}

	session, err := h.paymentService.CreateCheckoutSession(c.UserContext(), *req)
	if err != nil {
		status, msg := checkoutErrorResponse(err)
		return c.Status(status).JSON(models.ErrorResponse(msg))
	}

	return c.JSON(models.URLResponse(session.URL))
}

func checkoutErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidAmount):
		return fiber.StatusBadRequest, models.MsgInvalidAmount
	case errors.Is(err, service.ErrInvalidType):
		return fiber.StatusBadRequest, models.MsgInvalidType
	case errors.Is(err, service.ErrUpstream):
		return fiber.StatusInternalServerError, models.MsgUpstream
	default:
		return fiber.StatusInternalServerError, models.MsgInternal
	}
}
