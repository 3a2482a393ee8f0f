package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mamonis/studio-backend/internal/models"
	"github.com/mamonis/studio-backend/pkg/qrcode"
	"go.uber.org/zap"
)

type SiteHandler struct {
	qrService *qrcode.QRService
	logger    *zap.Logger
}

func NewSiteHandler(qrService *qrcode.QRService, logger *zap.Logger) *SiteHandler {
	return &SiteHandler{
		qrService: qrService,
		logger:    logger,
	}
}

// PatronQRCode handles GET /patron/qrcode.png?size=N.
func (h *SiteHandler) PatronQRCode(c *fiber.Ctx) error {
	png, err := h.qrService.GeneratePatronQRCode(c.QueryInt("size", qrcode.DefaultSize))
	if err != nil {
		h.logger.Error("rendering patron QR code", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(models.MsgInternal))
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(png)
}
