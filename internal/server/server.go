// Package server assembles the fiber application.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mamonis/studio-backend/internal/handler"
	"github.com/mamonis/studio-backend/internal/middleware"
	"github.com/mamonis/studio-backend/internal/models"
	"go.uber.org/zap"
)

type Handlers struct {
	Payment *handler.PaymentHandler
	// Gallery and Site are nil unless the site API is enabled.
	Gallery *handler.GalleryHandler
	Site    *handler.SiteHandler
}

type Options struct {
	// AccessLog enables fiber's request logger.
	AccessLog bool
}

func New(h Handlers, opts Options, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "mamonis-studio",
		DisableStartupMessage: true,
		StrictRouting:         true,
		CaseSensitive:         true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Error("unhandled request error",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(models.MsgInternal))
		},
	})

	if opts.AccessLog {
		app.Use(logger.New())
	}
	app.Use(recover.New())
	app.Use(middleware.CORS())

	app.Post("/create-checkout-session", h.Payment.CreateCheckoutSession)

	if h.Gallery != nil {
		app.Get("/galleries", h.Gallery.GetGalleries)
		app.Get("/galleries/:slug", h.Gallery.GetGallery)
	}
	if h.Site != nil {
		app.Get("/patron/qrcode.png", h.Site.PatronQRCode)
	}

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).SendString("Not Found")
	})

	return app
}
