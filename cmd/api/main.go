package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mamonis/studio-backend/internal/config"
	"github.com/mamonis/studio-backend/internal/handler"
	"github.com/mamonis/studio-backend/internal/repository"
	"github.com/mamonis/studio-backend/internal/server"
	"github.com/mamonis/studio-backend/internal/service"
	"github.com/mamonis/studio-backend/pkg/database"
	"github.com/mamonis/studio-backend/pkg/logger"
	"github.com/mamonis/studio-backend/pkg/payment"
	"github.com/mamonis/studio-backend/pkg/qrcode"
	"github.com/mamonis/studio-backend/pkg/storage"
	"github.com/mamonis/studio-backend/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; the hosting runtime usually injects the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	if cfg.Stripe.SecretKey == "" {
		zlog.Warn("STRIPE_SECRET_KEY is not set; checkout sessions will be rejected by Stripe")
	}

	// Stripe service
	stripeService := payment.NewStripeService(
		cfg.Stripe.SecretKey,
		cfg.Stripe.APIURL,
		cfg.Stripe.SuccessURL,
		cfg.Stripe.CancelURL,
		zlog,
	)

	// Payment service
	paymentService := service.NewPaymentService(stripeService, utils.NewValidator(), zlog)

	handlers := server.Handlers{
		Payment: handler.NewPaymentHandler(paymentService, zlog),
	}

	if cfg.Site.APIEnabled {
		galleryHandler, err := setupGalleries(cfg, zlog)
		if err != nil {
			zlog.Fatal("failed to set up galleries", zap.Error(err))
		}
		handlers.Gallery = galleryHandler
		handlers.Site = handler.NewSiteHandler(qrcode.NewQRService(cfg.Site.URL), zlog)
	}

	app := server.New(handlers, server.Options{AccessLog: true}, zlog)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		zlog.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zlog.Error("shutdown", zap.Error(err))
		}
	}()

	zlog.Info("server starting", zap.String("port", cfg.HTTP.Port), zap.Bool("site_api", cfg.Site.APIEnabled))
	if err := app.Listen(":" + cfg.HTTP.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func setupGalleries(cfg *config.AppConfig, zlog *zap.Logger) (*handler.GalleryHandler, error) {
	db, err := database.NewDatabase(cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	galleryService := service.NewGalleryService(repository.NewGalleryRepository(db), zlog)

	if cfg.R2.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		r2Storage, err := storage.NewCloudflareStorage(ctx, cfg.R2)
		if err != nil {
			return nil, err
		}
		// A failed sync keeps the previous catalog.
		if err := galleryService.SyncFromStorage(ctx, r2Storage); err != nil {
			zlog.Error("gallery sync failed", zap.Error(err))
		}
	}

	return handler.NewGalleryHandler(galleryService, zlog), nil
}
