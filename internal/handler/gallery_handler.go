package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mamonis/studio-backend/internal/models"
	"github.com/mamonis/studio-backend/internal/service"
	"go.uber.org/zap"
)

type GalleryReader interface {
	GetGalleries() ([]models.Gallery, error)
	GetGallery(slug string) (*models.Gallery, error)
}

type GalleryHandler struct {
	galleryService GalleryReader
	logger         *zap.Logger
}

func NewGalleryHandler(galleryService GalleryReader, logger *zap.Logger) *GalleryHandler {
	return &GalleryHandler{
		galleryService: galleryService,
		logger:         logger,
	}
}

func (h *GalleryHandler) GetGalleries(c *fiber.Ctx) error {
	galleries, err := h.galleryService.GetGalleries()
	if err != nil {
		h.logger.Error("listing galleries", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(models.MsgInternal))
	}
	if galleries == nil {
		galleries = []models.Gallery{}
	}

	return c.JSON(fiber.Map{
		"galleries": galleries,
	})
}

func (h *GalleryHandler) GetGallery(c *fiber.Ctx) error {
	gallery, err := h.galleryService.GetGallery(c.Params("slug"))
	if err != nil {
		if errors.Is(err, service.ErrGalleryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("gallery not found"))
		}
		h.logger.Error("loading gallery", zap.String("slug", c.Params("slug")), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(models.MsgInternal))
	}

	return c.JSON(gallery)
}
