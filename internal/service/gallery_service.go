package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/mamonis/studio-backend/internal/models"
	"github.com/mamonis/studio-backend/internal/repository"
	"github.com/mamonis/studio-backend/pkg/storage"
	"go.uber.org/zap"
)

type GalleryStore interface {
	GetAll() ([]models.Gallery, error)
	GetBySlug(slug string) (*models.Gallery, error)
	ReplaceItems(galleryID uint, items []models.GalleryItem) error
}

type GalleryService struct {
	galleryRepo GalleryStore
	logger      *zap.Logger
}

func NewGalleryService(galleryRepo GalleryStore, logger *zap.Logger) *GalleryService {
	return &GalleryService{
		galleryRepo: galleryRepo,
		logger:      logger,
	}
}

func (s *GalleryService) GetGalleries() ([]models.Gallery, error) {
	return s.galleryRepo.GetAll()
}

func (s *GalleryService) GetGallery(slug string) (*models.Gallery, error) {
	gallery, err := s.galleryRepo.GetBySlug(slug)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrGalleryNotFound, slug)
	}
	return gallery, err
}

// GalleryPrefix is where a gallery's images live in the bucket.
func GalleryPrefix(slug string) string {
	return "galleries/" + slug + "/"
}

// SyncFromStorage rebuilds every gallery's items from the objects under its
// prefix. Items keep key order; captions come from file names.
func (s *GalleryService) SyncFromStorage(ctx context.Context, lister storage.ObjectLister) error {
	galleries, err := s.galleryRepo.GetAll()
	if err != nil {
		return fmt.Errorf("loading galleries: %w", err)
	}

	for _, gallery := range galleries {
		objects, err := lister.List(ctx, GalleryPrefix(gallery.Slug))
		if err != nil {
			return fmt.Errorf("listing gallery %s: %w", gallery.Slug, err)
		}

		items := make([]models.GalleryItem, 0, len(objects))
		for i, obj := range objects {
			items = append(items, models.GalleryItem{
				Key:      obj.Key,
				URL:      lister.PublicURL(obj.Key),
				Caption:  captionFromKey(obj.Key),
				Position: i,
			})
		}

		if err := s.galleryRepo.ReplaceItems(gallery.ID, items); err != nil {
			return fmt.Errorf("saving gallery %s: %w", gallery.Slug, err)
		}
		s.logger.Info("gallery synced", zap.String("gallery", gallery.Slug), zap.Int("items", len(items)))
	}

	return nil
}

func captionFromKey(key string) string {
	name := path.Base(key)
	name = strings.TrimSuffix(name, path.Ext(name))
	return strings.NewReplacer("_", " ", "-", " ").Replace(name)
}
