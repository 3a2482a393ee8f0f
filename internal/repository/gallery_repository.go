package repository

import (
	"errors"

	"github.com/mamonis/studio-backend/internal/models"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{
		db: db,
	}
}

func (r *GalleryRepository) GetAll() ([]models.Gallery, error) {
	var galleries []models.Gallery
	err := r.db.Order("sort_order ASC, id ASC").Find(&galleries).Error
	return galleries, err
}

// GetBySlug loads a gallery with its items in display order.
func (r *GalleryRepository) GetBySlug(slug string) (*models.Gallery, error) {
	var gallery models.Gallery
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("slug = ?", slug).
		First(&gallery).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &gallery, nil
}

// ReplaceItems swaps the gallery's items for items in one transaction.
func (r *GalleryRepository) ReplaceItems(galleryID uint, items []models.GalleryItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("gallery_id = ?", galleryID).Delete(&models.GalleryItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].GalleryID = galleryID
		}
		return tx.Create(&items).Error
	})
}
