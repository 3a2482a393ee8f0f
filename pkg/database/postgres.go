package database

import (
	"errors"
	"fmt"

	"github.com/mamonis/studio-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultGalleries are seeded on first start. Items come from R2.
var DefaultGalleries = []models.Gallery{
	{
		Slug:        "works",
		Title:       "Works",
		Description: "Finished illustrations and commissions",
		SortOrder:   0,
	},
	{
		Slug:        "sketches",
		Title:       "Sketches",
		Description: "Studies, roughs and daily drawings",
		SortOrder:   1,
	},
	{
		Slug:        "photography",
		Title:       "Photography",
		Description: "Reference and travel photographs",
		SortOrder:   2,
	},
}

func NewDatabase(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Gallery{}, &models.GalleryItem{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	for _, gallery := range DefaultGalleries {
		var count int64
		if err := db.Model(&models.Gallery{}).Where("slug = ?", gallery.Slug).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check gallery %s: %w", gallery.Slug, err)
		}
		if count == 0 {
			if err := db.Create(&gallery).Error; err != nil {
				return fmt.Errorf("failed to add gallery %s: %w", gallery.Slug, err)
			}
		}
	}

	return nil
}
