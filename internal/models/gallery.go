package models

import "time"

// Gallery is one masonry section of the portfolio, e.g. "works".
// The page addresses it as "#<slug>-gallery".
type Gallery struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Slug        string        `json:"slug" gorm:"uniqueIndex;not null"`
	Title       string        `json:"title" gorm:"not null"`
	Description string        `json:"description"`
	SortOrder   int           `json:"sort_order" gorm:"default:0"`
	Items       []GalleryItem `json:"items,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type GalleryItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	GalleryID uint      `json:"gallery_id" gorm:"not null;index"`
	Key       string    `json:"key" gorm:"not null"`
	URL       string    `json:"url" gorm:"not null"`
	Caption   string    `json:"caption"`
	Position  int       `json:"position" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
