package catalog

import (
	"portfolio-app/internal/domain/catalog"

	"gorm.io/gorm"
)

// artworkListQuery is the default catalog listing: ascending sort_order,
// ties broken by creation time so equal-sort artworks keep insertion order.
// The trailing id ordering keeps the result deterministic even when two rows
// share a created_at down to the column's timestamp precision.
func artworkListQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&catalog.Artwork{}).
		Order("sort_order ASC").
		Order("created_at ASC").
		Order("id ASC")
}

// preloadImages loads each artwork's images in insertion order.
func preloadImages(db *gorm.DB) *gorm.DB {
	return db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	})
}
