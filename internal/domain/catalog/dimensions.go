package catalog

import (
	"errors"

	"gorm.io/gorm"
)

// ImageDimensions is the pixel size of an artwork's primary image. Width and
// Height stay nil when extraction failed for that image.
type ImageDimensions struct {
	Width  *int `json:"width"`
	Height *int `json:"height"`
}

// ResolvePrimaryImageDimensions returns the dimensions of the artwork's main
// image: the first image flagged is_main_image in insertion order, else the
// first image, else nil for an empty set.
//
// preloaded == nil means the caller did not prefetch and the lookup goes to
// the database; a non-nil slice (possibly empty) is trusted as the artwork's
// complete image set in insertion order. Both paths return the same result —
// passing the preloaded set only saves the per-artwork queries when listing.
func ResolvePrimaryImageDimensions(db *gorm.DB, a *Artwork, preloaded []Image) (*ImageDimensions, error) {
	if preloaded != nil {
		if img := PrimaryImage(preloaded); img != nil {
			return dimensionsOf(img), nil
		}
		return nil, nil
	}

	var img Image
	err := db.Where("artwork_id = ? AND is_main_image = ?", a.ID, true).
		Order("id ASC").
		First(&img).Error
	if err == nil {
		return dimensionsOf(&img), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = db.Where("artwork_id = ?", a.ID).
		Order("id ASC").
		First(&img).Error
	if err == nil {
		return dimensionsOf(&img), nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, err
}

// PrimaryImage picks the representative image out of a loaded set: first
// flagged main image, else the first image, else nil.
func PrimaryImage(images []Image) *Image {
	for i := range images {
		if images[i].IsMainImage {
			return &images[i]
		}
	}
	if len(images) > 0 {
		return &images[0]
	}
	return nil
}

func dimensionsOf(img *Image) *ImageDimensions {
	return &ImageDimensions{Width: img.ImageWidth, Height: img.ImageHeight}
}
