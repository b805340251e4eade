package catalog

import (
	"time"

	"portfolio-app/internal/domain/catalog"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ImageDTO struct {
	ID          uint      `json:"id"`
	Image       string    `json:"image"`
	IsMainImage bool      `json:"is_main_image"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type ArtworkDTO struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	PaintingNumber *int            `json:"painting_number"`
	PaintingYear   *int            `json:"painting_year"`
	WidthInches    decimal.Decimal `json:"width_inches"`
	HeightInches   decimal.Decimal `json:"height_inches"`
	Medium         string          `json:"medium"`
	Category       string          `json:"category"`
	Status         string          `json:"status"`
	PriceCents     int             `json:"price_cents"`
	Paper          bool            `json:"paper"`
	SortOrder      int             `json:"sort_order"`
	CreatedAt      time.Time       `json:"created_at"`
	SoldAt         *time.Time      `json:"sold_at,omitempty"`

	ImageDimensions *catalog.ImageDimensions `json:"image_dimensions"`
	Images          []ImageDTO               `json:"images"`
}

func toImageDTO(img *catalog.Image) ImageDTO {
	return ImageDTO{
		ID:          img.ID,
		Image:       img.URL,
		IsMainImage: img.IsMainImage,
		UploadedAt:  img.UploadedAt,
	}
}

func baseArtworkDTO(a *catalog.Artwork) ArtworkDTO {
	return ArtworkDTO{
		ID:             a.ID,
		Title:          a.Title,
		PaintingNumber: a.PaintingNumber,
		PaintingYear:   a.PaintingYear,
		WidthInches:    a.WidthInches,
		HeightInches:   a.HeightInches,
		Medium:         a.Medium,
		Category:       a.Category,
		Status:         a.Status,
		PriceCents:     a.PriceCents,
		Paper:          a.Paper,
		SortOrder:      a.SortOrder,
		CreatedAt:      a.CreatedAt,
		SoldAt:         a.SoldAt,
	}
}

// toArtworkListDTO builds the listing representation: at most one image (the
// flagged main image, else the first upload) so listing many artworks never
// serializes full image sets.
func toArtworkListDTO(db *gorm.DB, a *catalog.Artwork, preloaded []catalog.Image) (ArtworkDTO, error) {
	dto := baseArtworkDTO(a)

	dims, err := catalog.ResolvePrimaryImageDimensions(db, a, preloaded)
	if err != nil {
		return dto, err
	}
	dto.ImageDimensions = dims

	dto.Images = []ImageDTO{}
	if img := catalog.PrimaryImage(preloaded); img != nil {
		dto.Images = append(dto.Images, toImageDTO(img))
	}
	return dto, nil
}

// toArtworkDetailDTO builds the detail representation with every image.
func toArtworkDetailDTO(db *gorm.DB, a *catalog.Artwork, preloaded []catalog.Image) (ArtworkDTO, error) {
	dto := baseArtworkDTO(a)

	dims, err := catalog.ResolvePrimaryImageDimensions(db, a, preloaded)
	if err != nil {
		return dto, err
	}
	dto.ImageDimensions = dims

	dto.Images = make([]ImageDTO, 0, len(preloaded))
	for i := range preloaded {
		dto.Images = append(dto.Images, toImageDTO(&preloaded[i]))
	}
	return dto, nil
}
