package catalog

import (
	"errors"
	"net/http"

	"portfolio-app/database"
	"portfolio-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ------------------------------
// GET /api/artworks
// ------------------------------
func ListArtworks(c *gin.Context) {
	q := preloadImages(artworkListQuery(database.DB))
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var artworks []catalog.Artwork
	if err := q.Find(&artworks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}

	out := make([]ArtworkDTO, 0, len(artworks))
	for i := range artworks {
		// images were preloaded above; a nil slice here just means the
		// artwork has none
		imgs := artworks[i].Images
		if imgs == nil {
			imgs = []catalog.Image{}
		}
		dto, err := toArtworkListDTO(database.DB, &artworks[i], imgs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize artworks"})
			return
		}
		out = append(out, dto)
	}

	c.JSON(http.StatusOK, out)
}

// ------------------------------
// GET /api/artworks/:id
// ------------------------------
func GetArtwork(c *gin.Context) {
	id := c.Param("id")

	var a catalog.Artwork
	err := preloadImages(database.DB).First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}

	imgs := a.Images
	if imgs == nil {
		imgs = []catalog.Image{}
	}
	dto, err := toArtworkDetailDTO(database.DB, &a, imgs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize artwork"})
		return
	}

	c.JSON(http.StatusOK, dto)
}

// ------------------------------
// POST /api/artworks
// ------------------------------
func CreateArtwork(c *gin.Context) {
	var req CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}

	a := catalog.Artwork{
		Title:          req.Title,
		PaintingNumber: req.PaintingNumber,
		PaintingYear:   req.PaintingYear,
		WidthInches:    req.WidthInches,
		HeightInches:   req.HeightInches,
		PriceCents:     req.PriceCents,
		Paper:          req.Paper,
		Status:         req.Status,
		Medium:         req.Medium,
		Category:       req.Category,
		SortOrder:      sortOrder,
		OrderID:        req.OrderID,
		ShipmentID:     req.ShipmentID,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&a).Error
	})
	if err != nil {
		writeDomainError(c, err, "Failed to create artwork")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": a.ID})
}

// ------------------------------
// PUT /api/artworks/:id
// ------------------------------
func UpdateArtwork(c *gin.Context) {
	id := c.Param("id")

	var req UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var a catalog.Artwork
		if err := tx.First(&a, "id = ?", id).Error; err != nil {
			return err
		}

		applyArtworkUpdate(&a, &req)

		// full-row save so BeforeSave validates the effective state
		return tx.Save(&a).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}
		writeDomainError(c, err, "Failed to update artwork")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /api/artworks/:id
// ------------------------------
func DeleteArtwork(c *gin.Context) {
	id := c.Param("id")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&catalog.Artwork{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		// cascade the image rows explicitly; blobs stay behind
		return tx.Where("artwork_id = ?", id).Delete(&catalog.Image{}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artwork"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func applyArtworkUpdate(a *catalog.Artwork, req *UpdateArtworkRequest) {
	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.PaintingNumber != nil {
		a.PaintingNumber = req.PaintingNumber
	}
	if req.PaintingYear != nil {
		a.PaintingYear = req.PaintingYear
	}
	if req.WidthInches != nil {
		a.WidthInches = *req.WidthInches
	}
	if req.HeightInches != nil {
		a.HeightInches = *req.HeightInches
	}
	if req.PriceCents != nil {
		a.PriceCents = *req.PriceCents
	}
	if req.Paper != nil {
		a.Paper = *req.Paper
	}
	if req.Status != nil {
		a.Status = *req.Status
	}
	if req.Medium != nil {
		a.Medium = *req.Medium
	}
	if req.Category != nil {
		a.Category = *req.Category
	}
	if req.SortOrder != nil {
		a.SortOrder = *req.SortOrder
	}
	// empty string clears the reference
	if req.OrderID != nil {
		if *req.OrderID == "" {
			a.OrderID = nil
		} else {
			a.OrderID = req.OrderID
		}
	}
	if req.ShipmentID != nil {
		if *req.ShipmentID == "" {
			a.ShipmentID = nil
		} else {
			a.ShipmentID = req.ShipmentID
		}
	}
}

func writeDomainError(c *gin.Context, err error, fallback string) {
	switch {
	case catalog.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case catalog.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}
