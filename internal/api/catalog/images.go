package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"portfolio-app/database"
	"portfolio-app/internal/blobstore"
	"portfolio-app/internal/domain/catalog"
	"portfolio-app/internal/imaging"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ImagesHandler owns the image endpoints. Uploads go through the blob store
// before any row is written; dimension extraction is best-effort.
type ImagesHandler struct {
	Store   blobstore.Store
	Decoder imaging.Decoder
}

func NewImagesHandler(store blobstore.Store, decoder imaging.Decoder) *ImagesHandler {
	return &ImagesHandler{Store: store, Decoder: decoder}
}

// ------------------------------
// POST /api/images  (multipart: image, artwork_id, is_main_image)
// ------------------------------
func (h *ImagesHandler) UploadImage(c *gin.Context) {
	artworkID := c.PostForm("artwork_id")
	if artworkID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "artwork_id required"})
		return
	}
	isMain := c.PostForm("is_main_image") == "true"

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
		return
	}

	var img *catalog.Image
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		img, err = h.saveImage(c.Request.Context(), tx, artworkID, header.Filename, data, isMain)
		return err
	})
	if err != nil {
		writeImageError(c, err, "Failed to save image")
		return
	}

	c.JSON(http.StatusCreated, toImageDTO(img))
}

// ------------------------------
// PUT /api/images/:id  (multipart: optional image payload, is_main_image)
// ------------------------------
func (h *ImagesHandler) UpdateImage(c *gin.Context) {
	id := c.Param("id")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var img catalog.Image
		if err := tx.First(&img, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return catalog.ErrImageNotFound
			}
			return err
		}

		// flagging this image as main does not unset siblings; resolution
		// takes the first flagged image in insertion order
		if v, ok := c.GetPostForm("is_main_image"); ok {
			img.IsMainImage = v == "true"
		}

		if file, header, err := c.Request.FormFile("image"); err == nil {
			defer file.Close()
			data, err := io.ReadAll(file)
			if err != nil {
				return fmt.Errorf("failed to read upload: %w", err)
			}
			if err := h.replacePayload(c.Request.Context(), &img, header.Filename, data); err != nil {
				return err
			}
		}

		return tx.Save(&img).Error
	})
	if err != nil {
		writeImageError(c, err, "Failed to update image")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /api/images/:id
// ------------------------------
func (h *ImagesHandler) DeleteImage(c *gin.Context) {
	id := c.Param("id")

	res := database.DB.Delete(&catalog.Image{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// saveImage is the shared create path: artwork lookup, key generation, blob
// write, dimension extraction, row insert — in that order. A blob write
// failure aborts the whole operation so no row ever references a missing
// payload; a decode failure only leaves the dimension columns NULL.
func (h *ImagesHandler) saveImage(ctx context.Context, tx *gorm.DB, artworkID, filename string, data []byte, isMain bool) (*catalog.Image, error) {
	var a catalog.Artwork
	if err := tx.First(&a, "id = ?", artworkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrArtworkNotFound
		}
		return nil, err
	}

	img := &catalog.Image{
		ArtworkID:   a.ID,
		IsMainImage: isMain,
	}
	if err := h.replacePayload(ctx, img, filename, data); err != nil {
		return nil, err
	}

	if err := tx.Create(img).Error; err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"artwork_id": a.ID, "image_id": img.ID, "url": img.URL}).Info("Image saved successfully")
	return img, nil
}

// replacePayload writes a (new) payload for img under a fresh key and
// recomputes the dimension pair from it. The old values are cleared up
// front, so a payload that fails to decode leaves both columns NULL rather
// than a stale pair from the previous upload.
func (h *ImagesHandler) replacePayload(ctx context.Context, img *catalog.Image, filename string, data []byte) error {
	key := blobstore.ObjectKey(img.ArtworkID, filename)
	log.WithFields(log.Fields{
		"artwork_id": img.ArtworkID,
		"filename":   filename,
		"object_key": key,
	}).Info("Upload path generated")

	url, err := h.Store.Put(ctx, key, data, blobstore.ContentTypeFor(filename))
	if err != nil {
		return err
	}
	img.ObjectKey = key
	img.URL = url

	img.ImageWidth = nil
	img.ImageHeight = nil
	if d := h.Decoder.DecodeDimensions(data); d != nil {
		img.ImageWidth = &d.Width
		img.ImageHeight = &d.Height
	} else {
		log.WithField("artwork_id", img.ArtworkID).Warn("Image saved without dimensions")
	}
	return nil
}

func writeImageError(c *gin.Context, err error, fallback string) {
	switch {
	case catalog.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, blobstore.ErrWriteFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to store image payload"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}
