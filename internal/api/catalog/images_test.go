package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-app/database"
	"portfolio-app/internal/blobstore"
	"portfolio-app/internal/domain/catalog"
	"portfolio-app/internal/domain/orders"
	"portfolio-app/internal/imaging"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&orders.Order{}, &orders.Shipment{}, &catalog.Artwork{}, &catalog.Image{}))
	return db
}

func createArtwork(t *testing.T, db *gorm.DB, title string) catalog.Artwork {
	t.Helper()
	a := catalog.Artwork{
		Title:        title,
		WidthInches:  decimal.NewFromFloat(8.5),
		HeightInches: decimal.NewFromFloat(11.0),
		PriceCents:   120000,
		Status:       catalog.StatusAvailable,
		Medium:       catalog.MediumOilPanel,
		Category:     catalog.CategoryLandscape,
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func makeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height)), nil))
	return buf.Bytes()
}

func newTestImagesHandler() (*ImagesHandler, *blobstore.MemoryStore) {
	store := blobstore.NewMemoryStore()
	return NewImagesHandler(store, imaging.StdDecoder{}), store
}

func imageCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&catalog.Image{}).Count(&n).Error)
	return n
}

func TestSaveImageExtractsDimensions(t *testing.T) {
	db := openTestDB(t)
	h, _ := newTestImagesHandler()
	a := createArtwork(t, db, "With photo")

	img, err := h.saveImage(context.Background(), db, a.ID, "photo.jpg", makeJPEG(t, 800, 600), true)
	require.NoError(t, err)

	require.NotNil(t, img.ImageWidth)
	require.NotNil(t, img.ImageHeight)
	assert.Equal(t, 800, *img.ImageWidth)
	assert.Equal(t, 600, *img.ImageHeight)
	assert.True(t, img.IsMainImage)
	assert.True(t, strings.HasPrefix(img.ObjectKey, a.ID+"_"))
	assert.True(t, strings.HasSuffix(img.ObjectKey, ".jpg"))
	assert.NotEmpty(t, img.URL)
}

func TestSaveImageCorruptPayloadStillPersists(t *testing.T) {
	db := openTestDB(t)
	h, store := newTestImagesHandler()
	a := createArtwork(t, db, "Corrupt upload")

	img, err := h.saveImage(context.Background(), db, a.ID, "photo.jpg", []byte("not an image"), false)
	require.NoError(t, err, "decode failure must not abort the save")

	assert.Nil(t, img.ImageWidth)
	assert.Nil(t, img.ImageHeight)
	assert.Equal(t, int64(1), imageCount(t, db))
	assert.Equal(t, 1, store.Len())
}

func TestSaveImageUnknownArtwork(t *testing.T) {
	db := openTestDB(t)
	h, store := newTestImagesHandler()

	_, err := h.saveImage(context.Background(), db, "00000000-0000-0000-0000-000000000000", "photo.jpg", makeJPEG(t, 10, 10), false)
	assert.True(t, errors.Is(err, catalog.ErrArtworkNotFound))
	assert.Equal(t, 0, store.Len(), "nothing may reach storage for a missing artwork")
	assert.Equal(t, int64(0), imageCount(t, db))
}

func TestSaveImageStorageFailureAbortsWholeWrite(t *testing.T) {
	db := openTestDB(t)
	h, store := newTestImagesHandler()
	a := createArtwork(t, db, "Storage down")
	store.PutErr = errors.New("bucket unavailable")

	_, err := h.saveImage(context.Background(), db, a.ID, "photo.jpg", makeJPEG(t, 10, 10), false)
	assert.True(t, errors.Is(err, blobstore.ErrWriteFailed))
	assert.Equal(t, int64(0), imageCount(t, db), "no row may reference a blob that was never stored")
}

func TestSaveImageKeysDistinctForSameFilename(t *testing.T) {
	db := openTestDB(t)
	h, _ := newTestImagesHandler()
	a := createArtwork(t, db, "Two photos")

	first, err := h.saveImage(context.Background(), db, a.ID, "photo.jpg", makeJPEG(t, 10, 10), false)
	require.NoError(t, err)
	second, err := h.saveImage(context.Background(), db, a.ID, "photo.jpg", makeJPEG(t, 10, 10), false)
	require.NoError(t, err)

	assert.NotEqual(t, first.ObjectKey, second.ObjectKey)
}

func TestReplacePayloadRecomputesDimensions(t *testing.T) {
	h, _ := newTestImagesHandler()
	w, ht := 800, 600
	img := &catalog.Image{
		ArtworkID:   "11111111-1111-1111-1111-111111111111",
		ObjectKey:   "old_key.jpg",
		URL:         "memory://old",
		ImageWidth:  &w,
		ImageHeight: &ht,
	}

	require.NoError(t, h.replacePayload(context.Background(), img, "retake.jpg", makeJPEG(t, 400, 300)))
	require.NotNil(t, img.ImageWidth)
	assert.Equal(t, 400, *img.ImageWidth)
	assert.Equal(t, 300, *img.ImageHeight)
	assert.NotEqual(t, "old_key.jpg", img.ObjectKey)

	require.NoError(t, h.replacePayload(context.Background(), img, "broken.jpg", []byte("not an image")))
	assert.Nil(t, img.ImageWidth, "a corrupt payload must not keep the previous width")
	assert.Nil(t, img.ImageHeight, "a corrupt payload must not keep the previous height")
}

func putImagePayload(t *testing.T, h *ImagesHandler, imageID uint, payload []byte) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("image", "retake.jpg")
	require.NoError(t, err)
	_, err = fw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := gin.New()
	r.PUT("/api/images/:id", h.UpdateImage)
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/images/%d", imageID), body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestUpdateImageReplacesPayloadAndDimensions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)
	database.DB = db
	h, _ := newTestImagesHandler()
	a := createArtwork(t, db, "Repainted")

	img, err := h.saveImage(context.Background(), db, a.ID, "photo.jpg", makeJPEG(t, 800, 600), false)
	require.NoError(t, err)

	rec := putImagePayload(t, h, img.ID, makeJPEG(t, 400, 300))
	require.Equal(t, http.StatusOK, rec.Code)

	var reloaded catalog.Image
	require.NoError(t, db.First(&reloaded, "id = ?", img.ID).Error)
	require.NotNil(t, reloaded.ImageWidth)
	assert.Equal(t, 400, *reloaded.ImageWidth)
	assert.Equal(t, 300, *reloaded.ImageHeight)
	assert.NotEqual(t, img.ObjectKey, reloaded.ObjectKey)

	rec = putImagePayload(t, h, img.ID, []byte("not an image"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, db.First(&reloaded, "id = ?", img.ID).Error)
	assert.Nil(t, reloaded.ImageWidth, "stale dimensions must not survive a corrupt re-upload")
	assert.Nil(t, reloaded.ImageHeight)
}
