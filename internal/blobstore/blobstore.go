package blobstore

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrWriteFailed wraps any failure to durably write a payload. Callers treat
// it as fatal for the enclosing operation: no Image row may reference a blob
// that was never stored.
var ErrWriteFailed = errors.New("blob write failed")

// Store is the key-addressed blob boundary image payloads go through. Put
// writes the payload and returns a URL for it; keys are never overwritten
// (uniqueness comes from the random suffix in ObjectKey). URL resolves an
// existing key without touching the payload.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	URL(ctx context.Context, key string) (string, error)
}

// ObjectKey builds the storage key for an upload: {artwork_id}_{8 random
// hex}{ext}. The suffix keeps two uploads of identically named files apart
// and hides the original filename; the extension is kept when present.
func ObjectKey(artworkID, filename string) string {
	var buf [4]byte
	_, _ = rand.Read(buf[:])
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s_%s%s", artworkID, hex.EncodeToString(buf[:]), ext)
}

// ContentTypeFor maps a filename to the MIME type sent to the store.
func ContentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".bmp":
		return "image/bmp"
	default:
		return "application/octet-stream"
	}
}
