package imaging

import (
	"bytes"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	log "github.com/sirupsen/logrus"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Dimensions is the pixel size decoded from an uploaded image payload.
type Dimensions struct {
	Width  int
	Height int
}

// Decoder extracts pixel dimensions from a raw image payload. Implementations
// return nil when the payload cannot be decoded (corrupt, truncated or
// unsupported data); decoding failure never surfaces as an error because the
// surrounding write must still go through.
type Decoder interface {
	DecodeDimensions(data []byte) *Dimensions
}

// StdDecoder reads dimensions through the registered codecs (jpeg, png, gif,
// webp, bmp). Only the image header is decoded, not the pixel data.
type StdDecoder struct{}

func (StdDecoder) DecodeDimensions(data []byte) *Dimensions {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		log.WithError(err).Error("Error reading image dimensions")
		return nil
	}
	log.WithFields(log.Fields{
		"format": format,
		"width":  cfg.Width,
		"height": cfg.Height,
	}).Info("Image dimensions decoded")
	return &Dimensions{Width: cfg.Width, Height: cfg.Height}
}
