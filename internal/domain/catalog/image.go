package catalog

import "time"

// Image is one uploaded photograph of an artwork. ImageWidth/ImageHeight are
// computed from the payload at write time, never user-supplied; both stay
// NULL when decoding failed. The auto-increment ID doubles as insertion order.
//
// Nothing stops several images of one artwork from carrying IsMainImage at
// once; resolution picks the first flagged one in insertion order.
type Image struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ArtworkID string `gorm:"type:uuid;not null;index" json:"artwork_id"`

	ObjectKey   string `gorm:"not null" json:"-"`
	URL         string `gorm:"not null" json:"image"`
	ImageWidth  *int   `json:"image_width"`
	ImageHeight *int   `json:"image_height"`
	IsMainImage bool   `gorm:"not null;default:false" json:"is_main_image"`

	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}
