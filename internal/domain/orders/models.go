package orders

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is a completed purchase. The catalog only reads it to enforce the
// artwork/shipment consistency check; fulfillment itself lives elsewhere.
type Order struct {
	ID              string  `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerEmail   string  `json:"customer_email"`
	StripeSessionID *string `gorm:"uniqueIndex" json:"-"`

	Shipments []Shipment `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE;" json:"shipments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// Shipment groups artworks of one order for fulfillment.
type Shipment struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID string `gorm:"type:uuid;not null;index" json:"order_id"`
	Order   *Order `json:"-"`

	Carrier        string     `json:"carrier"`
	TrackingNumber string     `json:"tracking_number"`
	ShippedAt      *time.Time `json:"shipped_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (s *Shipment) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
