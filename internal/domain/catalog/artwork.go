package catalog

import (
	"errors"
	"time"

	"portfolio-app/internal/domain/orders"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusSold        = "sold"
	StatusAvailable   = "available"
	StatusComingSoon  = "coming_soon"
	StatusNotForSale  = "not_for_sale"
	StatusUnavailable = "unavailable"
)

const (
	MediumOilPanel     = "oil_panel"
	MediumAcrylicPanel = "acrylic_panel"
	MediumOilMDF       = "oil_mdf"
	MediumOilPaper     = "oil_paper"
	MediumUnknown      = "unknown"
)

const (
	CategoryFigure      = "figure"
	CategoryLandscape   = "landscape"
	CategoryMultiFigure = "multi_figure"
	CategoryOther       = "other"
)

var validStatuses = map[string]bool{
	StatusSold:        true,
	StatusAvailable:   true,
	StatusComingSoon:  true,
	StatusNotForSale:  true,
	StatusUnavailable: true,
}

var validMediums = map[string]bool{
	MediumOilPanel:     true,
	MediumAcrylicPanel: true,
	MediumOilMDF:       true,
	MediumOilPaper:     true,
	MediumUnknown:      true,
}

var validCategories = map[string]bool{
	CategoryFigure:      true,
	CategoryLandscape:   true,
	CategoryMultiFigure: true,
	CategoryOther:       true,
}

// Artwork is one physical piece in the catalog.
type Artwork struct {
	ID             string          `gorm:"type:uuid;primaryKey" json:"id"`
	Title          string          `gorm:"size:200;not null" json:"title"`
	PaintingNumber *int            `json:"painting_number"`
	PaintingYear   *int            `json:"painting_year"`
	WidthInches    decimal.Decimal `gorm:"type:decimal(10,4)" json:"width_inches"`
	HeightInches   decimal.Decimal `gorm:"type:decimal(10,4)" json:"height_inches"`
	PriceCents     int             `json:"price_cents"`
	Paper          bool            `gorm:"not null;default:false" json:"paper"`

	Status   string `gorm:"size:20;not null" json:"status"`
	Medium   string `gorm:"size:20;not null" json:"medium"`
	Category string `gorm:"size:20;not null" json:"category"`

	OrderID    *string          `gorm:"type:uuid;index" json:"order_id,omitempty"`
	Order      *orders.Order    `gorm:"constraint:OnDelete:SET NULL;" json:"-"`
	ShipmentID *string          `gorm:"type:uuid;index" json:"shipment_id,omitempty"`
	Shipment   *orders.Shipment `gorm:"constraint:OnDelete:SET NULL;" json:"-"`

	Images []Image `gorm:"foreignKey:ArtworkID;constraint:OnDelete:CASCADE;" json:"images,omitempty"`

	SortOrder int        `gorm:"not null;default:0;index" json:"sort_order"`
	CreatedAt time.Time  `json:"created_at"`
	SoldAt    *time.Time `json:"sold_at,omitempty"`
}

func (a *Artwork) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// BeforeSave validates the enum fields and the order/shipment invariant on
// every write. The shipment is loaded inside the same transaction, so the
// check runs against the state actually being written. Any failure aborts
// the write before persistence.
func (a *Artwork) BeforeSave(tx *gorm.DB) error {
	if !validStatuses[a.Status] {
		return ErrInvalidStatus
	}
	if !validMediums[a.Medium] {
		return ErrInvalidMedium
	}
	if !validCategories[a.Category] {
		return ErrInvalidCategory
	}

	if a.OrderID != nil {
		var o orders.Order
		if err := tx.First(&o, "id = ?", *a.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
	}

	if a.ShipmentID != nil {
		var sh orders.Shipment
		if err := tx.First(&sh, "id = ?", *a.ShipmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrShipmentNotFound
			}
			return err
		}
		if a.OrderID == nil || *a.OrderID != sh.OrderID {
			return ErrShipmentOrderMismatch
		}
	}

	return nil
}
