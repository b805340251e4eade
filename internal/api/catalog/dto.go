package catalog

import "github.com/shopspring/decimal"

// ---------- requests

type CreateArtworkRequest struct {
	Title          string          `json:"title" binding:"required"`
	PaintingNumber *int            `json:"painting_number"`
	PaintingYear   *int            `json:"painting_year"`
	WidthInches    decimal.Decimal `json:"width_inches"`
	HeightInches   decimal.Decimal `json:"height_inches"`
	PriceCents     int             `json:"price_cents"`
	Paper          bool            `json:"paper"`

	Status   string `json:"status" binding:"required"`
	Medium   string `json:"medium" binding:"required"`
	Category string `json:"category" binding:"required"`

	SortOrder  *int    `json:"sort_order"`
	OrderID    *string `json:"order_id"`
	ShipmentID *string `json:"shipment_id"`
}

type UpdateArtworkRequest struct {
	Title          *string          `json:"title"`
	PaintingNumber *int             `json:"painting_number"`
	PaintingYear   *int             `json:"painting_year"`
	WidthInches    *decimal.Decimal `json:"width_inches"`
	HeightInches   *decimal.Decimal `json:"height_inches"`
	PriceCents     *int             `json:"price_cents"`
	Paper          *bool            `json:"paper"`

	Status   *string `json:"status"`
	Medium   *string `json:"medium"`
	Category *string `json:"category"`

	SortOrder  *int    `json:"sort_order"`
	OrderID    *string `json:"order_id"`
	ShipmentID *string `json:"shipment_id"`
}
