package catalog

import (
	"errors"
	"math/rand"
	"testing"

	"portfolio-app/internal/domain/orders"

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
	require.NoError(t, db.AutoMigrate(&orders.Order{}, &orders.Shipment{}, &Artwork{}, &Image{}))
	return db
}

func newArtwork(title string) Artwork {
	return Artwork{
		Title:        title,
		WidthInches:  decimal.NewFromFloat(8.5),
		HeightInches: decimal.NewFromFloat(11.0),
		PriceCents:   250000,
		Status:       StatusAvailable,
		Medium:       MediumOilPanel,
		Category:     CategoryFigure,
	}
}

func createOrderWithShipment(t *testing.T, db *gorm.DB) (orders.Order, orders.Shipment) {
	t.Helper()
	o := orders.Order{CustomerEmail: "buyer@example.com"}
	require.NoError(t, db.Create(&o).Error)
	s := orders.Shipment{OrderID: o.ID, Carrier: "ups"}
	require.NoError(t, db.Create(&s).Error)
	return o, s
}

func artworkCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&Artwork{}).Count(&n).Error)
	return n
}

func TestCreateAssignsIdentityAndDefaults(t *testing.T) {
	db := openTestDB(t)

	a := newArtwork("Untitled No. 1")
	require.NoError(t, db.Create(&a).Error)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, 0, a.SortOrder)
	assert.False(t, a.CreatedAt.IsZero())
	assert.Nil(t, a.SoldAt)
}

func TestEnumValidation(t *testing.T) {
	db := openTestDB(t)

	cases := []struct {
		name    string
		mutate  func(*Artwork)
		wantErr error
	}{
		{"bad status", func(a *Artwork) { a.Status = "pending" }, ErrInvalidStatus},
		{"bad medium", func(a *Artwork) { a.Medium = "watercolor" }, ErrInvalidMedium},
		{"bad category", func(a *Artwork) { a.Category = "abstract" }, ErrInvalidCategory},
		{"empty status", func(a *Artwork) { a.Status = "" }, ErrInvalidStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := newArtwork("Enum check")
			tc.mutate(&a)
			err := db.Create(&a).Error
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
		})
	}

	assert.Equal(t, int64(0), artworkCount(t, db))
}

func TestShipmentRequiresMatchingOrder(t *testing.T) {
	db := openTestDB(t)
	o1, s1 := createOrderWithShipment(t, db)
	o2, _ := createOrderWithShipment(t, db)

	t.Run("matching order accepted", func(t *testing.T) {
		a := newArtwork("Match")
		a.OrderID = &o1.ID
		a.ShipmentID = &s1.ID
		assert.NoError(t, db.Create(&a).Error)
	})

	t.Run("mismatched order rejected", func(t *testing.T) {
		before := artworkCount(t, db)
		a := newArtwork("Mismatch")
		a.OrderID = &o2.ID
		a.ShipmentID = &s1.ID
		err := db.Create(&a).Error
		assert.True(t, errors.Is(err, ErrShipmentOrderMismatch))
		assert.Equal(t, before, artworkCount(t, db))
	})

	t.Run("shipment without order rejected", func(t *testing.T) {
		a := newArtwork("No order")
		a.ShipmentID = &s1.ID
		err := db.Create(&a).Error
		assert.True(t, errors.Is(err, ErrShipmentOrderMismatch))
	})

	t.Run("order without shipment accepted", func(t *testing.T) {
		a := newArtwork("No shipment")
		a.OrderID = &o2.ID
		assert.NoError(t, db.Create(&a).Error)
	})

	t.Run("unknown shipment rejected", func(t *testing.T) {
		a := newArtwork("Ghost shipment")
		a.OrderID = &o1.ID
		ghost := "00000000-0000-0000-0000-000000000000"
		a.ShipmentID = &ghost
		err := db.Create(&a).Error
		assert.True(t, errors.Is(err, ErrShipmentNotFound))
	})
}

func TestShipmentOrderPairings(t *testing.T) {
	db := openTestDB(t)

	var os []orders.Order
	var ss []orders.Shipment
	for i := 0; i < 4; i++ {
		o, s := createOrderWithShipment(t, db)
		os = append(os, o)
		ss = append(ss, s)
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 40; i++ {
		o := os[rng.Intn(len(os))]
		s := ss[rng.Intn(len(ss))]

		before := artworkCount(t, db)
		a := newArtwork("Pairing")
		a.OrderID = &o.ID
		a.ShipmentID = &s.ID
		err := db.Create(&a).Error

		if s.OrderID == o.ID {
			assert.NoError(t, err)
		} else {
			assert.True(t, errors.Is(err, ErrShipmentOrderMismatch))
			assert.Equal(t, before, artworkCount(t, db), "rejected write must not persist")
		}
	}
}

func TestUpdateRevalidatesInvariant(t *testing.T) {
	db := openTestDB(t)
	o1, s1 := createOrderWithShipment(t, db)
	o2, _ := createOrderWithShipment(t, db)

	a := newArtwork("Revalidated")
	a.OrderID = &o1.ID
	a.ShipmentID = &s1.ID
	require.NoError(t, db.Create(&a).Error)

	// moving the artwork to another order while it still sits on o1's
	// shipment must fail, even though the shipment field is untouched
	a.OrderID = &o2.ID
	err := db.Save(&a).Error
	assert.True(t, errors.Is(err, ErrShipmentOrderMismatch))

	var reloaded Artwork
	require.NoError(t, db.First(&reloaded, "id = ?", a.ID).Error)
	assert.Equal(t, o1.ID, *reloaded.OrderID)

	// clearing the shipment makes the same move legal
	a.ShipmentID = nil
	assert.NoError(t, db.Save(&a).Error)
}
