package stripewebhooks

import (
	"errors"
	"fmt"
	"time"

	"portfolio-app/database"
	"portfolio-app/internal/domain/catalog"
	"portfolio-app/internal/domain/orders"

	log "github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm"
)

// handleCheckoutSessionCompleted records the sale: creates the Order, links
// the artwork to it and marks it sold. Replayed events are acknowledged
// without a second write.
func handleCheckoutSessionCompleted(session *stripe.CheckoutSession) error {
	artworkID := artworkIDFromSession(session)
	if artworkID == "" {
		return errors.New("missing artwork_id (metadata.artwork_id or client_reference_id)")
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		var a catalog.Artwork
		if err := tx.First(&a, "id = ?", artworkID).Error; err != nil {
			return fmt.Errorf("artwork not found: %w", err)
		}

		// idempotency: Stripe retries webhooks
		if a.Status == catalog.StatusSold && a.OrderID != nil {
			log.WithField("artwork_id", a.ID).Info("Checkout already processed")
			return nil
		}

		email := ""
		if session.CustomerDetails != nil {
			email = session.CustomerDetails.Email
		}

		o := orders.Order{
			CustomerEmail:   email,
			StripeSessionID: stripe.String(session.ID),
		}
		if err := tx.Create(&o).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		now := time.Now()
		a.Status = catalog.StatusSold
		a.SoldAt = &now
		a.OrderID = &o.ID
		if err := tx.Save(&a).Error; err != nil {
			return fmt.Errorf("failed to mark artwork sold: %w", err)
		}

		log.WithFields(log.Fields{"artwork_id": a.ID, "order_id": o.ID}).Info("Artwork sold")
		return nil
	})
}

func artworkIDFromSession(session *stripe.CheckoutSession) string {
	if session.Metadata != nil && session.Metadata["artwork_id"] != "" {
		return session.Metadata["artwork_id"]
	}
	return session.ClientReferenceID
}
