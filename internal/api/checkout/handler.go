package checkout

import (
	"errors"
	"net/http"
	"os"

	"portfolio-app/config"
	"portfolio-app/database"
	"portfolio-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	"gorm.io/gorm"
)

// ------------------------------
// POST /api/create-checkout-session
// ------------------------------
func CreateCheckoutSession(c *gin.Context) {
	var body struct {
		ArtworkID string `json:"artwork_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.ArtworkID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid artwork_id"})
		return
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	var a catalog.Artwork
	if err := database.DB.First(&a, "id = ?", body.ArtworkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}

	if a.Status != catalog.StatusAvailable {
		c.JSON(http.StatusConflict, gin.H{"error": "Artwork is not available for purchase"})
		return
	}

	appURL := config.APP_URL

	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(appURL + "/thank-you"),
		CancelURL:  stripe.String(appURL + "/artwork/" + a.ID + "?canceled=1"),
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),

		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(int64(a.PriceCents)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(a.Title),
					},
				},
			},
		},

		ClientReferenceID: stripe.String(a.ID),
		Metadata: map[string]string{
			"artwork_id": a.ID,
		},
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}
