package routes

import (
	authapi "portfolio-app/internal/api/auth"
	catalogapi "portfolio-app/internal/api/catalog"
	"portfolio-app/internal/api/checkout"
	stripewebhooks "portfolio-app/internal/api/stripewebhook"
	"portfolio-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, images *catalogapi.ImagesHandler) {
	r.POST("/api/stripe-webhook", stripewebhooks.StripeWebhook)
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public catalog
	r.GET("/api/artworks", catalogapi.ListArtworks)
	r.GET("/api/artworks/:id", catalogapi.GetArtwork)
	r.POST("/api/create-checkout-session", checkout.CreateCheckoutSession)

	public := r.Group("/api")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/login", authapi.Login)

	// Catalog management (admin only)
	admin := r.Group("/api")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"), middleware.SanitizeAndCleanInputMiddleware())

	admin.POST("/artworks", catalogapi.CreateArtwork)
	admin.PUT("/artworks/:id", catalogapi.UpdateArtwork)
	admin.DELETE("/artworks/:id", catalogapi.DeleteArtwork)

	admin.POST("/images", images.UploadImage)
	admin.PUT("/images/:id", images.UpdateImage)
	admin.DELETE("/images/:id", images.DeleteImage)
}
