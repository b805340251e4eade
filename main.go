package main

import (
	"log"
	"time"

	"portfolio-app/config"
	"portfolio-app/database"
	catalogapi "portfolio-app/internal/api/catalog"
	routes "portfolio-app/internal/app/http"
	"portfolio-app/internal/app/http/middleware"
	"portfolio-app/internal/blobstore"
	"portfolio-app/internal/imaging"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	store, err := blobstore.NewMinioStore(blobstore.MinioConfig{
		Endpoint:        config.MINIO_ENDPOINT,
		AccessKeyID:     config.MINIO_ACCESS_KEY,
		SecretAccessKey: config.MINIO_SECRET_KEY,
		Bucket:          config.MINIO_BUCKET,
		UseSSL:          config.MINIO_USE_SSL,
		PublicURL:       config.MINIO_PUBLIC_URL,
	})
	if err != nil {
		log.Fatal("❌ Failed to init blob store:", err)
	}

	r := gin.Default()
	r.Use(middleware.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	images := catalogapi.NewImagesHandler(store, imaging.StdDecoder{})
	routes.RegisterRoutes(r, images)

	r.Run(":" + config.PORT)
}
