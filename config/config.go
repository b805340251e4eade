package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	JWT_SECRET  string
	CORS_ORIGIN string
	APP_URL     string

	ADMIN_EMAIL         string
	ADMIN_PASSWORD_HASH string

	MINIO_ENDPOINT   string
	MINIO_ACCESS_KEY string
	MINIO_SECRET_KEY string
	MINIO_BUCKET     string
	MINIO_PUBLIC_URL string
	MINIO_USE_SSL    bool
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")
	APP_URL = getEnv("APP_URL", "http://localhost:5173")

	ADMIN_EMAIL = getEnv("ADMIN_EMAIL", "")
	ADMIN_PASSWORD_HASH = getEnv("ADMIN_PASSWORD_HASH", "")

	MINIO_ENDPOINT = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MINIO_ACCESS_KEY = getEnv("MINIO_ACCESS_KEY", "")
	MINIO_SECRET_KEY = getEnv("MINIO_SECRET_KEY", "")
	MINIO_BUCKET = getEnv("MINIO_BUCKET", "artwork-images")
	MINIO_PUBLIC_URL = getEnv("MINIO_PUBLIC_URL", "")
	MINIO_USE_SSL = getEnv("MINIO_USE_SSL", "false") == "true"
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
