// Package config reads the server's environment-driven settings. A .env
// file is honored when present, matching the deployment setup.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	AllowedOrigins string
	// BodyLimit caps request bodies (attachment uploads included), bytes.
	BodyLimit int

	// StaticDir holds the two frontend bundles under admin/ and investor/.
	StaticDir string
	UploadDir string

	// DatabaseURL switches the record store from in-memory to Postgres.
	DatabaseURL string

	// S3-compatible object storage for attachments; local disk when unset.
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	CDNBaseURL       string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	return Config{
		Port:           getenv("PORT", "5000"),
		AllowedOrigins: getenv("CORS_ORIGINS", "*"),
		BodyLimit:      getenvInt("MAX_CONTENT_LENGTH", 16*1024*1024),

		StaticDir: getenv("STATIC_DIR", "./static"),
		UploadDir: getenv("UPLOAD_FOLDER", "./uploads"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		StorageEndpoint:  os.Getenv("STORAGE_ENDPOINT"),
		StorageAccessKey: os.Getenv("STORAGE_ACCESS_KEY_ID"),
		StorageSecretKey: os.Getenv("STORAGE_ACCESS_KEY_SECRET"),
		StorageBucket:    os.Getenv("STORAGE_BUCKET_NAME"),
		CDNBaseURL:       os.Getenv("CDN_BASE_URL"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️  %s is not a number (%q), using default %d", key, v, fallback)
		return fallback
	}
	return n
}
