// Package config holds the application constants and the environment-driven
// runtime configuration.
package config

import (
	"os"
	"strconv"
	"time"
)

const (
	// College codes
	CollegeCodeLength   = 6
	CollegeCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	// Sessions
	SessionCookieName = "cb_session"
	SessionTTL        = 72 * time.Hour

	// Password reset
	ResetTokenBytes = 32
	ResetTokenTTL   = time.Hour

	// Notifications
	NotificationFeedLimit = 10

	// Uploads
	UploadTimestampLayout = "20060102_150405_"
)

// AllowedUploadExtensions is the attachment extension allow-list
// (lowercased, without the leading dot).
var AllowedUploadExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"pdf":  true,
	"doc":  true,
	"docx": true,
}

// Config carries the runtime settings read from the environment.
type Config struct {
	Port        string
	DatabaseDSN string
	RedisAddr   string
	RedisDB     int
	SecretKey   string
	UploadDir   string
}

// Load reads the configuration from environment variables, applying
// development defaults for anything unset.
func Load() Config {
	return Config{
		Port:        getenv("PORT", "8080"),
		DatabaseDSN: getenv("DATABASE_DSN", "host=localhost user=user password=password dbname=complaintbox port=5432 sslmode=disable"),
		RedisAddr:   getenv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getenvInt("REDIS_DB", 0),
		SecretKey:   getenv("SECRET_KEY", "dev-secret-change-in-production"),
		UploadDir:   getenv("UPLOAD_DIR", "uploads"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
