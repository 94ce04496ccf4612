package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	AppPort           string
	AppEnv            string
	DataDir           string
	UploadDir         string
	AdminUsername     string
	AdminPasswordHash []byte
	JWTSecret         string
	TokenTTL          time.Duration
	MaxUploadSize     int64
	AllowedOrigins    []string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:        getEnv("APP_PORT", "3000"),
		AppEnv:         getEnv("APP_ENV", "development"),
		DataDir:        getEnv("DATA_DIR", "data"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		AdminUsername:  getEnv("ADMIN_USERNAME", "admin"),
		JWTSecret:      getEnv("JWT_SECRET", "your-super-secret-key"),
		TokenTTL:       getDuration("JWT_EXPIRES_IN", 7*24*time.Hour),
		MaxUploadSize:  getInt64("MAX_FILE_SIZE", 5<<20),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ","),
	}

	// The admin password is only ever held as a bcrypt hash.
	hash, err := bcrypt.GenerateFromPassword([]byte(getEnv("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash admin password: %v", err)
	}
	cfg.AdminPasswordHash = hash

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return d
}

func getInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return n
}
