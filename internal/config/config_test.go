package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("APP_PORT", "8080")
		t.Setenv("APP_ENV", "test")
		t.Setenv("DATA_DIR", "/tmp/data")
		t.Setenv("UPLOAD_DIR", "/tmp/uploads")
		t.Setenv("ADMIN_USERNAME", "beheerder")
		t.Setenv("ADMIN_PASSWORD", "geheim")
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRES_IN", "48h")
		t.Setenv("MAX_FILE_SIZE", "1048576")
		t.Setenv("ALLOWED_ORIGINS", "http://a.example,http://b.example")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "/tmp/data", cfg.DataDir)
		assert.Equal(t, "/tmp/uploads", cfg.UploadDir)
		assert.Equal(t, "beheerder", cfg.AdminUsername)
		assert.Equal(t, "test-secret", cfg.JWTSecret)
		assert.Equal(t, 48*time.Hour, cfg.TokenTTL)
		assert.Equal(t, int64(1<<20), cfg.MaxUploadSize)
		assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)

		assert.NoError(t, bcrypt.CompareHashAndPassword(cfg.AdminPasswordHash, []byte("geheim")))
	})

	t.Run("Defaults", func(t *testing.T) {
		cfg := LoadConfig()

		assert.Equal(t, "3000", cfg.AppPort)
		assert.Equal(t, "admin", cfg.AdminUsername)
		assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
		assert.Equal(t, int64(5<<20), cfg.MaxUploadSize)
	})
}
