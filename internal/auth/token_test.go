package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, ttl time.Duration) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewService(Config{
		Username:     "admin",
		PasswordHash: hash,
		Secret:       []byte("test-secret"),
		TokenTTL:     ttl,
	})
}

func TestLogin(t *testing.T) {
	svc := newTestService(t, time.Hour)

	t.Run("Valid credentials issue a verifiable token", func(t *testing.T) {
		token, principal, err := svc.Login("admin", "admin123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "admin", principal.Username)
		assert.Equal(t, "admin", principal.Role)

		verified, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, principal, verified)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, _, err := svc.Login("admin", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Wrong username", func(t *testing.T) {
		_, _, err := svc.Login("root", "admin123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestVerify(t *testing.T) {
	svc := newTestService(t, time.Hour)

	t.Run("Garbage token", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token signed with another secret", func(t *testing.T) {
		other := NewService(Config{
			Username:     "admin",
			PasswordHash: svc.cfg.PasswordHash,
			Secret:       []byte("different-secret"),
			TokenTTL:     time.Hour,
		})
		token, _, err := other.Login("admin", "admin123")
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired token", func(t *testing.T) {
		expired := newTestService(t, -time.Minute)
		token, _, err := expired.Login("admin", "admin123")
		require.NoError(t, err)

		_, err = expired.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestExtractBearer(t *testing.T) {
	t.Run("Bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		assert.Equal(t, "some-token", ExtractBearer(req))
	})

	t.Run("No header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, ExtractBearer(req))
	})

	t.Run("Non-bearer scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		assert.Empty(t, ExtractBearer(req))
	})
}
