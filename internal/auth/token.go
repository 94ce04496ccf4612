// Package auth holds the single-admin credential check and the signed
// token lifecycle gating mutation endpoints.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Config carries the administrative principal and signing material.
// Passed in at construction; there is no process-wide credential state.
type Config struct {
	Username     string
	PasswordHash []byte // bcrypt hash
	Secret       []byte
	TokenTTL     time.Duration
}

// Principal is the identity embedded in a verified token.
type Principal struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type claims struct {
	Principal
	jwt.RegisteredClaims
}

type Service struct {
	cfg Config
}

func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// Login checks the credentials against the configured admin principal
// and returns a signed, time-limited token. The username comparison is
// constant-time; the password goes through bcrypt. There is no lockout
// or backoff here, rate limiting lives in the HTTP middleware.
func (s *Service) Login(username, password string) (string, Principal, error) {
	nameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.cfg.PasswordHash, []byte(password))
	if !nameOK || passErr != nil {
		return "", Principal{}, ErrInvalidCredentials
	}

	principal := Principal{ID: 1, Username: s.cfg.Username, Role: "admin"}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Principal: principal,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	})

	signed, err := token.SignedString(s.cfg.Secret)
	if err != nil {
		return "", Principal{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, principal, nil
}

// Verify parses and validates a token and returns the embedded principal.
func (s *Service) Verify(tokenString string) (Principal, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.cfg.Secret, nil
	})
	if err != nil || !token.Valid {
		return Principal{}, ErrInvalidToken
	}
	return c.Principal, nil
}

// ExtractBearer pulls the bearer token out of the Authorization header,
// or returns "" when there is none.
func ExtractBearer(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
