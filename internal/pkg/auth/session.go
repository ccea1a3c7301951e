// internal/pkg/auth/session.go
package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/your-org/storefront-backend/internal/config"
)

// SessionClaims represents the admin session token claims
type SessionClaims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// SessionManager issues and validates the signed admin session cookie. The
// panel has a single shared credential; the cookie carries a signed token
// instead of the secret itself.
type SessionManager struct {
	config *config.Config
}

// NewSessionManager creates a new session manager
func NewSessionManager(cfg *config.Config) *SessionManager {
	return &SessionManager{
		config: cfg,
	}
}

// CheckCredentials verifies the admin login form against the configured
// credential. A bcrypt hash takes precedence; the plaintext password is a
// development fallback compared in constant time.
func (m *SessionManager) CheckCredentials(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(m.config.Admin.Username)) != 1 {
		return false
	}

	if m.config.Admin.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword(
			[]byte(m.config.Admin.PasswordHash), []byte(password)) == nil
	}

	return subtle.ConstantTimeCompare([]byte(password), []byte(m.config.Admin.Password)) == 1
}

// IssueAdminToken generates a signed session token for the admin cookie.
func (m *SessionManager) IssueAdminToken() (string, error) {
	now := time.Now().UTC()

	claims := &SessionClaims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.config.Admin.SessionExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.config.App.Name,
			Subject:   "admin",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.config.Admin.SessionSecret))
}

// ValidateAdminToken reports whether the token is a live admin session.
func (m *SessionManager) ValidateAdminToken(tokenString string) bool {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.config.Admin.SessionSecret), nil
	})
	if err != nil {
		return false
	}

	claims, ok := token.Claims.(*SessionClaims)
	return ok && token.Valid && claims.Admin
}
