package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/your-org/storefront-backend/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		App: config.AppConfig{Name: "Storefront Backend"},
		Admin: config.AdminConfig{
			Username:      "admin",
			Password:      "pizza123",
			SessionSecret: "0123456789abcdef0123456789abcdef",
			SessionExpiry: time.Hour,
		},
	}
}

func TestCheckCredentialsPlaintext(t *testing.T) {
	m := NewSessionManager(testConfig(t))

	assert.True(t, m.CheckCredentials("admin", "pizza123"))
	assert.False(t, m.CheckCredentials("admin", "wrong"))
	assert.False(t, m.CheckCredentials("root", "pizza123"))
}

func TestCheckCredentialsBcryptHashTakesPrecedence(t *testing.T) {
	cfg := testConfig(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	cfg.Admin.PasswordHash = string(hash)

	m := NewSessionManager(cfg)
	assert.True(t, m.CheckCredentials("admin", "s3cret"))
	// The plaintext fallback is ignored once a hash is configured.
	assert.False(t, m.CheckCredentials("admin", "pizza123"))
}

func TestIssueAndValidateAdminToken(t *testing.T) {
	m := NewSessionManager(testConfig(t))

	token, err := m.IssueAdminToken()
	require.NoError(t, err)
	assert.True(t, m.ValidateAdminToken(token))
}

func TestValidateRejectsGarbageAndForeignTokens(t *testing.T) {
	m := NewSessionManager(testConfig(t))

	assert.False(t, m.ValidateAdminToken(""))
	assert.False(t, m.ValidateAdminToken("not.a.token"))

	other := testConfig(t)
	other.Admin.SessionSecret = "ffffffffffffffffffffffffffffffff"
	foreign, err := NewSessionManager(other).IssueAdminToken()
	require.NoError(t, err)
	assert.False(t, m.ValidateAdminToken(foreign))
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	cfg := testConfig(t)
	cfg.Admin.SessionExpiry = -time.Minute

	m := NewSessionManager(cfg)
	token, err := m.IssueAdminToken()
	require.NoError(t, err)
	assert.False(t, m.ValidateAdminToken(token))
}
