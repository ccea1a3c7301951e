package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

type stubGate struct {
	admin bool
}

func (g *stubGate) IsAdmin(*gin.Context) bool { return g.admin }

func gatedRouter(gate SessionGate) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/orders", AdminGate(gate), func(c *gin.Context) {
		c.String(http.StatusOK, "orders")
	})
	return r
}

func TestAdminGateAllowsAdmin(t *testing.T) {
	r := gatedRouter(&stubGate{admin: true})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "orders", w.Body.String())
}

func TestAdminGateRedirectsBrowsers(t *testing.T) {
	r := gatedRouter(&stubGate{admin: false})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestAdminGateRejectsAPIClients(t *testing.T) {
	r := gatedRouter(&stubGate{admin: false})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.Header.Set("Accept", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCookieSessionGate(t *testing.T) {
	cfg := &config.Config{
		App: config.AppConfig{Name: "Storefront Backend"},
		Admin: config.AdminConfig{
			Username:      "admin",
			Password:      "pizza123",
			SessionSecret: "0123456789abcdef0123456789abcdef",
			SessionExpiry: time.Hour,
		},
	}
	gate := NewCookieSessionGate(cfg)
	token, err := auth.NewSessionManager(cfg).IssueAdminToken()
	require.NoError(t, err)

	r := gatedRouter(gate)

	// No cookie
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.Header.Set("Accept", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Tampered cookie
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.Header.Set("Accept", "application/json")
	req.AddCookie(&http.Cookie{Name: AdminSessionCookie, Value: token + "x"})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid session
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.AddCookie(&http.Cookie{Name: AdminSessionCookie, Value: token})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
