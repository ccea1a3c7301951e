// internal/interfaces/http/middleware/session.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

// AdminSessionCookie is the cookie carrying the signed admin session token.
const AdminSessionCookie = "admin_session"

// SessionGate decides whether a request carries a valid admin session. The
// admin handlers and routes depend on this interface, not on the cookie
// mechanics, so tests can swap in a stub.
type SessionGate interface {
	IsAdmin(c *gin.Context) bool
}

// CookieSessionGate validates the signed session cookie issued at login.
type CookieSessionGate struct {
	sessions *auth.SessionManager
}

// NewCookieSessionGate creates a gate backed by the session manager
func NewCookieSessionGate(cfg *config.Config) *CookieSessionGate {
	return &CookieSessionGate{
		sessions: auth.NewSessionManager(cfg),
	}
}

// IsAdmin reports whether the request carries a live admin session cookie.
func (g *CookieSessionGate) IsAdmin(c *gin.Context) bool {
	token, err := c.Cookie(AdminSessionCookie)
	if err != nil {
		return false
	}
	return g.sessions.ValidateAdminToken(token)
}

// AdminGate protects the admin routes. Browser requests without a valid
// session are redirected to the login page; everything else gets a 401.
func AdminGate(gate SessionGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if gate.IsAdmin(c) {
			c.Next()
			return
		}

		if acceptsHTML(c) {
			c.Redirect(http.StatusSeeOther, "/admin/login")
		} else {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Admin session required",
			})
		}
		c.Abort()
	}
}

func acceptsHTML(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	return accept == "" || strings.Contains(accept, "text/html") || strings.Contains(accept, "*/*")
}
