// internal/interfaces/http/handlers/admin.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
	"gorm.io/gorm"
)

// AdminHandler handles the admin login session and panel
type AdminHandler struct {
	sessions       *auth.SessionManager
	orderService   *order.Service
	catalogService *catalog.Service
	config         *config.Config
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(db *gorm.DB, cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		sessions:       auth.NewSessionManager(cfg),
		orderService:   order.NewService(db, cfg),
		catalogService: catalog.NewService(db, cfg),
		config:         cfg,
	}
}

// LoginRequest represents the admin login form
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Login handles POST /admin/login. A successful login issues the signed
// session cookie; a failed one gets the same generic rejection regardless
// of which part of the credential was wrong.
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Username and password are required",
		})
		return
	}

	if !h.sessions.CheckCredentials(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid credentials",
		})
		return
	}

	token, err := h.sessions.IssueAdminToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create session",
		})
		return
	}

	maxAge := int(h.config.Admin.SessionExpiry.Seconds())
	c.SetCookie(middleware.AdminSessionCookie, token, maxAge, "/", "", h.config.IsProduction(), true)
	c.Redirect(http.StatusSeeOther, "/admin")
}

// Logout handles GET /admin/logout
func (h *AdminHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.AdminSessionCookie, "", -1, "/", "", h.config.IsProduction(), true)
	c.Redirect(http.StatusSeeOther, "/admin/login")
}

// GetLogin handles GET /admin/login. Clients that already carry a live
// session are bounced straight to the panel.
func (h *AdminHandler) GetLogin(c *gin.Context) {
	if token, err := c.Cookie(middleware.AdminSessionCookie); err == nil && h.sessions.ValidateAdminToken(token) {
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Admin login required",
	})
}

// Panel handles GET /admin. One payload drives the whole panel page:
// orders newest first plus the full catalog.
func (h *AdminHandler) Panel(c *gin.Context) {
	orders, err := h.orderService.ListOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve orders",
		})
		return
	}

	products, err := h.catalogService.ListProducts(nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve products",
		})
		return
	}

	categories, err := h.catalogService.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve categories",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":     orders,
		"products":   products,
		"categories": categories,
	})
}
