// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/pkg/email"
	"gorm.io/gorm"
)

// CheckoutHandler handles the checkout flow
type CheckoutHandler struct {
	checkoutService *checkout.Service
	orderService    *order.Service
	config          *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(db *gorm.DB, cfg *config.Config, logger *logrus.Logger) *CheckoutHandler {
	catalogService := catalog.NewService(db, cfg)
	orderService := order.NewService(db, cfg)
	assembler := order.NewAssembler(catalogService, cfg.Shipping.DeliverySurcharge)
	notifier := email.NewService(cfg, logger)

	return &CheckoutHandler{
		checkoutService: checkout.NewService(assembler, orderService, notifier, logger),
		orderService:    orderService,
		config:          cfg,
	}
}

// GetCheckout handles GET /checkout. The cart is resolved against the live
// catalog so deleted products silently disappear from the preview.
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	draft, err := h.checkoutService.Preview(readCart(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to resolve cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lines":              draft.Lines,
		"subtotal":           draft.Subtotal,
		"delivery_surcharge": h.config.Shipping.DeliverySurcharge,
		"total":              draft.TotalPrice,
	})
}

// CompleteOrder handles POST /checkout/complete. On success the cart cookie
// is cleared and the shopper lands on the confirmation page.
func (h *CheckoutHandler) CompleteOrder(c *gin.Context) {
	var req checkout.CompleteOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid checkout form",
			"details": err.Error(),
		})
		return
	}

	stored, err := h.checkoutService.CompleteOrder(c.Request.Context(), readCart(c), &req)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to complete order",
		})
		return
	}

	clearCartCookie(c)
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/checkout/success/%d", stored.ID))
}

// GetSuccess handles GET /checkout/success/:id. The id is guessable, so the
// confirmation carries only the order summary; contact details and the
// delivery address stay on the admin side.
func (h *CheckoutHandler) GetSuccess(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	stored, err := h.orderService.GetOrder(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve order",
		})
		return
	}
	if stored == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order": gin.H{
			"id":            stored.ID,
			"status":        stored.Status,
			"items_summary": stored.ItemsSummary,
			"total_price":   stored.TotalPrice,
			"created_at":    stored.CreatedAt,
		},
	})
}
