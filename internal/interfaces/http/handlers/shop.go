// internal/interfaces/http/handlers/shop.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// ShopHandler handles the public storefront endpoints
type ShopHandler struct {
	catalogService *catalog.Service
	config         *config.Config
}

// NewShopHandler creates a new shop handler
func NewShopHandler(db *gorm.DB, cfg *config.Config) *ShopHandler {
	return &ShopHandler{
		catalogService: catalog.NewService(db, cfg),
		config:         cfg,
	}
}

// Browse handles GET /. The payload carries everything the shop page
// renders: the filtered product list, the category tabs, and the cart badge.
func (h *ShopHandler) Browse(c *gin.Context) {
	var filter catalog.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	products, err := h.catalogService.ListProducts(&filter)
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
		"products":   products,
		"categories": categories,
		"cart_count": readCart(c).Count(),
	})
}

// GetProduct handles GET /products/:id
func (h *ShopHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	product, err := h.catalogService.GetProduct(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve product",
		})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":    product,
		"cart_count": readCart(c).Count(),
	})
}
