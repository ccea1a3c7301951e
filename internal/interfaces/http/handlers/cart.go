// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
)

// CartCookie is the cookie holding the encoded cart.
const CartCookie = "cart"

const cartCookieMaxAge = 30 * 24 * 60 * 60 // 30 days

// readCart decodes the cart cookie. A missing or corrupt cookie yields an
// empty cart; the shop never errors on bad cart state.
func readCart(c *gin.Context) cart.Cart {
	token, err := c.Cookie(CartCookie)
	if err != nil {
		return cart.Cart{}
	}
	return cart.Decode(token)
}

// writeCart stores the cart back on the response.
func writeCart(c *gin.Context, crt cart.Cart) {
	c.SetCookie(CartCookie, cart.Encode(crt), cartCookieMaxAge, "/", "", false, true)
}

// clearCartCookie expires the cart cookie.
func clearCartCookie(c *gin.Context) {
	c.SetCookie(CartCookie, "", -1, "/", "", false, true)
}

// redirectBack sends the shopper to the page they came from.
func redirectBack(c *gin.Context, fallback string) {
	target := c.GetHeader("Referer")
	if target == "" {
		target = fallback
	}
	c.Redirect(http.StatusSeeOther, target)
}

// CartHandler handles cart cookie mutations. The cart is pure client state:
// no mutation consults the catalog, so a carted product may already be gone.
// Such lines surface as ghosts and are skipped at assembly.
type CartHandler struct {
	config *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cfg *config.Config) *CartHandler {
	return &CartHandler{
		config: cfg,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	crt := readCart(c)
	c.JSON(http.StatusOK, gin.H{
		"items": crt,
		"count": crt.Count(),
	})
}

// AddToCart handles GET /cart/add/:id. The id is taken at face value and
// the shopper bounces back to the referring page.
func (h *CartHandler) AddToCart(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	writeCart(c, cart.Add(readCart(c), uint(id)))
	redirectBack(c, "/")
}

// UpdateCart handles GET /cart/update/:id/:action where action is plus or
// minus. Quantities never go below one item via minus; the line is removed
// instead. The flow always lands on the checkout page.
func (h *CartHandler) UpdateCart(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	crt := readCart(c)
	switch c.Param("action") {
	case "plus":
		crt = cart.Increment(crt, uint(id))
	case "minus":
		crt = cart.Decrement(crt, uint(id))
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cart action",
		})
		return
	}

	writeCart(c, crt)
	c.Redirect(http.StatusSeeOther, "/checkout")
}

// ClearCart handles GET /cart/clear
func (h *CartHandler) ClearCart(c *gin.Context) {
	clearCartCookie(c)
	c.Redirect(http.StatusSeeOther, "/checkout")
}
