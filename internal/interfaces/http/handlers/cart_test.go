package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
)

func cartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewCartHandler(&config.Config{})
	r := gin.New()
	r.GET("/cart", h.GetCart)
	r.GET("/cart/add/:id", h.AddToCart)
	r.GET("/cart/update/:id/:action", h.UpdateCart)
	r.GET("/cart/clear", h.ClearCart)
	return r
}

func TestAddToCartTakesIDAtFaceValue(t *testing.T) {
	r := cartRouter(t)

	// No catalog row needs to exist for the id being added.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart/add/9", nil)
	withCartCookie(req, cart.Cart{1: 1})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Equal(t, cart.Cart{1: 1, 9: 1}, cookieValue(t, w))
}

func TestAddToCartReturnsToReferer(t *testing.T) {
	r := cartRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart/add/1", nil)
	req.Header.Set("Referer", "/products/1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/products/1", w.Header().Get("Location"))
	assert.Equal(t, cart.Cart{1: 1}, cookieValue(t, w))
}

// cookieValue extracts the decoded cart cookie set on a response.
func cookieValue(t *testing.T, w *httptest.ResponseRecorder) cart.Cart {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == CartCookie {
			raw, err := url.QueryUnescape(c.Value)
			require.NoError(t, err)
			return cart.Decode(raw)
		}
	}
	t.Fatal("cart cookie not set")
	return nil
}

func withCartCookie(req *http.Request, crt cart.Cart) {
	req.AddCookie(&http.Cookie{Name: CartCookie, Value: url.QueryEscape(cart.Encode(crt))})
}

func TestUpdateCartPlus(t *testing.T) {
	r := cartRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart/update/1/plus", nil)
	withCartCookie(req, cart.Cart{1: 2})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/checkout", w.Header().Get("Location"))
	assert.Equal(t, cart.Cart{1: 3}, cookieValue(t, w))
}

func TestUpdateCartMinusRemovesLastItem(t *testing.T) {
	r := cartRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart/update/1/minus", nil)
	withCartCookie(req, cart.Cart{1: 1, 3: 2})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, cart.Cart{3: 2}, cookieValue(t, w))
}

func TestUpdateCartRejectsUnknownAction(t *testing.T) {
	r := cartRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart/update/1/double", nil)
	withCartCookie(req, cart.Cart{1: 1})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClearCartExpiresCookie(t *testing.T) {
	r := cartRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart/clear", nil)
	withCartCookie(req, cart.Cart{1: 4})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/checkout", w.Header().Get("Location"))

	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == CartCookie {
			found = true
			assert.True(t, c.MaxAge < 0)
		}
	}
	assert.True(t, found, "cart cookie should be expired")
}

func TestGetCartHandlesCorruptCookie(t *testing.T) {
	r := cartRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: CartCookie, Value: "not-json"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items": {}, "count": 0}`, w.Body.String())
}
