package handlers

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/your-org/storefront-backend/internal/config"
)

func checkoutRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	logger := logrus.New()
	h := NewCheckoutHandler(db, &config.Config{}, logger)
	r := gin.New()
	r.GET("/checkout/success/:id", h.GetSuccess)
	return r, mock
}

func TestGetSuccessOmitsCustomerContact(t *testing.T) {
	r, mock := checkoutRouter(t)

	orderColumns := []string{
		"id", "customer_name", "email", "phone", "shipping_method",
		"address", "total_price", "items_summary", "status",
		"created_at", "updated_at",
	}
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows(orderColumns).AddRow(
			12, "Jan Novak", "jan@example.com", "777123456", "delivery",
			"Main St 5", 327, "Pizza Margherita (2x)", "New",
			time.Now(), time.Now(),
		))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_lines"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "name", "unit_price", "quantity", "total_price", "created_at"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/checkout/success/12", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Pizza Margherita (2x)")
	assert.Contains(t, body, `"status":"New"`)
	assert.NotContains(t, body, "jan@example.com")
	assert.NotContains(t, body, "Jan Novak")
	assert.NotContains(t, body, "Main St 5")
	assert.NotContains(t, body, "777123456")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSuccessUnknownOrder(t *testing.T) {
	r, mock := checkoutRouter(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/checkout/success/999", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
