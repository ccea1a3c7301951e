// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires all storefront and admin routes
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config, logger *logrus.Logger) {
	SetupShopRoutes(rg, db, cfg)
	SetupCheckoutRoutes(rg, db, cfg, logger)
	SetupAdminRoutes(rg, db, cfg)
}

// SetupShopRoutes sets up the public browse and cart routes
func SetupShopRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	shopHandler := handlers.NewShopHandler(db, cfg)
	cartHandler := handlers.NewCartHandler(cfg)

	rg.GET("/", shopHandler.Browse)
	rg.GET("/products/:id", shopHandler.GetProduct)

	// Cart mutations are plain links in the shop pages, hence GET
	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.GET("/add/:id", cartHandler.AddToCart)
		cart.GET("/update/:id/:action", cartHandler.UpdateCart)
		cart.GET("/clear", cartHandler.ClearCart)
	}
}

// SetupCheckoutRoutes sets up the checkout flow
func SetupCheckoutRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config, logger *logrus.Logger) {
	checkoutHandler := handlers.NewCheckoutHandler(db, cfg, logger)

	checkout := rg.Group("/checkout")
	{
		checkout.GET("", checkoutHandler.GetCheckout)
		checkout.POST("/complete", checkoutHandler.CompleteOrder)
		checkout.GET("/success/:id", checkoutHandler.GetSuccess)
	}
}

// SetupAdminRoutes sets up the admin panel behind the session gate
func SetupAdminRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	adminHandler := handlers.NewAdminHandler(db, cfg)
	catalogHandler := handlers.NewAdminCatalogHandler(db, cfg)
	orderHandler := handlers.NewAdminOrderHandler(db, cfg)

	admin := rg.Group("/admin")
	{
		// Session endpoints stay outside the gate
		admin.GET("/login", adminHandler.GetLogin)
		admin.POST("/login", adminHandler.Login)
		admin.GET("/logout", adminHandler.Logout)

		// Everything else requires a live admin session
		protected := admin.Group("")
		protected.Use(middleware.AdminGate(middleware.NewCookieSessionGate(cfg)))
		{
			protected.GET("", adminHandler.Panel)

			protected.GET("/orders/:id", orderHandler.GetOrder)
			protected.POST("/orders/:id/status", orderHandler.UpdateStatus)
			protected.GET("/orders/:id/invoice", orderHandler.GetInvoice)

			protected.POST("/products", catalogHandler.CreateProduct)
			protected.GET("/products/:id/edit", catalogHandler.GetProduct)
			protected.POST("/products/:id", catalogHandler.UpdateProduct)
			protected.GET("/products/:id/delete", catalogHandler.DeleteProduct)
			protected.GET("/images/:id/delete", catalogHandler.DeleteImage)

			protected.POST("/categories", catalogHandler.CreateCategory)
			protected.GET("/categories/:id/delete", catalogHandler.DeleteCategory)
		}
	}
}
