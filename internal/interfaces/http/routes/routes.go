// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/interfaces/http/handlers"
)

// Deps carries the wired services the routes depend on
type Deps struct {
	Config   *config.Config
	Source   catalog.Source
	Store    *cart.Store
	Orders   *order.Repository
	Checkout *checkout.Service
}

// SetupRoutes registers all API routes on the given group
func SetupRoutes(rg *gin.RouterGroup, deps Deps) {
	SetupProductRoutes(rg, deps)
	SetupCartRoutes(rg, deps)
	SetupCheckoutRoutes(rg, deps)
}

// SetupProductRoutes sets up product related routes
func SetupProductRoutes(rg *gin.RouterGroup, deps Deps) {
	productHandler := handlers.NewProductHandler(deps.Source, deps.Config)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/categories", productHandler.GetCategories)
		products.GET("/:id", productHandler.GetProduct)
	}
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, deps Deps) {
	cartHandler := handlers.NewCartHandler(deps.Store)

	carts := rg.Group("/cart")
	{
		carts.GET("", cartHandler.GetCart)
		carts.POST("/items", cartHandler.AddItem)
		carts.PUT("/items/:id", cartHandler.UpdateItem)
		carts.DELETE("/items/:id", cartHandler.RemoveItem)
		carts.DELETE("", cartHandler.ClearCart)
	}
}

// SetupCheckoutRoutes sets up checkout and order routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, deps Deps) {
	checkoutHandler := handlers.NewCheckoutHandler(deps.Checkout, deps.Orders)

	rg.POST("/checkout", checkoutHandler.Submit)
	rg.GET("/orders/last", checkoutHandler.LastOrder)
}
