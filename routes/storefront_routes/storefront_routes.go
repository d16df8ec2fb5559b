package storefront_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	store_category "github.com/24vasilekk/dolce/controllers/storefront/category_controller"
	store_favorites "github.com/24vasilekk/dolce/controllers/storefront/favorites_controller"
	store_order "github.com/24vasilekk/dolce/controllers/storefront/order_controller"
	store_product "github.com/24vasilekk/dolce/controllers/storefront/product_controller"
	"github.com/24vasilekk/dolce/middleware"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetProducts)        // List with filters
		products.GET("/:id", store_product.GetProductByID) // Single product + similar

		// Bulk import is the one write surface, keep it rate limited
		products.POST("/import", middleware.RateLimiter(10, time.Minute), store_product.ImportProducts)
	}

	// Category taxonomy
	store.GET("/categories", store_category.GetCategories)

	// Favorites
	favorites := store.Group("/favorites")
	{
		favorites.GET("", store_favorites.GetFavorites)
		favorites.POST("/:id/toggle", store_favorites.ToggleFavorite)
	}

	// Purchase inquiry
	store.POST("/orders/inquiry", store_order.CreateInquiry)
}
