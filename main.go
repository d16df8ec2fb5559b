// @title Dolce Deals Storefront API
// @version 1.0
// @description Catalog-browsing backend for the Dolce Deals fashion storefront
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/24vasilekk/dolce/catalog"
	"github.com/24vasilekk/dolce/config"
	store_favorites "github.com/24vasilekk/dolce/controllers/storefront/favorites_controller"
	store_order "github.com/24vasilekk/dolce/controllers/storefront/order_controller"
	store_product "github.com/24vasilekk/dolce/controllers/storefront/product_controller"
	_ "github.com/24vasilekk/dolce/docs"
	"github.com/24vasilekk/dolce/favorites"
	"github.com/24vasilekk/dolce/routes/storefront_routes"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Redis connection (catalog cache, favorites, rate limiting)
	config.ConnectRedis()
	kv := config.NewRedisKV(config.RedisClient)

	// Load the catalog through the fallback chain: remote API, cached
	// copy, bundled file, built-in sample. A failed tier is logged and
	// skipped, never fatal.
	ctx, cancel := config.WithTimeout()
	products, source := catalog.Load(ctx,
		&catalog.APISource{URL: config.GetEnv("CATALOG_API_URL", "http://localhost:5001/api/products")},
		&catalog.CacheSource{KV: kv},
		&catalog.FileSource{Path: config.GetEnv("CATALOG_FILE", "data/products.json")},
		catalog.SampleSource{},
	)
	if source == "api" {
		catalog.PrimeCache(ctx, kv, products)
	}
	cancel()

	store := catalog.NewStore(products)
	favStore := favorites.NewStore(config.Ctx, kv)
	log.Printf("✅ Catalog ready: %d products, %d favorites", store.Len(), favStore.Len())

	// Wire controllers to the shared stores
	store_product.Init(store, favStore)
	store_favorites.Init(store, favStore)
	store_order.Init(store)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	storefront_routes.SetupStorefrontRoutes(api)
	log.Println("✅ Storefront routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := config.GetEnv("PORT", "8081")
	fmt.Println("🚀 Server is running on http://localhost:" + port)
	router.Run(":" + port)
}
