package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/24vasilekk/dolce/catalog"
	"github.com/24vasilekk/dolce/config"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main primes the Redis catalog cache with the built-in sample set so
// a fresh environment serves products before the remote API is up.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("DOLCE DEALS - Catalog Cache Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.ConnectRedis()
	log.Println("✓ Connected to Redis")

	kv := config.NewRedisKV(config.RedisClient)
	products := catalog.SampleProducts()

	ctx, cancel := config.WithTimeout()
	defer cancel()
	catalog.PrimeCache(ctx, kv, products)

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("✅ Cached %d sample products\n", len(products))
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Browse products at GET /api/v1/store/products")
}
