package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/24vasilekk/dolce/models"
)

const (
	cacheKey    = "dolce_products_cache"
	cacheMaxAge = 24 * time.Hour
)

// KeyValue is the persistence the loader's cache tier runs on. Get
// returns an empty string with a nil error for a missing key; a zero
// ttl means no expiry.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// Source is one strategy for obtaining the product catalog.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]models.Product, error)
}

// Load tries each source in order and returns the first non-empty
// catalog along with the name of the source that produced it. Failures
// are logged and advance to the next tier; they never surface as hard
// errors. With SampleSource last the chain cannot come back empty.
func Load(ctx context.Context, sources ...Source) ([]models.Product, string) {
	for _, src := range sources {
		products, err := src.Load(ctx)
		if err != nil {
			log.Printf("⚠️ %s catalog source failed: %v", src.Name(), err)
			continue
		}
		if len(products) == 0 {
			log.Printf("⚠️ %s catalog source returned no products", src.Name())
			continue
		}
		log.Printf("✅ Loaded %d products from %s", len(products), src.Name())
		return products, src.Name()
	}
	log.Println("❌ All catalog sources failed, using built-in sample")
	return SampleProducts(), "sample"
}

// cachePayload is what the cache tier stores, with the fetch time so
// stale entries can be discarded.
type cachePayload struct {
	Products  []models.Product `json:"products"`
	Timestamp time.Time        `json:"timestamp"`
	Version   string           `json:"version"`
}

// PrimeCache stores the catalog in the cache tier, best effort.
func PrimeCache(ctx context.Context, kv KeyValue, products []models.Product) {
	payload, err := json.Marshal(cachePayload{
		Products:  products,
		Timestamp: time.Now(),
		Version:   "1.0.0",
	})
	if err != nil {
		log.Printf("⚠️ Failed to encode catalog cache: %v", err)
		return
	}
	if err := kv.Set(ctx, cacheKey, string(payload), cacheMaxAge); err != nil {
		log.Printf("⚠️ Failed to prime catalog cache: %v", err)
	}
}

// ═══════════════════════════════════════════════════════════
// Sources
// ═══════════════════════════════════════════════════════════

// APISource fetches the catalog from the remote product API. Records
// go through ingestion validation, so a partially broken feed degrades
// to its valid subset instead of failing.
type APISource struct {
	URL    string
	Client *http.Client
}

func (s *APISource) Name() string { return "api" }

func (s *APISource) Load(ctx context.Context) ([]models.Product, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api responded %s", resp.Status)
	}

	var records []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode api catalog: %w", err)
	}
	return NormalizeBatch(records), nil
}

// CacheSource reads the catalog cached by a previous successful API
// load, rejecting entries older than cacheMaxAge.
type CacheSource struct {
	KV KeyValue
}

func (s *CacheSource) Name() string { return "cache" }

func (s *CacheSource) Load(ctx context.Context) ([]models.Product, error) {
	raw, err := s.KV.Get(ctx, cacheKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, fmt.Errorf("no cached catalog")
	}

	var payload cachePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("decode cached catalog: %w", err)
	}
	if time.Since(payload.Timestamp) > cacheMaxAge {
		return nil, fmt.Errorf("cached catalog is stale")
	}
	return payload.Products, nil
}

// FileSource reads the bundled static catalog file.
type FileSource struct {
	Path string
}

func (s *FileSource) Name() string { return "file" }

func (s *FileSource) Load(ctx context.Context) ([]models.Product, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Path, err)
	}
	return products, nil
}

// SampleSource terminates the chain with the built-in catalog.
type SampleSource struct{}

func (SampleSource) Name() string { return "sample" }

func (SampleSource) Load(ctx context.Context) ([]models.Product, error) {
	return SampleProducts(), nil
}
