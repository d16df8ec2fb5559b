package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/24vasilekk/dolce/models"
)

type fakeKV struct {
	data map[string]string
	err  error
}

func newFakeKV() *fakeKV { return &fakeKV{data: make(map[string]string)} }

func (f *fakeKV) Get(ctx context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.data[key], nil
}

func (f *fakeKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.data[key] = value
	return nil
}

type stubSource struct {
	name     string
	products []models.Product
	err      error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Load(ctx context.Context) ([]models.Product, error) {
	return s.products, s.err
}

func TestLoadReturnsFirstNonEmptySource(t *testing.T) {
	products, source := Load(context.Background(),
		&stubSource{name: "api", err: errors.New("connection refused")},
		&stubSource{name: "cache", products: nil},
		&stubSource{name: "file", products: SampleProducts()[:2]},
		&stubSource{name: "never"},
	)
	assert.Equal(t, "file", source)
	assert.Len(t, products, 2)
}

func TestLoadFallsBackToSampleWhenAllSourcesFail(t *testing.T) {
	products, source := Load(context.Background(),
		&stubSource{name: "api", err: errors.New("boom")},
		&stubSource{name: "cache", products: nil},
	)
	assert.Equal(t, "sample", source)
	assert.Len(t, products, 8)
}

func TestLoadWithNoSources(t *testing.T) {
	products, source := Load(context.Background())
	assert.Equal(t, "sample", source)
	assert.NotEmpty(t, products)
}

func TestAPISourceNormalizesFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1,"name":"Кроссовки","brand":"Nike","price":12990,"image":"https://cdn.example/a.jpg"},
			{"name":"битая запись","price":0}
		]`))
	}))
	defer srv.Close()

	src := &APISource{URL: srv.URL}
	products, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, models.ProductID("1"), products[0].ID)
}

func TestAPISourceRejectsNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	src := &APISource{URL: srv.URL}
	_, err := src.Load(context.Background())
	assert.Error(t, err)
}

func TestCacheSourceRoundTripThroughPrimeCache(t *testing.T) {
	kv := newFakeKV()
	PrimeCache(context.Background(), kv, SampleProducts())

	src := &CacheSource{KV: kv}
	products, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 8)
}

func TestCacheSourceMissAndStaleness(t *testing.T) {
	src := &CacheSource{KV: newFakeKV()}
	_, err := src.Load(context.Background())
	assert.Error(t, err)

	stale := newFakeKV()
	payload, marshalErr := json.Marshal(cachePayload{
		Products:  SampleProducts(),
		Timestamp: time.Now().Add(-25 * time.Hour),
		Version:   "1.0.0",
	})
	require.NoError(t, marshalErr)
	stale.data[cacheKey] = string(payload)

	_, err = (&CacheSource{KV: stale}).Load(context.Background())
	assert.Error(t, err)
}

func TestCacheSourceCorruptPayload(t *testing.T) {
	kv := newFakeKV()
	kv.data[cacheKey] = "{not valid json"
	_, err := (&CacheSource{KV: kv}).Load(context.Background())
	assert.Error(t, err)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	data, err := json.Marshal(SampleProducts()[:3])
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	products, err := (&FileSource{Path: path}).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 3)

	_, err = (&FileSource{Path: filepath.Join(t.TempDir(), "missing.json")}).Load(context.Background())
	assert.Error(t, err)
}

func TestSampleSourceNeverFails(t *testing.T) {
	products, err := (SampleSource{}).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 8)
}
