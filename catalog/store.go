// Package catalog implements the storefront core: the product
// collection, the filter and sort engines, the similarity ranker,
// pagination and ingestion. The engines are pure functions over
// product slices and perform no I/O.
package catalog

import (
	"errors"
	"sync"

	"github.com/24vasilekk/dolce/models"
)

var ErrNotFound = errors.New("product not found")

// Store is the in-memory system of record for browsing. Loaded once at
// startup, it only ever grows (bulk imports append). Reads vastly
// outnumber writes, hence the RWMutex.
type Store struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewStore(products []models.Product) *Store {
	return &Store{products: products}
}

// Products returns a snapshot copy of the catalog in load order.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]models.Product, len(s.products))
	copy(snapshot, s.products)
	return snapshot
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

func (s *Store) ByID(id models.ProductID) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// Append adds already-normalized products to the end of the catalog.
// No de-duplication against existing ids is performed; re-importing a
// record with a colliding id yields a duplicate entry.
func (s *Store) Append(batch []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, batch...)
}
