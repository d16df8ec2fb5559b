// Package favorites keeps the user's favorited product ids: an
// in-memory set persisted through a key-value store under a fixed key.
// Favorites never expire and are independent of filtering.
package favorites

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/24vasilekk/dolce/models"
)

const storageKey = "dolce-deals-favorites"

// KeyValue is the external persistence interface. Get returns an empty
// string with a nil error for a missing key; a zero ttl means no
// expiry.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// Store is safe for concurrent use. Writes to the backing store are
// fire-and-forget: a failed save is logged, and the in-memory set
// stays authoritative for the session.
type Store struct {
	mu  sync.RWMutex
	ids map[models.ProductID]struct{}
	kv  KeyValue
}

// NewStore loads the persisted set. Missing or corrupt data degrades
// to an empty set and is never an error for the caller.
func NewStore(ctx context.Context, kv KeyValue) *Store {
	s := &Store{
		ids: make(map[models.ProductID]struct{}),
		kv:  kv,
	}

	raw, err := kv.Get(ctx, storageKey)
	if err != nil {
		log.Printf("⚠️ Failed to load favorites, starting empty: %v", err)
		return s
	}
	if raw == "" {
		return s
	}

	var ids []models.ProductID
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		log.Printf("⚠️ Corrupt favorites data, starting empty: %v", err)
		return s
	}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Toggle flips membership for the id and reports the new state.
func (s *Store) Toggle(ctx context.Context, id models.ProductID) bool {
	s.mu.Lock()
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
	_, favorite := s.ids[id]
	payload := s.encodeLocked()
	s.mu.Unlock()

	if err := s.kv.Set(ctx, storageKey, payload, 0); err != nil {
		log.Printf("⚠️ Failed to save favorites: %v", err)
	}
	return favorite
}

func (s *Store) IsFavorite(id models.ProductID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[id]
	return ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// IDs returns the favorited ids in sorted order.
func (s *Store) IDs() []models.ProductID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked()
}

func (s *Store) sortedLocked() []models.ProductID {
	ids := make([]models.ProductID, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// encodeLocked serializes the set as an ordered JSON list of ids.
func (s *Store) encodeLocked() string {
	data, _ := json.Marshal(s.sortedLocked())
	return string(data)
}
