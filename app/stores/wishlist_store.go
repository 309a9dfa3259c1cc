package stores

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/crumbandco/bakeshop/app/models"
	"github.com/crumbandco/bakeshop/app/storage"
	"go.uber.org/zap"
)

// WishlistKeyPrefix is the fixed storage key prefix for serialized
// wishlists; the visitor id is appended so each visitor gets their own
// durable entry.
const WishlistKeyPrefix = "bakeshop_wishlist:"

// WishlistStore is a set of product snapshots unique by id. Every mutation
// synchronously writes the full set to the key-value store; construction
// rehydrates from the same key and silently falls back to empty on a
// missing key, storage error or corrupt payload.
type WishlistStore struct {
	mu     sync.Mutex
	items  []models.Product
	isOpen bool

	kv  storage.KeyValue
	key string
	log *zap.SugaredLogger
}

func NewWishlistStore(ctx context.Context, kv storage.KeyValue, visitorID string, log *zap.SugaredLogger) *WishlistStore {
	s := &WishlistStore{
		kv:  kv,
		key: WishlistKeyPrefix + visitorID,
		log: log,
	}
	s.load(ctx)
	return s
}

func (s *WishlistStore) load(ctx context.Context) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if err != storage.ErrKeyNotFound {
			s.log.Warnf("wishlist: failed to read %s, starting empty: %v", s.key, err)
		}
		return
	}
	var items []models.Product
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.Warnf("wishlist: corrupt payload under %s, starting empty: %v", s.key, err)
		return
	}
	s.items = items
}

// persist writes the current set. Storage failures are logged, never
// surfaced; the in-memory set stays authoritative for the session.
func (s *WishlistStore) persist(ctx context.Context) {
	raw, err := json.Marshal(s.items)
	if err != nil {
		s.log.Errorf("wishlist: failed to serialize %s: %v", s.key, err)
		return
	}
	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		s.log.Warnf("wishlist: failed to persist %s: %v", s.key, err)
	}
}

// Add appends the product; adding an id already present is a no-op.
func (s *WishlistStore) Add(ctx context.Context, product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == product.ID {
			return
		}
	}
	s.items = append(s.items, product)
	s.persist(ctx)
}

// Remove drops the entry with the given id; absent ids are a no-op.
func (s *WishlistStore) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	removed := false
	for _, item := range s.items {
		if item.ID == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return
	}
	if len(kept) == 0 {
		kept = nil
	}
	s.items = kept
	s.persist(ctx)
}

// Has reports membership by product id.
func (s *WishlistStore) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Clear empties the set.
func (s *WishlistStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.items == nil {
		return
	}
	s.items = nil
	s.persist(ctx)
}

func (s *WishlistStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *WishlistStore) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = true
}

func (s *WishlistStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = false
}

func (s *WishlistStore) ToggleVisibility() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = !s.isOpen
}

// State returns a snapshot of the current set.
func (s *WishlistStore) State() models.WishlistState {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.Product, len(s.items))
	copy(items, s.items)
	return models.WishlistState{
		Items:  items,
		IsOpen: s.isOpen,
		Count:  len(items),
	}
}
