package stores

import (
	"context"
	"sync"

	"github.com/crumbandco/bakeshop/app/storage"
	"go.uber.org/zap"
)

// Set bundles one visitor's stores. Carts and sessions are in-memory for
// the life of the process; the wishlist and preferences rehydrate from the
// key-value store when the set is first built.
type Set struct {
	Cart        *CartStore
	Wishlist    *WishlistStore
	Session     *SessionStore
	Preferences *PreferenceStore
}

// Registry maps visitor ids to their store sets. There is exactly one
// logical writer per set (the visitor's browser), so last-write-wins per
// store is sufficient; the registry mutex only guards the map itself.
type Registry struct {
	mu   sync.Mutex
	sets map[string]*Set

	kv  storage.KeyValue
	log *zap.SugaredLogger
}

func NewRegistry(kv storage.KeyValue, log *zap.SugaredLogger) *Registry {
	return &Registry{
		sets: make(map[string]*Set),
		kv:   kv,
		log:  log,
	}
}

// ForVisitor returns the visitor's store set, building it on first use.
func (r *Registry) ForVisitor(ctx context.Context, visitorID string) *Set {
	r.mu.Lock()
	defer r.mu.Unlock()
	if set, ok := r.sets[visitorID]; ok {
		return set
	}
	set := &Set{
		Cart:        NewCartStore(),
		Wishlist:    NewWishlistStore(ctx, r.kv, visitorID, r.log),
		Session:     NewSessionStore(),
		Preferences: NewPreferenceStore(ctx, r.kv, visitorID, r.log),
	}
	r.sets[visitorID] = set
	return set
}

// Drop forgets a visitor's set. The wishlist and preferences stay in the
// key-value store and come back on the next ForVisitor.
func (r *Registry) Drop(visitorID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sets, visitorID)
}
