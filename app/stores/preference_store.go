package stores

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/crumbandco/bakeshop/app/storage"
	"go.uber.org/zap"
)

// Fixed storage key prefixes for visitor preferences.
const (
	CityKeyPrefix     = "bakeshop_selected_city:"
	VisitedKeyPrefix  = "bakeshop_has_visited:"
	LanguageKeyPrefix = "bakeshop_language:"
)

const defaultLanguage = "en"

// PreferenceStore persists the small per-visitor preferences: selected
// delivery city, the has-visited flag, and the language code. Reads fall
// back to zero values on any storage problem, same contract as the
// wishlist.
type PreferenceStore struct {
	mu        sync.Mutex
	city      string
	visited   bool
	language  string
	visitorID string

	kv  storage.KeyValue
	log *zap.SugaredLogger
}

func NewPreferenceStore(ctx context.Context, kv storage.KeyValue, visitorID string, log *zap.SugaredLogger) *PreferenceStore {
	s := &PreferenceStore{
		visitorID: visitorID,
		language:  defaultLanguage,
		kv:        kv,
		log:       log,
	}
	s.city = s.loadString(ctx, CityKeyPrefix+visitorID, "")
	s.visited = s.loadString(ctx, VisitedKeyPrefix+visitorID, "") == "true"
	s.language = s.loadString(ctx, LanguageKeyPrefix+visitorID, defaultLanguage)
	return s
}

func (s *PreferenceStore) loadString(ctx context.Context, key, fallback string) string {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if err != storage.ErrKeyNotFound {
			s.log.Warnf("preferences: failed to read %s: %v", key, err)
		}
		return fallback
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		s.log.Warnf("preferences: corrupt value under %s: %v", key, err)
		return fallback
	}
	return v
}

func (s *PreferenceStore) storeString(ctx context.Context, key, value string) {
	raw, _ := json.Marshal(value)
	if err := s.kv.Set(ctx, key, raw); err != nil {
		s.log.Warnf("preferences: failed to persist %s: %v", key, err)
	}
}

// SetCity records the selected delivery city and marks the visitor as
// having visited.
func (s *PreferenceStore) SetCity(ctx context.Context, city string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.city = city
	s.storeString(ctx, CityKeyPrefix+s.visitorID, city)
	if !s.visited {
		s.visited = true
		s.storeString(ctx, VisitedKeyPrefix+s.visitorID, "true")
	}
}

func (s *PreferenceStore) City() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.city
}

func (s *PreferenceStore) HasVisited() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visited
}

func (s *PreferenceStore) MarkVisited(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.visited {
		return
	}
	s.visited = true
	s.storeString(ctx, VisitedKeyPrefix+s.visitorID, "true")
}

func (s *PreferenceStore) SetLanguage(ctx context.Context, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = code
	s.storeString(ctx, LanguageKeyPrefix+s.visitorID, code)
}

func (s *PreferenceStore) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}
