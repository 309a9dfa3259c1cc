// Package stores holds the per-visitor state containers: cart, wishlist,
// auth session and preferences. Each store owns its state behind a mutex
// and hands out snapshots; derived values are recomputed on every read.
package stores

import (
	"sync"

	"github.com/crumbandco/bakeshop/app/models"
	"github.com/crumbandco/bakeshop/app/utils/calc"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartStore holds the cart lines for one visitor. Lines are unique by the
// (product id, weight, flavor) composite key; adding the same combination
// again increments the existing line. Removal and quantity updates are
// keyed by product id alone and therefore touch every variant of that
// product, matching the storefront's behavior.
type CartStore struct {
	mu     sync.Mutex
	lines  []models.CartLine
	isOpen bool
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// AddLine upserts a line by composite key. Weight and flavor are accepted
// as opaque strings, with no validation against the product's option lists.
// A non-positive quantity is coerced to 1.
func (s *CartStore) AddLine(product models.Product, weight, flavor string, quantity int) {
	if quantity <= 0 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].SameKey(product.ID, weight, flavor) {
			s.lines[i].Quantity += quantity
			return
		}
	}
	s.lines = append(s.lines, models.CartLine{
		ID:       uuid.New().String(),
		Product:  product,
		Weight:   weight,
		Flavor:   flavor,
		Quantity: quantity,
	})
}

// RemoveLine drops every line for the product id, across all weight and
// flavor variants.
func (s *CartStore) RemoveLine(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = filterLines(s.lines, func(l models.CartLine) bool {
		return l.Product.ID != productID
	})
}

// SetQuantity sets the quantity on every line matching the product id.
// Quantities at or below zero remove the line.
func (s *CartStore) SetQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity = quantity
		}
	}
	s.lines = filterLines(s.lines, func(l models.CartLine) bool {
		return l.Quantity > 0
	})
}

// Clear empties the cart. Called after a successful checkout.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// ToggleVisibility flips the sidebar flag. UI affordance only.
func (s *CartStore) ToggleVisibility() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = !s.isOpen
}

// TotalItems recomputes the item count from the current lines.
func (s *CartStore) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return calc.TotalItems(s.lines)
}

// TotalPrice recomputes the cart subtotal from the current lines.
func (s *CartStore) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return calc.TotalPrice(s.lines)
}

// State returns a snapshot with derived totals filled in.
func (s *CartStore) State() models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]models.CartLine, len(s.lines))
	copy(lines, s.lines)
	return models.CartState{
		Lines:      lines,
		IsOpen:     s.isOpen,
		TotalItems: calc.TotalItems(lines),
		TotalPrice: calc.TotalPrice(lines),
	}
}

func filterLines(lines []models.CartLine, keep func(models.CartLine) bool) []models.CartLine {
	out := lines[:0]
	for _, l := range lines {
		if keep(l) {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
