package models

import "github.com/shopspring/decimal"

// Product is a catalog record. Catalog products are load-time constants and
// are never mutated; cart and wishlist entries carry snapshots of them.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Image         string          `json:"image"`
	Category      string          `json:"category"`
	Occasions     []string        `json:"occasions"`
	IsEggless     bool            `json:"is_eggless"`
	IsVegan       bool            `json:"is_vegan"`
	IsBestSeller  bool            `json:"is_best_seller"`
	IsNew         bool            `json:"is_new"`
	Rating        float64         `json:"rating"`
	Reviews       int             `json:"reviews"`
	Weights       []string        `json:"weights"`
	Flavors       []string        `json:"flavors"`
	Description   string          `json:"description"`
	DeliveryIn24h bool            `json:"delivery_in_24h"`
}

// HasOccasion reports whether the product carries the given occasion tag.
func (p Product) HasOccasion(tag string) bool {
	for _, o := range p.Occasions {
		if o == tag {
			return true
		}
	}
	return false
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Occasion struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
