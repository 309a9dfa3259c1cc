// Package catalog holds the static storefront data: products, taxonomy,
// cake customization option groups, and the checkout descriptors (delivery
// slots, payment methods, cities). Everything here is read-only; stores and
// handlers only ever reference it.
package catalog

import "github.com/crumbandco/bakeshop/app/models"

type Catalog struct {
	products   []models.Product
	categories []models.Category
	occasions  []models.Occasion
	byID       map[string]models.Product
}

// New builds the default catalog from the embedded product set.
func New() *Catalog {
	return newFrom(defaultProducts())
}

func newFrom(products []models.Product) *Catalog {
	c := &Catalog{
		products:   products,
		categories: defaultCategories,
		occasions:  defaultOccasions,
		byID:       make(map[string]models.Product, len(products)),
	}
	for _, p := range products {
		c.byID[p.ID] = p
	}
	return c
}

// Products returns all catalog products in display order.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductByID looks up a product; ok is false for unknown ids.
func (c *Catalog) ProductByID(id string) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) ProductBySlug(s string) (models.Product, bool) {
	for _, p := range c.products {
		if p.Slug == s {
			return p, true
		}
	}
	return models.Product{}, false
}

func (c *Catalog) ByCategory(category string) []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) ByOccasion(tag string) []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if p.HasOccasion(tag) {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) BestSellers() []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if p.IsBestSeller {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) Categories() []models.Category { return c.categories }
func (c *Catalog) Occasions() []models.Occasion  { return c.occasions }
