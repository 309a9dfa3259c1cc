package handlers

import (
	"errors"
	"net/http"

	"github.com/crumbandco/bakeshop/app/catalog"
	"github.com/crumbandco/bakeshop/app/models"
	"github.com/crumbandco/bakeshop/app/stores"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

var errProductNotFound = errors.New("product not found")

type CatalogHandler struct {
	base
	catalog *catalog.Catalog
}

func NewCatalogHandler(r *render.Render, registry *stores.Registry, cat *catalog.Catalog, log *zap.SugaredLogger) *CatalogHandler {
	return &CatalogHandler{
		base:    base{render: r, registry: registry, log: log},
		catalog: cat,
	}
}

// Home renders the storefront summary the landing page needs.
func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	_, set := h.visitorSet(r)
	h.ok(w, map[string]interface{}{
		"best_sellers":   h.catalog.BestSellers(),
		"categories":     h.catalog.Categories(),
		"occasions":      h.catalog.Occasions(),
		"cart_count":     set.Cart.TotalItems(),
		"wishlist_count": set.Wishlist.Count(),
		"city":           set.Preferences.City(),
		"has_visited":    set.Preferences.HasVisited(),
	})
}

// ListProducts supports the shop page filters via query parameters.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	var products []models.Product
	switch {
	case r.URL.Query().Get("category") != "":
		products = h.catalog.ByCategory(r.URL.Query().Get("category"))
	case r.URL.Query().Get("occasion") != "":
		products = h.catalog.ByOccasion(r.URL.Query().Get("occasion"))
	case r.URL.Query().Get("best_sellers") == "true":
		products = h.catalog.BestSellers()
	default:
		products = h.catalog.Products()
	}
	h.ok(w, map[string]interface{}{"products": products})
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	product, ok := h.catalog.ProductByID(id)
	if !ok {
		product, ok = h.catalog.ProductBySlug(id)
	}
	if !ok {
		h.fail(w, http.StatusNotFound, errProductNotFound)
		return
	}
	h.ok(w, product)
}

// CustomizationOptions exposes the cake configurator option groups.
func (h *CatalogHandler) CustomizationOptions(w http.ResponseWriter, r *http.Request) {
	h.ok(w, map[string]interface{}{
		"shapes":            catalog.CakeShapes,
		"sizes":             catalog.CakeSizes,
		"flavors":           catalog.CakeFlavors,
		"frostings":         catalog.FrostingTypes,
		"decorations":       catalog.Decorations,
		"themes":            catalog.CakeThemes,
		"eggless_surcharge": catalog.EgglessSurcharge,
		"photo_surcharge":   catalog.PhotoUploadSurcharge,
	})
}

// CheckoutOptions exposes the delivery slots, payment methods and cities.
func (h *CatalogHandler) CheckoutOptions(w http.ResponseWriter, r *http.Request) {
	h.ok(w, map[string]interface{}{
		"delivery_slots":  catalog.DeliverySlots,
		"payment_methods": catalog.PaymentMethods,
		"cities":          catalog.Cities,
		"languages":       catalog.Languages,
	})
}
