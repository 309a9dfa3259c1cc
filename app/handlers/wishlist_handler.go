package handlers

import (
	"net/http"

	"github.com/crumbandco/bakeshop/app/catalog"
	"github.com/crumbandco/bakeshop/app/stores"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type WishlistHandler struct {
	base
	catalog *catalog.Catalog
}

func NewWishlistHandler(r *render.Render, registry *stores.Registry, cat *catalog.Catalog, log *zap.SugaredLogger) *WishlistHandler {
	return &WishlistHandler{
		base:    base{render: r, registry: registry, log: log},
		catalog: cat,
	}
}

func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	_, set := h.visitorSet(r)
	h.ok(w, set.Wishlist.State())
}

func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productID"]
	product, ok := h.catalog.ProductByID(productID)
	if !ok {
		h.fail(w, http.StatusNotFound, errProductNotFound)
		return
	}
	_, set := h.visitorSet(r)
	set.Wishlist.Add(persistCtx(r), product)
	h.created(w, set.Wishlist.State())
}

func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productID"]
	_, set := h.visitorSet(r)
	set.Wishlist.Remove(persistCtx(r), productID)
	h.ok(w, set.Wishlist.State())
}

func (h *WishlistHandler) Clear(w http.ResponseWriter, r *http.Request) {
	_, set := h.visitorSet(r)
	set.Wishlist.Clear(persistCtx(r))
	h.ok(w, set.Wishlist.State())
}

func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	_, set := h.visitorSet(r)
	set.Wishlist.ToggleVisibility()
	h.ok(w, set.Wishlist.State())
}
