package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/crumbandco/bakeshop/app/catalog"
	"github.com/crumbandco/bakeshop/app/models"
	"github.com/crumbandco/bakeshop/app/stores"
	"github.com/crumbandco/bakeshop/app/utils/format"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

var errBadRequestBody = errors.New("invalid request body")

type CartHandler struct {
	base
	catalog  *catalog.Catalog
	validate *validator.Validate
}

func NewCartHandler(r *render.Render, registry *stores.Registry, cat *catalog.Catalog, validate *validator.Validate, log *zap.SugaredLogger) *CartHandler {
	return &CartHandler{
		base:     base{render: r, registry: registry, log: log},
		catalog:  cat,
		validate: validate,
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	_, set := h.visitorSet(r)
	h.ok(w, set.Cart.State())
}

type addLineForm struct {
	ProductID string `json:"product_id" validate:"required"`
	Weight    string `json:"weight"`
	Flavor    string `json:"flavor"`
	Quantity  int    `json:"quantity"`

	// Custom carries a one-off product (a finished custom cake re-added
	// from the confirmation screen); when set, ProductID is ignored.
	Custom *models.Product `json:"custom,omitempty"`
}

func (h *CartHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	var form addLineForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.fail(w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	var product models.Product
	if form.Custom != nil {
		product = *form.Custom
	} else {
		if err := h.validate.Struct(form); err != nil {
			h.fail(w, http.StatusBadRequest, err)
			return
		}
		var ok bool
		product, ok = h.catalog.ProductByID(form.ProductID)
		if !ok {
			h.fail(w, http.StatusNotFound, errProductNotFound)
			return
		}
	}

	weight := form.Weight
	if weight == "" && len(product.Weights) > 0 {
		weight = product.Weights[0]
	}
	flavor := form.Flavor
	if flavor == "" && len(product.Flavors) > 0 {
		flavor = product.Flavors[0]
	}

	_, set := h.visitorSet(r)
	set.Cart.AddLine(product, weight, flavor, form.Quantity)
	h.created(w, set.Cart.State())
}

func (h *CartHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productID"]
	_, set := h.visitorSet(r)
	set.Cart.RemoveLine(productID)
	h.ok(w, set.Cart.State())
}

type setQuantityForm struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var form setQuantityForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.fail(w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	productID := mux.Vars(r)["productID"]
	_, set := h.visitorSet(r)
	set.Cart.SetQuantity(productID, form.Quantity)
	h.ok(w, set.Cart.State())
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	_, set := h.visitorSet(r)
	set.Cart.Clear()
	h.ok(w, set.Cart.State())
}

func (h *CartHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	_, set := h.visitorSet(r)
	set.Cart.ToggleVisibility()
	h.ok(w, set.Cart.State())
}

// Totals serves the header badge and sidebar so every consumer shows the
// same numbers.
func (h *CartHandler) Totals(w http.ResponseWriter, r *http.Request) {
	_, set := h.visitorSet(r)
	subtotal := set.Cart.TotalPrice()
	h.ok(w, map[string]interface{}{
		"total_items":   set.Cart.TotalItems(),
		"total_price":   subtotal,
		"total_display": format.Rupee(subtotal),
	})
}
