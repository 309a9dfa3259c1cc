package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/crumbandco/bakeshop/app/services"
	"github.com/crumbandco/bakeshop/app/stores"
	"github.com/crumbandco/bakeshop/app/utils/format"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	base
	checkoutSvc *services.CheckoutService
}

func NewCheckoutHandler(r *render.Render, registry *stores.Registry, checkoutSvc *services.CheckoutService, log *zap.SugaredLogger) *CheckoutHandler {
	return &CheckoutHandler{
		base:        base{render: r, registry: registry, log: log},
		checkoutSvc: checkoutSvc,
	}
}

func (h *CheckoutHandler) Start(w http.ResponseWriter, r *http.Request) {
	visitorID, set := h.visitorSet(r)
	wizard := h.checkoutSvc.Start(visitorID, set)
	h.created(w, h.view(wizard))
}

func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	wizard, err := h.wizard(r)
	if err != nil {
		h.fail(w, http.StatusNotFound, err)
		return
	}
	h.ok(w, h.view(wizard))
}

func (h *CheckoutHandler) UpdateDelivery(w http.ResponseWriter, r *http.Request) {
	var form services.DeliveryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.fail(w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	wizard, err := h.wizard(r)
	if err != nil {
		h.fail(w, http.StatusNotFound, err)
		return
	}
	wizard.UpdateDelivery(form)
	h.ok(w, h.view(wizard))
}

type paymentForm struct {
	Method string `json:"method"`
}

func (h *CheckoutHandler) SetPayment(w http.ResponseWriter, r *http.Request) {
	var form paymentForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.fail(w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	wizard, err := h.wizard(r)
	if err != nil {
		h.fail(w, http.StatusNotFound, err)
		return
	}
	if err := wizard.SetPaymentMethod(form.Method); err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	h.ok(w, h.view(wizard))
}

func (h *CheckoutHandler) Next(w http.ResponseWriter, r *http.Request) {
	wizard, err := h.wizard(r)
	if err != nil {
		h.fail(w, http.StatusNotFound, err)
		return
	}
	if err := wizard.Next(); err != nil {
		h.fail(w, http.StatusUnprocessableEntity, err)
		return
	}
	h.ok(w, h.view(wizard))
}

func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	wizard, err := h.wizard(r)
	if err != nil {
		h.fail(w, http.StatusNotFound, err)
		return
	}
	wizard.Back()
	h.ok(w, h.view(wizard))
}

func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	wizard, err := h.wizard(r)
	if err != nil {
		h.fail(w, http.StatusNotFound, err)
		return
	}
	order, err := wizard.Submit(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartEmpty),
			errors.Is(err, services.ErrNotAtReview),
			errors.Is(err, services.ErrAlreadyPlaced):
			h.fail(w, http.StatusConflict, err)
		default:
			h.fail(w, http.StatusBadGateway, err)
		}
		return
	}
	h.created(w, order)
}

func (h *CheckoutHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	visitorID := h.visitorID(r)
	h.checkoutSvc.Cancel(visitorID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *CheckoutHandler) wizard(r *http.Request) (*services.CheckoutWizard, error) {
	return h.checkoutSvc.Wizard(h.visitorID(r))
}

func (h *CheckoutHandler) visitorID(r *http.Request) string {
	id, _ := h.visitorSet(r)
	return id
}

func (h *CheckoutHandler) view(wizard *services.CheckoutWizard) map[string]interface{} {
	subtotal, charge, total := wizard.Summary()
	view := map[string]interface{}{
		"draft":                   wizard.Draft(),
		"subtotal":                subtotal,
		"delivery_charge":         charge,
		"total":                   total,
		"subtotal_display":        format.Rupee(subtotal),
		"delivery_charge_display": format.Rupee(charge),
		"total_display":           format.Rupee(total),
	}
	if order, ok := wizard.PlacedOrder(); ok {
		view["order"] = order
	}
	return view
}
