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

var errUnknownGroup = errors.New("unknown option group")

type CustomizeHandler struct {
	base
	customizeSvc *services.CustomizeService
}

func NewCustomizeHandler(r *render.Render, registry *stores.Registry, customizeSvc *services.CustomizeService, log *zap.SugaredLogger) *CustomizeHandler {
	return &CustomizeHandler{
		base:         base{render: r, registry: registry, log: log},
		customizeSvc: customizeSvc,
	}
}

func (h *CustomizeHandler) Start(w http.ResponseWriter, r *http.Request) {
	visitorID, set := h.visitorSet(r)
	wizard := h.customizeSvc.Start(visitorID, set.Cart)
	h.created(w, h.view(wizard))
}

func (h *CustomizeHandler) Get(w http.ResponseWriter, r *http.Request) {
	wizard, err := h.wizard(r)
	if err != nil {
		h.fail(w, http.StatusNotFound, err)
		return
	}
	h.ok(w, h.view(wizard))
}

type selectForm struct {
	Group string `json:"group"`
	ID    string `json:"id"`
}

// Select handles the single-select groups and decoration toggles.
func (h *CustomizeHandler) Select(w http.ResponseWriter, r *http.Request) {
	var form selectForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.fail(w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	wizard, err := h.wizard(r)
	if err != nil {
		h.fail(w, http.StatusNotFound, err)
		return
	}

	switch form.Group {
	case "shape":
		err = wizard.SetShape(form.ID)
	case "size":
		err = wizard.SetSize(form.ID)
	case "flavor":
		err = wizard.SetFlavor(form.ID)
	case "frosting":
		err = wizard.SetFrosting(form.ID)
	case "decoration":
		err = wizard.ToggleDecoration(form.ID)
	case "theme":
		err = wizard.SetTheme(form.ID)
	default:
		h.fail(w, http.StatusBadRequest, errUnknownGroup)
		return
	}
	if err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	h.ok(w, h.view(wizard))
}

type detailsForm struct {
	Message             *string `json:"message"`
	MessageColor        string  `json:"message_color"`
	UploadedImage       *string `json:"uploaded_image"`
	SpecialInstructions *string `json:"special_instructions"`
	IsEggless           *bool   `json:"is_eggless"`
}

// UpdateDetails applies the message/photo step fields; nil fields are
// left untouched.
func (h *CustomizeHandler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	var form detailsForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.fail(w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	wizard, err := h.wizard(r)
	if err != nil {
		h.fail(w, http.StatusNotFound, err)
		return
	}

	if form.Message != nil {
		wizard.SetMessage(*form.Message, form.MessageColor)
	}
	if form.UploadedImage != nil {
		wizard.AttachImage(*form.UploadedImage)
	}
	if form.SpecialInstructions != nil {
		wizard.SetSpecialInstructions(*form.SpecialInstructions)
	}
	if form.IsEggless != nil {
		wizard.SetEggless(*form.IsEggless)
	}
	h.ok(w, h.view(wizard))
}

func (h *CustomizeHandler) Next(w http.ResponseWriter, r *http.Request) {
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

func (h *CustomizeHandler) Back(w http.ResponseWriter, r *http.Request) {
	wizard, err := h.wizard(r)
	if err != nil {
		h.fail(w, http.StatusNotFound, err)
		return
	}
	wizard.Back()
	h.ok(w, h.view(wizard))
}

// Finish adds the configured cake to the cart and discards the wizard.
func (h *CustomizeHandler) Finish(w http.ResponseWriter, r *http.Request) {
	visitorID, set := h.visitorSet(r)
	wizard, err := h.customizeSvc.Wizard(visitorID)
	if err != nil {
		h.fail(w, http.StatusNotFound, err)
		return
	}
	product := wizard.Finish()
	h.customizeSvc.Cancel(visitorID)
	h.created(w, map[string]interface{}{
		"product": product,
		"cart":    set.Cart.State(),
	})
}

func (h *CustomizeHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	visitorID, _ := h.visitorSet(r)
	h.customizeSvc.Cancel(visitorID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *CustomizeHandler) wizard(r *http.Request) (*services.CustomizeWizard, error) {
	visitorID, _ := h.visitorSet(r)
	return h.customizeSvc.Wizard(visitorID)
}

func (h *CustomizeHandler) view(wizard *services.CustomizeWizard) map[string]interface{} {
	price := wizard.Price()
	return map[string]interface{}{
		"draft":         wizard.Draft(),
		"price":         price,
		"price_display": format.Rupee(price),
	}
}
