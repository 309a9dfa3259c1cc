package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/crumbandco/bakeshop/app/catalog"
	"github.com/crumbandco/bakeshop/app/stores"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

var (
	errUnknownCity     = errors.New("unsupported city")
	errUnknownLanguage = errors.New("unsupported language")
)

type PreferenceHandler struct {
	base
}

func NewPreferenceHandler(r *render.Render, registry *stores.Registry, log *zap.SugaredLogger) *PreferenceHandler {
	return &PreferenceHandler{base: base{render: r, registry: registry, log: log}}
}

func (h *PreferenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	_, set := h.visitorSet(r)
	h.ok(w, map[string]interface{}{
		"city":        set.Preferences.City(),
		"has_visited": set.Preferences.HasVisited(),
		"language":    set.Preferences.Language(),
	})
}

type cityForm struct {
	City string `json:"city"`
}

func (h *PreferenceHandler) SetCity(w http.ResponseWriter, r *http.Request) {
	var form cityForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.fail(w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	if !contains(catalog.Cities, form.City) {
		h.fail(w, http.StatusBadRequest, errUnknownCity)
		return
	}
	_, set := h.visitorSet(r)
	set.Preferences.SetCity(persistCtx(r), form.City)
	h.Get(w, r)
}

type languageForm struct {
	Language string `json:"language"`
}

func (h *PreferenceHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var form languageForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.fail(w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	if !contains(catalog.Languages, form.Language) {
		h.fail(w, http.StatusBadRequest, errUnknownLanguage)
		return
	}
	_, set := h.visitorSet(r)
	set.Preferences.SetLanguage(persistCtx(r), form.Language)
	h.Get(w, r)
}

func (h *PreferenceHandler) MarkVisited(w http.ResponseWriter, r *http.Request) {
	_, set := h.visitorSet(r)
	set.Preferences.MarkVisited(persistCtx(r))
	h.Get(w, r)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
