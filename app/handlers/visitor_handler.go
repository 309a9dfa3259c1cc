package handlers

import (
	"net/http"

	"github.com/crumbandco/bakeshop/app/stores"
	"github.com/crumbandco/bakeshop/app/utils/sessions"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

// VisitorHandler owns the visitor session itself, as opposed to the state
// hanging off it.
type VisitorHandler struct {
	base
	visitors sessions.VisitorStore
}

func NewVisitorHandler(r *render.Render, registry *stores.Registry, visitors sessions.VisitorStore, log *zap.SugaredLogger) *VisitorHandler {
	return &VisitorHandler{
		base:     base{render: r, registry: registry, log: log},
		visitors: visitors,
	}
}

// Reset forgets the device: the in-memory store set is dropped and the
// visitor cookie is expired, so the next request starts as a first-time
// visitor with a fresh id. Durable rows under the old id are orphaned, not
// deleted.
func (h *VisitorHandler) Reset(w http.ResponseWriter, r *http.Request) {
	visitorID, _ := h.visitorSet(r)
	h.registry.Drop(visitorID)
	if err := h.visitors.ClearSession(w, r); err != nil {
		h.fail(w, http.StatusInternalServerError, err)
		return
	}
	h.log.Infof("visitor %s reset", visitorID)
	w.WriteHeader(http.StatusNoContent)
}
