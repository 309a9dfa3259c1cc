// Package handlers is the HTTP presentation layer. Handlers decode and
// validate requests, call into stores and services, and render JSON; no
// business behavior lives here.
package handlers

import (
	"context"
	"net/http"

	"github.com/crumbandco/bakeshop/app/middlewares"
	"github.com/crumbandco/bakeshop/app/stores"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type base struct {
	render   *render.Render
	registry *stores.Registry
	log      *zap.SugaredLogger
}

// visitorSet resolves the request's store set from the visitor cookie.
func (b *base) visitorSet(r *http.Request) (string, *stores.Set) {
	id := middlewares.VisitorID(r)
	return id, b.registry.ForVisitor(r.Context(), id)
}

func (b *base) ok(w http.ResponseWriter, data interface{}) {
	_ = b.render.JSON(w, http.StatusOK, data)
}

func (b *base) created(w http.ResponseWriter, data interface{}) {
	_ = b.render.JSON(w, http.StatusCreated, data)
}

func (b *base) fail(w http.ResponseWriter, status int, err error) {
	_ = b.render.JSON(w, status, map[string]string{"error": err.Error()})
}

// persistCtx detaches persistence writes from the request lifetime so a
// client hangup cannot half-apply a mutation.
func persistCtx(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}
