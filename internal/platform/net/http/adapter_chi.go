package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// chiMux adapts *chi.Mux to Router
type chiMux struct{ m *chi.Mux }

// chiScope adapts a chi subrouter to Router, keeping the root mux for Mux()
type chiScope struct {
	root *chi.Mux
	r    chi.Router
}

// asStd wraps a platform Handler into a stdlib HandlerFunc
func asStd(h Handler) http.HandlerFunc { return http.HandlerFunc(h) }

// AdaptChi adapts a *chi.Mux to a Router
func AdaptChi(m *chi.Mux) Router { return chiMux{m: m} }

func (c chiMux) Get(p string, h Handler)     { c.m.Method(http.MethodGet, p, asStd(h)) }
func (c chiMux) Post(p string, h Handler)    { c.m.Method(http.MethodPost, p, asStd(h)) }
func (c chiMux) Put(p string, h Handler)     { c.m.Method(http.MethodPut, p, asStd(h)) }
func (c chiMux) Patch(p string, h Handler)   { c.m.Method(http.MethodPatch, p, asStd(h)) }
func (c chiMux) Delete(p string, h Handler)  { c.m.Method(http.MethodDelete, p, asStd(h)) }
func (c chiMux) Head(p string, h Handler)    { c.m.Method(http.MethodHead, p, asStd(h)) }
func (c chiMux) Options(p string, h Handler) { c.m.Method(http.MethodOptions, p, asStd(h)) }

func (c chiMux) Handle(p string, h http.Handler)           { c.m.Handle(p, h) }
func (c chiMux) Use(mw ...func(http.Handler) http.Handler) { c.m.Use(mw...) }

func (c chiMux) Group(fn func(Router)) {
	c.m.Group(func(sub chi.Router) { fn(chiScope{root: c.m, r: sub}) })
}

func (c chiMux) Route(pattern string, fn func(Router)) {
	c.m.Route(pattern, func(sub chi.Router) { fn(chiScope{root: c.m, r: sub}) })
}

func (c chiMux) Mux() http.Handler { return c.m }

func (c chiScope) Get(p string, h Handler)     { c.r.Method(http.MethodGet, p, asStd(h)) }
func (c chiScope) Post(p string, h Handler)    { c.r.Method(http.MethodPost, p, asStd(h)) }
func (c chiScope) Put(p string, h Handler)     { c.r.Method(http.MethodPut, p, asStd(h)) }
func (c chiScope) Patch(p string, h Handler)   { c.r.Method(http.MethodPatch, p, asStd(h)) }
func (c chiScope) Delete(p string, h Handler)  { c.r.Method(http.MethodDelete, p, asStd(h)) }
func (c chiScope) Head(p string, h Handler)    { c.r.Method(http.MethodHead, p, asStd(h)) }
func (c chiScope) Options(p string, h Handler) { c.r.Method(http.MethodOptions, p, asStd(h)) }

func (c chiScope) Handle(p string, h http.Handler)           { c.r.Handle(p, h) }
func (c chiScope) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }

func (c chiScope) Group(fn func(Router)) {
	c.r.Group(func(sub chi.Router) { fn(chiScope{root: c.root, r: sub}) })
}

func (c chiScope) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(sub chi.Router) { fn(chiScope{root: c.root, r: sub}) })
}

// chi.Router implements http.Handler
func (c chiScope) Mux() http.Handler { return c.r }
