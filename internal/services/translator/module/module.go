// Package module wires the translator pipeline into the API using modkit
package module

import (
	"net/http"

	"streamlate/internal/core/langid"
	"streamlate/internal/core/slang"
	"streamlate/internal/modkit"
	"streamlate/internal/modkit/httpkit"

	thttp "streamlate/internal/services/translator/http"
	"streamlate/internal/services/translator/domain"
	tsvc "streamlate/internal/services/translator/service"
)

// Ports declares the injected model stages. Engine is required; Refiner
// may be nil for the single-model shape
type Ports struct {
	Engine  tsvc.Engine
	Refiner tsvc.Refiner
}

// Out is what this module exposes to other modules
type Out struct {
	Translator domain.TranslatorPort
}

// Module implements modkit.Module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	out Out
	svc *tsvc.Service
}

// New constructs the translator module. The classifier and the slang
// automatons are built once here and shared read-only afterwards
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("translator"),
		modkit.WithPrefix("/translate"),
	}, opts...)...)

	injected, ok := b.Ports.(Ports)
	if !ok {
		panic("translator module: expected WithPorts(translator/module.Ports)")
	}
	if injected.Engine == nil {
		panic("translator module: Ports missing Engine")
	}

	svc := tsvc.New(
		langid.New(),
		slang.New(),
		injected.Engine,
		injected.Refiner,
		deps.Log,
	)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.out = Out{Translator: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		thttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports exposes the translator port for other modules
func (m *Module) Ports() any { return m.out }
