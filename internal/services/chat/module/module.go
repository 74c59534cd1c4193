// Package module wires the chat bot into the process using modkit
package module

import (
	"net/http"

	"golang.org/x/time/rate"

	"streamlate/internal/modkit"
	"streamlate/internal/modkit/httpkit"

	"streamlate/internal/services/chat/domain"
	csvc "streamlate/internal/services/chat/service"
	trdom "streamlate/internal/services/translator/domain"
)

// Ports declares the injected dependencies for the chat module
type Ports struct {
	Translator trdom.TranslatorPort // required
	Replier    domain.Replier       // required
}

// Out is what this module exposes to the binary
type Out struct {
	Runner domain.RunnerPort
}

// Module implements modkit.Module. The chat bot mounts no routes; it is
// a worker module driven by the binary's run loop
type Module struct {
	deps modkit.Deps
	name string
	out  Out
}

// New constructs the chat module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("chat"),
	}, opts...)...)

	injected, ok := b.Ports.(Ports)
	if !ok {
		panic("chat module: expected WithPorts(chat/module.Ports)")
	}
	if injected.Translator == nil || injected.Replier == nil {
		panic("chat module: Ports missing Translator or Replier")
	}

	cfg := FromConfig(deps.Cfg)
	svc := csvc.New(csvc.Config{
		BotName:    cfg.BotName,
		ReplyRate:  rate.Limit(float64(cfg.ReplyPerMinute) / 60.0),
		ReplyBurst: cfg.ReplyBurst,
	}, injected.Translator, injected.Replier, deps.Log)

	m := &Module{deps: deps, name: b.Name}
	m.out = Out{Runner: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.out }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares satisfies modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(_ httpkit.Router) {}
