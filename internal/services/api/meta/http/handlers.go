// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"streamlate/internal/core/version"
	"streamlate/internal/modkit/httpkit"
)

// PipelineInfo describes the loaded translation pipeline
type PipelineInfo struct {
	Languages    []string `json:"languages"`
	Dictionaries []string `json:"dictionaries"`
	PoolSize     int      `json:"pool_size"`
	RefinerOn    bool     `json:"refiner_on"`
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	Instance    string
	StartedAt   time.Time
	Pipeline    PipelineInfo
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/pipeline", h.pipeline)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Started string `json:"started"`
	Now     string `json:"now"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name     string `json:"name"`
	Instance string `json:"instance"`
	Started  string `json:"started"`
	Uptime   int64  `json:"uptime"`
}

func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:     h.deps.ServiceName,
		Instance: h.deps.Instance,
		Started:  h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:   int64(uptime / time.Second),
	}, nil
}

func (h *handlers) pipeline(_ *http.Request) (any, error) {
	return h.deps.Pipeline, nil
}
