// Package http provides http transport for the translator
package http

import (
	stdhttp "net/http"

	"streamlate/internal/modkit/httpkit"
	"streamlate/internal/services/translator/domain"
)

// Register mounts the router
func Register(r httpkit.Router, port domain.TranslatorPort) {
	h := &handlers{port: port}
	httpkit.PostJSON[domain.TranslateInput](r, "/", h.translate)
}

type handlers struct{ port domain.TranslatorPort }

func (h *handlers) translate(r *stdhttp.Request, in domain.TranslateInput) (any, error) {
	return h.port.Translate(r.Context(), in.Text)
}
