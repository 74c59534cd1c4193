// Package api provides the HTTP API for the translation pipeline
package api

import (
	"streamlate/internal/platform/config"
	"streamlate/internal/platform/logger"
	phttp "streamlate/internal/platform/net/http"

	"streamlate/internal/modkit"
	"streamlate/internal/modkit/httpkit"
	"streamlate/internal/modkit/module"

	"streamlate/internal/core/langid"
	metahttp "streamlate/internal/services/api/meta/http"
	metamod "streamlate/internal/services/api/meta/module"
	translatormod "streamlate/internal/services/translator/module"
	tsvc "streamlate/internal/services/translator/service"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Logger *logger.Logger

	// model stages built by the binary at startup
	Engine  tsvc.Engine
	Refiner tsvc.Refiner

	// Pipeline describes the loaded stages for the meta endpoints
	Pipeline metahttp.PipelineInfo
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Log: *opt.Logger,
		Cfg: opt.Config,
	}

	if opt.Pipeline.Languages == nil {
		for _, l := range langid.All() {
			opt.Pipeline.Languages = append(opt.Pipeline.Languages, l.String())
		}
	}

	translator := translatormod.New(deps, modkit.WithPorts(translatormod.Ports{
		Engine:  opt.Engine,
		Refiner: opt.Refiner,
	}))

	mods := []module.Module{
		metamod.New(deps, opt.Pipeline),
		translator,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
