package main

import (
	"context"

	"streamlate/internal/platform/config"
	"streamlate/internal/platform/logger"
	"streamlate/internal/platform/models"
	phttp "streamlate/internal/platform/net/http"

	"streamlate/internal/llm"
	"streamlate/internal/translate"

	"streamlate/internal/services/api"
	metahttp "streamlate/internal/services/api/meta/http"
)

func main() {
	root := config.New()

	// bring up logging early
	l := logger.Get()

	engine, refiner, llmCfg := buildStages(root, l)
	defer refiner.Close()

	// http server (reads API_PORT)
	srv := phttp.NewServer(root)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:  root,
			Logger:  l,
			Engine:  engine,
			Refiner: refiner,
			Pipeline: metahttp.PipelineInfo{
				Dictionaries: []string{"French", "Japanese", "Chinese"},
				PoolSize:     llmCfg.PoolSize,
				RefinerOn:    true,
			},
		},
	)

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}

// buildStages loads the model backends. MODEL_BACKEND=stub (the default
// for builds without native inference) skips artifact resolution and runs
// deterministic in-process stubs; anything else requires the artifacts
// from MODELS_DIR and a natively linked backend
func buildStages(root config.Conf, l *logger.Logger) (*translate.Engine, *llm.Refiner, llm.Config) {
	llmCfg := llm.FromConf(root.Prefix("LLM_"))
	backend := root.MayString("MODEL_BACKEND", "stub")

	var model llm.Model
	switch backend {
	case "stub":
		l.Warn().Msg("stub inference backends; translations are canned")
		model = llm.NewStubModel(llm.IgnoreMarker)
	default:
		paths, err := models.Resolve(root)
		if err != nil {
			l.Panic().Err(err).Msg("model artifact resolution failed")
		}
		l.Panic().
			Str("backend", backend).
			Str("weights", paths.RefinerWeights).
			Msg("no native inference backend linked in this build")
	}

	refiner, err := llm.NewRefiner(model, llmCfg, *l)
	if err != nil {
		l.Panic().Err(err).Msg("refiner startup failed")
	}
	engine := translate.NewEngine(&translate.StubInvoker{})
	return engine, refiner, llmCfg
}
