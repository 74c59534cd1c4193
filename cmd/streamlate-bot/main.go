package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"streamlate/internal/modkit"
	"streamlate/internal/modkit/module"
	"streamlate/internal/platform/config"
	"streamlate/internal/platform/logger"
	"streamlate/internal/platform/models"

	"streamlate/internal/core/langid"
	"streamlate/internal/core/slang"
	"streamlate/internal/llm"
	"streamlate/internal/translate"

	"streamlate/internal/services/chat/creds"
	chatmod "streamlate/internal/services/chat/module"
	"streamlate/internal/services/chat/twitch"
	trsvc "streamlate/internal/services/translator/service"
)

func main() {
	root := config.New()
	botCfg := root.Prefix("BOT_")

	l := logger.Get()

	var (
		fChannel = flag.String("channel", "", "chat channel to join (overrides stored credentials)")
		fCreds   = flag.String("creds", "", "credentials file path (default: XDG data dir)")
	)
	flag.Parse()

	// stored login, with env taking precedence so containers can inject it
	store, err := creds.NewStore(*fCreds)
	if err != nil {
		l.Panic().Err(err).Msg("resolving credentials path")
	}
	login := store.Load()
	if tok := botCfg.MayString("TOKEN", ""); tok != "" {
		login.AccessToken = tok
	}
	if *fChannel != "" {
		login.Channel = *fChannel
	}
	if ch := botCfg.MayString("CHANNEL", ""); login.Channel == "" && ch != "" {
		login.Channel = ch
	}
	if login.Empty() || login.Channel == "" {
		l.Panic().Str("creds", store.Path()).Msg("no chat credentials; set BOT_TOKEN and BOT_CHANNEL or store them")
	}
	if err := store.Save(login); err != nil {
		l.Warn().Err(err).Msg("could not persist credentials")
	}
	l.Info().Str("channel", login.Channel).Str("token", creds.Mask(login.AccessToken)).Msg("chat login ready")

	engine, refiner := buildStages(root, l)
	defer refiner.Close()

	translator := trsvc.New(langid.New(), slang.New(), engine, refiner, *l)

	client := twitch.New(twitch.Config{
		Nick:    chatmod.FromConfig(root).BotName,
		Token:   login.AccessToken,
		Channel: login.Channel,
	}, *l)

	deps := modkit.Deps{Cfg: root, Log: *l}
	cm := chatmod.New(deps, modkit.WithPorts(chatmod.Ports{
		Translator: translator,
		Replier:    client,
	}))
	module.Register(cm.Name(), cm.Ports())
	runner := module.MustPortsOf[chatmod.Out](cm).Runner

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx, client); err != nil && ctx.Err() == nil {
		l.Fatal().Err(err).Msg("chat bot stopped")
	}
	l.Info().Msg("chat bot shut down")
}

// buildStages mirrors the API binary: stub backends by default, fatal
// when a native backend is requested but not linked
func buildStages(root config.Conf, l *logger.Logger) (*translate.Engine, *llm.Refiner) {
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
	return translate.NewEngine(&translate.StubInvoker{}), refiner
}
