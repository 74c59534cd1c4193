// Package service implements the chat bot reply policy
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	perr "streamlate/internal/platform/errors"
	"streamlate/internal/platform/logger"
	"streamlate/internal/services/chat/domain"
	trdom "streamlate/internal/services/translator/domain"
)

// Config tunes the reply policy
type Config struct {
	// BotName is the bot's own display name; its messages are skipped so
	// the bot never translates itself
	BotName string

	// ReplyRate and ReplyBurst bound outbound replies. Messages above
	// the limit are dropped, not queued
	ReplyRate  rate.Limit
	ReplyBurst int
}

// Service consumes chat events and replies with translations
type Service struct {
	cfg        Config
	translator trdom.TranslatorPort
	replier    domain.Replier
	limiter    *rate.Limiter
	log        logger.Logger
}

// New constructs the chat service
func New(cfg Config, translator trdom.TranslatorPort, replier domain.Replier, log logger.Logger) *Service {
	if cfg.ReplyRate <= 0 {
		cfg.ReplyRate = rate.Limit(1)
	}
	if cfg.ReplyBurst <= 0 {
		cfg.ReplyBurst = 3
	}
	return &Service{
		cfg:        cfg,
		translator: translator,
		replier:    replier,
		limiter:    rate.NewLimiter(cfg.ReplyRate, cfg.ReplyBurst),
		log:        log.With().Str("component", "chat").Logger(),
	}
}

// Run satisfies domain.RunnerPort. Each event is handled on its own
// goroutine so one slow decode never stalls the intake loop
func (s *Service) Run(ctx context.Context, src domain.EventSource) error {
	events, err := src.Events(ctx)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "chat: connecting event source")
	}

	var wg sync.WaitGroup
	for ev := range events {
		wg.Add(1)
		go func(ev domain.Event) {
			defer wg.Done()
			if err := s.Handle(ctx, ev); err != nil {
				s.log.Error().Err(err).Str("sender", ev.Sender).Msg("event handling failed")
			}
		}(ev)
	}
	wg.Wait()
	return ctx.Err()
}

// Handle applies the reply policy to a single event. Pipeline errors are
// confined to logs; only reply delivery failures are returned
func (s *Service) Handle(ctx context.Context, ev domain.Event) error {
	if strings.EqualFold(ev.Sender, s.cfg.BotName) {
		return nil
	}

	res, err := s.translator.Translate(ctx, ev.Text)
	if err != nil {
		// unknown-language chatter is normal noise, everything else is not
		if perr.IsCode(err, perr.ErrorCodeUnknownLanguage) {
			s.log.Debug().Str("sender", ev.Sender).Msg("no confident language")
		} else {
			s.log.Error().Err(err).Str("sender", ev.Sender).Msg("translation failed")
		}
		return nil
	}

	if res.Language == "English" {
		s.log.Info().Str("sender", ev.Sender).Msg("english, no reply")
		return nil
	}
	if res.Translation == ev.Text {
		s.log.Info().Str("lang", res.Language).Str("sender", ev.Sender).Msg("ignored")
		return nil
	}

	if !s.limiter.Allow() {
		s.log.Warn().Str("sender", ev.Sender).Msg("reply rate exceeded, dropping")
		return nil
	}

	reply := fmt.Sprintf("(translation) %s: %s", ev.Sender, res.Translation)
	if err := s.replier.Reply(ctx, ev, reply); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "chat: sending reply")
	}
	s.log.Info().Str("lang", res.Language).Str("sender", ev.Sender).Msg("replied with translation")
	return nil
}
