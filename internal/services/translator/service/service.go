// Package service implements the translation pipeline orchestration
package service

import (
	"context"

	"streamlate/internal/core/langid"
	"streamlate/internal/core/slang"
	perr "streamlate/internal/platform/errors"
	"streamlate/internal/platform/logger"
	"streamlate/internal/services/translator/domain"
)

// Engine is the literal seq2seq translation stage
type Engine interface {
	Translate(ctx context.Context, text string, src langid.Language) (string, error)
}

// Refiner is the optional localization stage over the literal output.
// An empty refinement means "nothing better than the literal text"
type Refiner interface {
	Refine(ctx context.Context, sourceLang, literal string) (string, error)
}

// Service orchestrates the pipeline: fast-path slang check, language
// classification, slang normalization, literal translation, refinement
type Service struct {
	cls     *langid.Classifier
	norm    *slang.Normalizer
	engine  Engine
	refiner Refiner
	log     logger.Logger
}

// New constructs the orchestrator. refiner may be nil to run the
// single-model shape: literal translations are returned as-is
func New(cls *langid.Classifier, norm *slang.Normalizer, engine Engine, refiner Refiner, log logger.Logger) *Service {
	return &Service{
		cls:     cls,
		norm:    norm,
		engine:  engine,
		refiner: refiner,
		log:     log.With().Str("component", "translator").Logger(),
	}
}

// Translate satisfies domain.TranslatorPort
func (s *Service) Translate(ctx context.Context, text string) (domain.Result, error) {
	// universal slang reads the same everywhere; skip every model stage
	if slang.IsUniversal(text) {
		return domain.Result{Language: langid.English.String(), Translation: text}, nil
	}

	lang, ok := s.cls.Classify(text)
	if !ok {
		return domain.Result{}, perr.UnknownLanguagef("translator: no confident language for text")
	}
	if lang == langid.English {
		return domain.Result{Language: lang.String(), Translation: text}, nil
	}

	normalized := s.norm.Normalize(lang, text)
	if normalized != text {
		s.log.Debug().Str("lang", lang.String()).Msg("slang normalized")
	}

	literal, err := s.engine.Translate(ctx, normalized, lang)
	if err != nil {
		return domain.Result{}, err
	}

	final := literal
	if s.refiner != nil {
		refined, rerr := s.refiner.Refine(ctx, lang.String(), literal)
		if rerr != nil {
			return domain.Result{}, rerr
		}
		// empty refinement keeps the literal translation by contract
		if refined != "" {
			final = refined
		}
	}
	return domain.Result{Language: lang.String(), Translation: final}, nil
}
