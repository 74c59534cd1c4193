// Package translate wraps the seq2seq translation model behind a small
// engine that owns the supported-language set and the output contract.
package translate

import (
	"context"

	"golang.org/x/text/language"

	"streamlate/internal/core/langid"
	perr "streamlate/internal/platform/errors"
)

// Invoker is the raw model boundary: a batch of texts in one source
// language, translated to one target language. Implementations must be
// safe for concurrent use
type Invoker interface {
	Translate(ctx context.Context, texts []string, src, dst language.Tag) ([]string, error)
}

// Engine translates classified chat text to English. The supported set
// is a strict subset of the classifier's candidates: English needs no
// translation and is handled before the engine is reached
type Engine struct {
	inv       Invoker
	supported map[langid.Language]language.Tag
}

// NewEngine builds an engine over the given invoker
func NewEngine(inv Invoker) *Engine {
	return &Engine{
		inv: inv,
		supported: map[langid.Language]language.Tag{
			langid.French:   language.French,
			langid.Japanese: language.Japanese,
			langid.Chinese:  language.Chinese,
			langid.Spanish:  language.Spanish,
		},
	}
}

// Supported reports whether the engine can translate from src
func (e *Engine) Supported(src langid.Language) bool {
	_, ok := e.supported[src]
	return ok
}

// Translate produces the literal English translation of text.
// A classified language outside the supported set is an
// UnsupportedLanguage error; a model call that returns no candidate at
// all is EmptyEngineOutput
func (e *Engine) Translate(ctx context.Context, text string, src langid.Language) (string, error) {
	tag, ok := e.supported[src]
	if !ok {
		return "", perr.UnsupportedLanguagef(
			"translate: %s classified but not mapped to the translator", src)
	}
	out, err := e.inv.Translate(ctx, []string{text}, tag, language.English)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "translate: model call for %s", src)
	}
	if len(out) == 0 {
		return "", perr.EmptyEngineOutputf("translate: model returned no candidate for %s", src)
	}
	return out[0], nil
}
