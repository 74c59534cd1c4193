package domain

import "context"

// TranslatorPort is the external port for the translation pipeline.
// The chat service and the HTTP layer both consume it
type TranslatorPort interface {
	// Translate classifies, normalizes, translates and refines text.
	// English and pure universal slang come back unchanged
	Translate(ctx context.Context, text string) (Result, error)
}
