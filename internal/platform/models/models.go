// Package models resolves model artifact paths once at startup.
//
// Resolution failures are fatal by contract: a process that cannot see
// its weights must never start accepting requests
package models

import (
	"os"
	"path/filepath"

	"streamlate/internal/platform/config"
	perr "streamlate/internal/platform/errors"
)

// Paths points at every model artifact the pipeline loads
type Paths struct {
	// seq2seq translation model artifacts
	TranslatorWeights string
	TranslatorConfig  string
	TranslatorVocab   string
	TranslatorSPM     string

	// refinement model weights (single-file format)
	RefinerWeights string
}

// Resolve reads MODELS_DIR (default "models") and verifies every
// artifact exists. The first missing file fails resolution
func Resolve(cfg config.Conf) (Paths, error) {
	dir := cfg.MayString("MODELS_DIR", "models")
	p := Paths{
		TranslatorWeights: filepath.Join(dir, "m2m100", "model.bin"),
		TranslatorConfig:  filepath.Join(dir, "m2m100", "config.json"),
		TranslatorVocab:   filepath.Join(dir, "m2m100", "vocab.json"),
		TranslatorSPM:     filepath.Join(dir, "m2m100", "sentencepiece.bpe.model"),
		RefinerWeights:    filepath.Join(dir, "qwen3", "model.gguf"),
	}
	for _, f := range []string{
		p.TranslatorWeights, p.TranslatorConfig, p.TranslatorVocab, p.TranslatorSPM, p.RefinerWeights,
	} {
		if _, err := os.Stat(f); err != nil {
			return Paths{}, perr.Wrapf(err, perr.ErrorCodeContextCreation,
				"models: missing artifact %s", f)
		}
	}
	return p, nil
}
