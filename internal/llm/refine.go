package llm

import (
	"bytes"
	"context"

	perr "streamlate/internal/platform/errors"
	"streamlate/internal/platform/logger"
)

// Refiner rewrites literal machine translations into natural English by
// running a greedy decode over a pooled generation context
type Refiner struct {
	model Model
	pool  *Pool
	gate  *Gate
	cfg   Config
	log   logger.Logger
}

// NewRefiner validates cfg, allocates the context pool up front and sizes
// the admission gate to match it. Allocation failure here is fatal to
// startup by design: a half-provisioned pool must never serve traffic
func NewRefiner(m Model, cfg Config, log logger.Logger) (*Refiner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pool, err := NewPool(m, cfg.PoolSize, ContextConfig{
		Window:  cfg.Window,
		Batch:   cfg.Batch,
		Threads: cfg.Threads,
	})
	if err != nil {
		return nil, err
	}
	return &Refiner{
		model: m,
		pool:  pool,
		gate:  NewGate(pool.Size(), cfg.AcquireTimeout),
		cfg:   cfg,
		log:   log.With().Str("component", "refiner").Logger(),
	}, nil
}

// Close frees the context pool. No refinements may be in flight
func (r *Refiner) Close() { r.pool.Close() }

type decodeResult struct {
	text string
	err  error
}

// Refine localizes a literal sourceLang-to-English translation. The empty
// string is a valid result and means the model produced nothing worth
// surfacing; callers fall back to the literal text or suppress their reply.
//
// The decode runs on its own goroutine so a caller that gives up waiting
// cannot strand the pooled context: the worker owns both the context and
// the gate permit and releases them when the decode finishes, whether or
// not anyone is still listening.
func (r *Refiner) Refine(ctx context.Context, sourceLang, literal string) (string, error) {
	if err := r.gate.Acquire(ctx); err != nil {
		return "", err
	}

	out := make(chan decodeResult, 1)
	go func() {
		cctx := r.pool.Take()
		defer func() {
			r.pool.Put(cctx)
			r.gate.Release()
		}()
		text, err := r.decode(ctx, cctx, refinePrompt(sourceLang, literal))
		out <- decodeResult{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", perr.Wrap(ctx.Err(), perr.ErrorCodeUnavailable, "llm: refinement abandoned")
	case res := <-out:
		if res.err != nil {
			return "", res.err
		}
		r.log.Debug().Str("lang", sourceLang).Int("raw_len", len(res.text)).Msg("refinement complete")
		return CleanOutput(res.text), nil
	}
}

// decode runs Prompt-Ingest then greedy Decode-Steps until EOS, the new
// token budget, or the context window stops it
func (r *Refiner) decode(ctx context.Context, cctx Context, prompt string) (string, error) {
	cctx.ResetKV()

	toks, err := r.model.Tokenize(prompt, true)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeTokenization, "llm: tokenizing prompt")
	}
	window := cctx.Window()
	if len(toks) >= window {
		return "", perr.Tokenizationf("llm: prompt length %d exceeds context window %d", len(toks), window)
	}

	// Prompt ingest in batch-sized chunks; only the final chunk's last
	// position needs logits
	for off := 0; off < len(toks); off += r.cfg.Batch {
		end := min(off+r.cfg.Batch, len(toks))
		if err := cctx.Eval(toks[off:end], off, end == len(toks)); err != nil {
			return "", perr.Wrap(err, perr.ErrorCodeGenerationDecode, "llm: prompt ingest")
		}
	}

	var buf bytes.Buffer
	pos := len(toks)
	for n := 0; n < r.cfg.MaxNewTokens && pos < window; n++ {
		if err := ctx.Err(); err != nil {
			return "", perr.Wrap(err, perr.ErrorCodeUnavailable, "llm: decode abandoned")
		}
		logits := cctx.Logits()
		if len(logits) == 0 {
			return "", perr.DecodeFailuref("llm: backend returned no logits at position %d", pos)
		}
		tok := argmax(logits)
		if r.model.IsEOS(tok) {
			break
		}
		// token pieces are raw bytes; a piece may split a UTF-8 sequence
		buf.Write(r.model.TokenBytes(tok))
		if err := cctx.Eval([]Token{tok}, pos, true); err != nil {
			return "", perr.Wrap(err, perr.ErrorCodeGenerationDecode, "llm: decode step")
		}
		pos++
	}
	return buf.String(), nil
}

// argmax picks the highest-scoring token; ties go to the lowest ID so
// decoding stays reproducible
func argmax(logits []float32) Token {
	best := 0
	for i, v := range logits {
		if v > logits[best] {
			best = i
		}
	}
	return Token(best)
}
