package llm

import (
	"time"

	"streamlate/internal/platform/config"
	perr "streamlate/internal/platform/errors"
)

// Config sizes the refinement stage: the context pool, the admission
// gate and the decode loop bounds
type Config struct {
	// PoolSize is the number of generation contexts allocated up front
	PoolSize int

	// Window is the context window per generation context, in tokens
	Window int

	// Batch is the max tokens evaluated per Eval call during prompt ingest
	Batch int

	// Threads is the CPU thread count handed to the backend per context
	Threads int

	// MaxNewTokens bounds how many tokens a single decode may emit
	MaxNewTokens int

	// AcquireTimeout bounds how long a request waits at the admission
	// gate. Zero means wait until the caller's context is done
	AcquireTimeout time.Duration
}

// FromConf reads the stage configuration from the environment under the
// given prefix (LLM_ in practice)
func FromConf(cfg config.Conf) Config {
	return Config{
		PoolSize:       cfg.MayInt("POOL_SIZE", 2),
		Window:         cfg.MayInt("CONTEXT_WINDOW", 2048),
		Batch:          cfg.MayInt("BATCH_SIZE", 512),
		Threads:        cfg.MayInt("THREADS", 4),
		MaxNewTokens:   cfg.MayInt("MAX_NEW_TOKENS", 256),
		AcquireTimeout: cfg.MayDuration("ACQUIRE_TIMEOUT", 30*time.Second),
	}
}

// Validate rejects configurations that cannot uphold the pool invariant.
// Gate permits always equal pool size, so oversubscription is impossible
func (c Config) Validate() error {
	if c.PoolSize < 1 {
		return perr.InvalidArgf("llm: pool size must be >= 1, got %d", c.PoolSize)
	}
	if c.Window < 8 {
		return perr.InvalidArgf("llm: context window must be >= 8, got %d", c.Window)
	}
	if c.Batch < 1 {
		return perr.InvalidArgf("llm: batch size must be >= 1, got %d", c.Batch)
	}
	if c.MaxNewTokens < 1 {
		return perr.InvalidArgf("llm: max new tokens must be >= 1, got %d", c.MaxNewTokens)
	}
	return nil
}
