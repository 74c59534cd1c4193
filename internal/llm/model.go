// Package llm drives greedy decoding of a local causal language model over
// a fixed pool of generation contexts. The model backend is pluggable; the
// decode loop, pooling and admission control live here.
package llm

// Token is a model vocabulary ID
type Token int32

// Model is a loaded set of weights plus its tokenizer. Implementations
// must be safe for concurrent use across contexts
type Model interface {
	// NewContext allocates a generation context (KV cache and scratch
	// buffers) bound to this model
	NewContext(cfg ContextConfig) (Context, error)

	// Tokenize encodes text into model tokens, optionally prefixing the
	// beginning-of-sequence token
	Tokenize(text string, addBOS bool) ([]Token, error)

	// TokenBytes returns the byte piece a token decodes to. Pieces are
	// concatenated byte-wise; a piece may be a partial UTF-8 sequence
	TokenBytes(t Token) []byte

	// IsEOS reports whether t is the end-of-sequence token
	IsEOS(t Token) bool

	// Close releases the weights
	Close() error
}

// Context is a single generation context. A context serves one decode at
// a time; concurrency comes from pooling multiple contexts
type Context interface {
	// Window returns the context window size in tokens
	Window() int

	// ResetKV clears the KV cache. Callers reset before every decode so
	// no state leaks between requests
	ResetKV()

	// Eval evaluates tokens starting at position pos. When wantLogits is
	// set, logits for the batch's final position are retained
	Eval(tokens []Token, pos int, wantLogits bool) error

	// Logits returns the logits retained by the last Eval
	Logits() []float32

	// Close frees the context
	Close() error
}

// ContextConfig sizes a generation context at allocation time
type ContextConfig struct {
	Window  int
	Batch   int
	Threads int
}
