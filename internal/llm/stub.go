package llm

import "sync"

// StubModel is a deterministic in-process backend. It replays a fixed
// byte script for every prompt, one token per byte, then emits EOS.
// Binaries built without a native inference backend wire it so the rest
// of the pipeline stays exercisable, and tests use it to drive the
// decode loop without weights
type StubModel struct {
	script  []byte
	tokErr  error
	evalErr error
}

// stub vocabulary: token IDs 0-255 are raw bytes, 256 is EOS
const stubEOS Token = 256

// NewStubModel returns a stub that generates script for every prompt
func NewStubModel(script string) *StubModel {
	return &StubModel{script: []byte(script)}
}

// FailTokenize makes Tokenize return err, for exercising error paths
func (m *StubModel) FailTokenize(err error) { m.tokErr = err }

// FailEval makes every context Eval return err
func (m *StubModel) FailEval(err error) { m.evalErr = err }

// NewContext allocates a scripted context
func (m *StubModel) NewContext(cfg ContextConfig) (Context, error) {
	return &stubContext{model: m, window: cfg.Window}, nil
}

// Tokenize maps each byte of text to its own token
func (m *StubModel) Tokenize(text string, _ bool) ([]Token, error) {
	if m.tokErr != nil {
		return nil, m.tokErr
	}
	toks := make([]Token, len(text))
	for i := 0; i < len(text); i++ {
		toks[i] = Token(text[i])
	}
	return toks, nil
}

// TokenBytes returns the single byte a token stands for
func (m *StubModel) TokenBytes(t Token) []byte {
	if t < 0 || t > 255 {
		return nil
	}
	return []byte{byte(t)}
}

// IsEOS reports the stub end-of-sequence token
func (m *StubModel) IsEOS(t Token) bool { return t == stubEOS }

// Close is a no-op
func (m *StubModel) Close() error { return nil }

type stubContext struct {
	mu        sync.Mutex
	model     *StubModel
	window    int
	fed       int
	promptLen int
	started   bool
	closed    bool
}

func (c *stubContext) Window() int { return c.window }

func (c *stubContext) ResetKV() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fed, c.promptLen, c.started = 0, 0, false
}

func (c *stubContext) Eval(tokens []Token, _ int, _ bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.model.evalErr != nil {
		return c.model.evalErr
	}
	c.fed += len(tokens)
	return nil
}

// Logits returns a one-hot distribution for the next scripted token.
// The first call after ResetKV marks the end of prompt ingest
func (c *stubContext) Logits() []float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started {
		c.started = true
		c.promptLen = c.fed
	}
	next := stubEOS
	if idx := c.fed - c.promptLen; idx < len(c.model.script) {
		next = Token(c.model.script[idx])
	}
	logits := make([]float32, int(stubEOS)+1)
	logits[next] = 1
	return logits
}

func (c *stubContext) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}
