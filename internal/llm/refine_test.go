package llm

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	perr "streamlate/internal/platform/errors"
	"streamlate/internal/platform/logger"
)

func testConfig() Config {
	return Config{
		PoolSize:       2,
		Window:         4096,
		Batch:          64,
		Threads:        1,
		MaxNewTokens:   128,
		AcquireTimeout: time.Second,
	}
}

func newTestRefiner(t *testing.T, m Model, cfg Config) *Refiner {
	t.Helper()
	r, err := NewRefiner(m, cfg, *logger.Get())
	if err != nil {
		t.Fatalf("NewRefiner: %v", err)
	}
	t.Cleanup(r.Close)
	return r
}

func TestRefine_HappyPath(t *testing.T) {
	m := NewStubModel("thinking about it</think> Hello there ")
	r := newTestRefiner(t, m, testConfig())

	got, err := r.Refine(context.Background(), "French", "bonjour")
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}
	if got != "Hello there" {
		t.Fatalf("Refine = %q, want %q", got, "Hello there")
	}
}

func TestRefine_IgnoreMarkerYieldsEmpty(t *testing.T) {
	m := NewStubModel("</think><@>")
	r := newTestRefiner(t, m, testConfig())

	got, err := r.Refine(context.Background(), "Japanese", "www")
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}
	if got != "" {
		t.Fatalf("Refine = %q, want empty", got)
	}
}

func TestRefine_TokenBudgetTruncatesThought(t *testing.T) {
	// script never closes its reasoning tag and exceeds the budget
	cfg := testConfig()
	cfg.MaxNewTokens = 16
	m := NewStubModel("<think>" + strings.Repeat("x", 100))
	r := newTestRefiner(t, m, cfg)

	got, err := r.Refine(context.Background(), "Chinese", "something")
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}
	if got != ReasoningTruncated {
		t.Fatalf("Refine = %q, want truncation sentinel", got)
	}
}

func TestRefine_WindowBoundsGeneration(t *testing.T) {
	// the prompt consumes nearly the whole window; generation must stop at
	// the window edge, not the token budget
	cfg := testConfig()
	cfg.Window = len(refinePrompt("French", "abc")) + 10
	cfg.MaxNewTokens = 1000
	m := NewStubModel("<think>" + strings.Repeat("y", 500))
	r := newTestRefiner(t, m, cfg)

	got, err := r.Refine(context.Background(), "French", "abc")
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}
	if got != ReasoningTruncated {
		t.Fatalf("Refine = %q, want truncation sentinel", got)
	}
}

func TestRefine_PromptLargerThanWindow(t *testing.T) {
	cfg := testConfig()
	cfg.Window = 16
	m := NewStubModel("irrelevant")
	r := newTestRefiner(t, m, cfg)

	_, err := r.Refine(context.Background(), "French", strings.Repeat("a", 100))
	if !perr.IsCode(err, perr.ErrorCodeTokenization) {
		t.Fatalf("err = %v, want tokenization code", err)
	}
}

func TestRefine_TokenizeFailure(t *testing.T) {
	m := NewStubModel("x")
	m.FailTokenize(errors.New("bad utf8"))
	r := newTestRefiner(t, m, testConfig())

	_, err := r.Refine(context.Background(), "French", "abc")
	if !perr.IsCode(err, perr.ErrorCodeTokenization) {
		t.Fatalf("err = %v, want tokenization code", err)
	}
}

func TestRefine_EvalFailure(t *testing.T) {
	m := NewStubModel("x")
	m.FailEval(errors.New("backend exploded"))
	r := newTestRefiner(t, m, testConfig())

	_, err := r.Refine(context.Background(), "French", "abc")
	if !perr.IsCode(err, perr.ErrorCodeGenerationDecode) {
		t.Fatalf("err = %v, want decode code", err)
	}
}

func TestRefine_ConcurrentLoadRestoresPool(t *testing.T) {
	cfg := testConfig()
	cfg.PoolSize = 2
	m := NewStubModel("</think>ok")
	r := newTestRefiner(t, m, cfg)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := r.Refine(context.Background(), "French", "salut")
			if err != nil || got != "ok" {
				t.Errorf("Refine = (%q, %v)", got, err)
			}
		}()
	}
	wg.Wait()

	// every context must be back: the pool drains completely
	seen := make([]Context, 0, cfg.PoolSize)
	for i := 0; i < cfg.PoolSize; i++ {
		seen = append(seen, r.pool.Take())
	}
	for _, c := range seen {
		r.pool.Put(c)
	}
}

func TestRefine_CancelledCallerStillReleases(t *testing.T) {
	cfg := testConfig()
	cfg.PoolSize = 1
	m := NewStubModel("</think>late")
	r := newTestRefiner(t, m, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// acquire fails against the dead context, nothing may leak
	if _, err := r.Refine(ctx, "French", "abc"); err == nil {
		t.Fatalf("Refine with cancelled context must fail")
	}

	// the pool and gate are still fully usable afterwards
	got, err := r.Refine(context.Background(), "French", "abc")
	if err != nil || got != "late" {
		t.Fatalf("follow-up Refine = (%q, %v)", got, err)
	}
}

func TestNewRefiner_RejectsBadConfig(t *testing.T) {
	bad := testConfig()
	bad.PoolSize = 0
	if _, err := NewRefiner(NewStubModel(""), bad, *logger.Get()); err == nil {
		t.Fatalf("zero pool size must be rejected")
	}
}
