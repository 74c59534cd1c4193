package llm

import (
	"sync"

	perr "streamlate/internal/platform/errors"
)

// Pool owns a fixed set of generation contexts created at startup.
// Take and Put are guarded by the admission gate: the gate issues exactly
// as many permits as the pool has contexts, so Take never observes an
// empty pool in a correct program
type Pool struct {
	mu     sync.Mutex
	free   []Context
	size   int
	closed bool
}

// NewPool allocates n contexts from the model. On any allocation failure
// the already-created contexts are closed and the error is returned
func NewPool(m Model, n int, cc ContextConfig) (*Pool, error) {
	p := &Pool{size: n, free: make([]Context, 0, n)}
	for i := 0; i < n; i++ {
		ctx, err := m.NewContext(cc)
		if err != nil {
			p.Close()
			return nil, perr.Wrapf(err, perr.ErrorCodeContextCreation,
				"llm: allocating context %d of %d", i+1, n)
		}
		p.free = append(p.free, ctx)
	}
	return p, nil
}

// Size returns the fixed pool capacity
func (p *Pool) Size() int { return p.size }

// Take removes a context from the pool. Calling Take without holding a
// gate permit is a programming error and panics
func (p *Pool) Take() Context {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.free) == 0 {
		panic(perr.ResourceStatef("llm: context pool exhausted with permit held"))
	}
	c := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	return c
}

// Put returns a context to the pool
func (p *Pool) Put(c Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		panic(perr.ResourceStatef("llm: context returned to a closed pool"))
	}
	if len(p.free) >= p.size {
		panic(perr.ResourceStatef("llm: context returned to a full pool"))
	}
	p.free = append(p.free, c)
}

// Close frees every pooled context. Callers must ensure no decodes are
// in flight
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, c := range p.free {
		_ = c.Close()
	}
	p.free = nil
	p.closed = true
}
