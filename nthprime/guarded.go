package nthprime

import "sync"

// Guarded serializes access to an Engine so it can be shared across goroutines.
//
// Every call holds one mutex for its whole duration, including any cache
// regeneration, so concurrent callers observe the same append-only sequence.
type Guarded struct {
	mu     sync.Mutex
	engine *Engine
}

// NewGuarded builds an Engine with opts and wraps it.
func NewGuarded(opts ...Option) (*Guarded, error) {
	e, err := New(opts...)
	if err != nil {
		return nil, err
	}

	return &Guarded{engine: e}, nil
}

// NthPrime is the synchronized form of Engine.NthPrime.
func (g *Guarded) NthPrime(n int64) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.engine.NthPrime(n)
}

// Primes is the synchronized form of Engine.Primes.
func (g *Guarded) Primes(count int64) ([]int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.engine.Primes(count)
}

// Len is the synchronized form of Engine.Len.
func (g *Guarded) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.engine.Len()
}
