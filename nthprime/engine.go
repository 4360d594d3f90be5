package nthprime

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/primesieve/sieve"
)

// Engine answers n-th prime queries from a growable prime cache.
//
// The cache holds the first k primes. A query for rank n ≥ k regenerates
// the whole cache for max(n+1, 2k) primes, so a monotonically increasing
// query sequence triggers O(log n) regenerations. Ranks covered by the
// flagger seed (the wheel basis, or 2 for OddsOnly) never touch the cache.
//
// An Engine is not safe for concurrent use; see Guarded.
type Engine struct {
	strategy      Strategy
	flagger       sieve.Flagger
	seed          []int64
	primes        []int64 // first len(primes) primes, ascending
	regenerations int
	logger        *slog.Logger
}

// New builds an Engine from DefaultOptions overridden by opts.
//
// Steps:
//  1. Apply opts over DefaultOptions().
//  2. Build the flagger for Options.Strategy (validating the wheel basis).
//  3. If Options.MaxRank ≥ 0, validate it and populate the cache through that rank.
//
// Returns ErrUnknownStrategy, a sieve basis error, or any NthPrime error
// raised by eager population.
func New(opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	flagger, err := newFlagger(cfg)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		strategy: cfg.Strategy,
		flagger:  flagger,
		seed:     flagger.Seed(),
		logger:   cfg.Logger.With("strategy", cfg.Strategy.String()),
	}

	if cfg.MaxRank >= 0 {
		if _, err = e.NthPrime(cfg.MaxRank); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// newFlagger returns the flagger for cfg.Strategy.
func newFlagger(cfg Options) (sieve.Flagger, error) {
	switch cfg.Strategy {
	case Wheel:
		w, err := sieve.NewWheel(cfg.Basis...)
		if err != nil {
			return nil, fmt.Errorf("nthprime: wheel basis %v: %w", cfg.Basis, err)
		}

		return w, nil
	case OddsOnly:
		return sieve.OddsOnly{}, nil
	case Plain:
		return sieve.Plain{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(cfg.Strategy))
	}
}

// NthPrime returns the prime of 0-based rank n (n=0 → 2).
//
// Returns ErrRange if n < 0 or n == MaxRank, ErrOverflow if the sieve bound
// for n cannot be represented (from n == MaxRank-1 in particular),
// ErrDomainTooLarge if the flags for that bound exceed sieve.MaxDomain, and
// ErrInternalConsistency if regeneration came up short. A failed
// regeneration leaves the cache as it was.
func (e *Engine) NthPrime(n int64) (int64, error) {
	if err := validateRank(n); err != nil {
		return 0, err
	}

	if n < int64(len(e.seed)) {
		return e.seed[n], nil
	}

	if n >= int64(len(e.primes)) {
		count := max(n+1, 2*int64(len(e.primes)))
		if err := e.regenerate(n, count); err != nil {
			return 0, err
		}
	}

	return e.primes[n], nil
}

// Primes returns a copy of the first count primes, growing the cache as
// NthPrime(count-1) would.
func (e *Engine) Primes(count int64) ([]int64, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: count %d must be 0 or greater", ErrRange, count)
	}
	if count <= int64(len(e.seed)) {
		return append([]int64{}, e.seed[:count]...), nil
	}
	if _, err := e.NthPrime(count - 1); err != nil {
		return nil, err
	}

	return append([]int64{}, e.primes[:count]...), nil
}

// Strategy returns the flagging layout the engine was built with.
func (e *Engine) Strategy() Strategy { return e.strategy }

// Len returns the number of primes currently cached.
func (e *Engine) Len() int { return len(e.primes) }

// Regenerations returns how many times the cache has been rebuilt.
func (e *Engine) Regenerations() int { return e.regenerations }

// regenerate rebuilds the cache from scratch for count primes on behalf of rank n.
func (e *Engine) regenerate(n, count int64) error {
	start := time.Now()
	primes, err := sieve.FindPrimes(e.flagger, count)
	if err != nil {
		e.logger.Error("prime cache regeneration failed",
			"rank", n,
			"count", count,
			"error", err,
		)

		return fmt.Errorf("nthprime: rank %d: %w", n, err)
	}

	e.logger.Debug("prime cache regenerated",
		"flagger", e.flagger.Name(),
		"rank", n,
		"previous", len(e.primes),
		"count", count,
		"largest", primes[len(primes)-1],
		"duration", time.Since(start),
	)
	e.primes = primes
	e.regenerations++

	return nil
}

// validateRank rejects negative ranks and the MaxRank sentinel.
func validateRank(n int64) error {
	if n < 0 {
		return fmt.Errorf("%w: rank %d must be 0 or greater", ErrRange, n)
	}
	if n == MaxRank {
		return fmt.Errorf("%w: rank %d is reserved", ErrRange, n)
	}

	return nil
}
