// Package nthprime defines the engine configuration, strategies and
// sentinel errors for n-th prime lookups.
//
// Options:
//
//	– Strategy: composite-flagging layout (Plain, OddsOnly, Wheel).
//	– Basis:    wheel basis primes; only used by Wheel (default {2,3,5}).
//	– MaxRank:  largest rank expected; ≥ 0 populates the cache eagerly.
//	– Logger:   structured logger for cache regeneration events.
//
// Errors (sentinel):
//
//	– ErrRange                if a rank is negative or equals MaxRank.
//	– ErrOverflow             if the sieve bound for a rank exceeds int64.
//	– ErrDomainTooLarge       if the flags for a rank exceed sieve.MaxDomain.
//	– ErrInternalConsistency  if the sieve found fewer primes than guaranteed.
//	– ErrUnknownStrategy      if Options.Strategy is not a defined Strategy.
//	– sieve.ErrEmptyBasis, sieve.ErrInvalidBasis, sieve.ErrBasisTooLarge
//	                          if the wheel basis is rejected.
package nthprime

import (
	"errors"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/primesieve/sieve"
)

// MaxRank is reserved as a sentinel and is never a valid rank.
const MaxRank = math.MaxInt64

// Sentinel errors returned by the engine.
var (
	// ErrRange indicates a rank that is negative or equal to MaxRank.
	ErrRange = errors.New("nthprime: rank out of range")

	// ErrUnknownStrategy indicates an undefined Strategy value.
	ErrUnknownStrategy = errors.New("nthprime: unknown strategy")

	// ErrOverflow indicates the sieve bound for a rank does not fit in an int64.
	ErrOverflow = sieve.ErrOverflow

	// ErrDomainTooLarge indicates the flag domain for a rank exceeds sieve.MaxDomain.
	ErrDomainTooLarge = sieve.ErrDomainTooLarge

	// ErrInternalConsistency indicates a defect in the bound/flagger pairing.
	ErrInternalConsistency = sieve.ErrInternalConsistency
)

// Strategy selects the composite-flagging layout used by an Engine.
type Strategy int

const (
	// Wheel flags only integers coprime to Options.Basis. Fewest candidates.
	Wheel Strategy = iota

	// OddsOnly flags odd integers; index i represents 2i+1.
	OddsOnly

	// Plain flags every integer; index i represents i.
	Plain
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Wheel:
		return "wheel"
	case OddsOnly:
		return "odds-only"
	case Plain:
		return "plain"
	default:
		return "unknown"
	}
}

// Options configures an Engine.
//
// Strategy – flagging layout. Default Wheel.
// Basis    – wheel basis, the first k primes ascending. Default {2,3,5}.
// MaxRank  – rank to pre-populate at construction; negative means lazy. Default -1.
// Logger   – receives Debug events per regeneration and Error events on failure.
//
//	Default discards everything.
type Options struct {
	Strategy Strategy
	Basis    []int64
	MaxRank  int64
	Logger   *slog.Logger
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithStrategy selects the flagging layout.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithBasis sets the wheel basis and selects the Wheel strategy.
func WithBasis(basis ...int64) Option {
	return func(o *Options) {
		o.Strategy = Wheel
		o.Basis = append([]int64(nil), basis...)
	}
}

// WithMaxRank pre-populates the cache up to rank n during New. It is a
// performance hint only; lookups beyond n still grow the cache.
func WithMaxRank(n int64) Option {
	return func(o *Options) {
		o.MaxRank = n
	}
}

// WithLogger routes engine events to l. A nil l keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns an Options struct initialized with the defaults:
//   - Strategy: Wheel
//   - Basis:    {2, 3, 5}
//   - MaxRank:  -1 (populate on first use)
//   - Logger:   discards all records
func DefaultOptions() Options {
	return Options{
		Strategy: Wheel,
		Basis:    sieve.DefaultBasis(),
		MaxRank:  -1,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
