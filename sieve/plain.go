package sieve

import (
	"fmt"

	"github.com/katalvlaran/primesieve/internal/checked"
)

// Plain flags every integer: index i represents value i.
type Plain struct{}

// Name implements Flagger.
func (Plain) Name() string { return "plain" }

// Seed implements Flagger. Every prime is represented, so there is none.
func (Plain) Seed() []int64 { return nil }

// FirstIndex implements Flagger; indices 0 and 1 are not candidates.
func (Plain) FirstIndex() int64 { return 2 }

// ValueAt implements Flagger.
func (Plain) ValueAt(index int64) int64 { return index }

// Flag implements Flagger via FlagComposites.
func (Plain) Flag(maxValue int64) ([]bool, error) { return FlagComposites(maxValue) }

// FlagComposites returns maxValue+1 flags where flags[v] is true iff v is
// composite. flags[0] and flags[1] are left false and must be ignored.
//
// Every unflagged i in [2, √maxValue] marks i², i²+i, i²+2i, ... as composite;
// smaller multiples were already marked by smaller primes.
func FlagComposites(maxValue int64) ([]bool, error) {
	if maxValue < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBound, maxValue)
	}
	size, err := checked.Inc(maxValue)
	if err != nil {
		return nil, fmt.Errorf("sieve: plain domain size: %w", err)
	}
	if err = checkDomain("plain", size); err != nil {
		return nil, err
	}

	flags := make([]bool, size)
	root := isqrt(maxValue)
	for i := int64(2); i <= root; i++ {
		if flags[i] {
			continue
		}
		for j := i * i; j < size; j += i {
			flags[j] = true
		}
	}

	return flags, nil
}

// OddsOnly flags odd integers only: index i represents value 2i+1.
type OddsOnly struct{}

// Name implements Flagger.
func (OddsOnly) Name() string { return "odds-only" }

// Seed implements Flagger; 2 is the only prime the odd layout cannot hold.
func (OddsOnly) Seed() []int64 { return []int64{2} }

// FirstIndex implements Flagger; index 0 represents 1, which is not prime.
func (OddsOnly) FirstIndex() int64 { return 1 }

// ValueAt implements Flagger.
func (OddsOnly) ValueAt(index int64) int64 { return 2*index + 1 }

// Flag implements Flagger via FlagOddComposites.
func (OddsOnly) Flag(maxValue int64) ([]bool, error) { return FlagOddComposites(maxValue) }

// FlagOddComposites returns (maxValue+1)/2 flags where flags[i] is true iff
// the odd value 2i+1 is composite. flags[0] (value 1) stays false and must be
// skipped by consumers.
//
// For an unflagged index i with value v = 2i+1, marking starts at index v²/2
// (the index of v²). Consecutive odd multiples of v differ by 2v in value,
// which is v in index space, so the inner loop steps by v.
//
// Example (maxValue 9 or 10):
//
//	index: 0 1 2 3 4
//	value: 1 3 5 7 9
//	flags: f f f f t
func FlagOddComposites(maxValue int64) ([]bool, error) {
	if maxValue < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBound, maxValue)
	}
	size, err := checked.Inc(maxValue)
	if err != nil {
		return nil, fmt.Errorf("sieve: odds-only domain size: %w", err)
	}
	size /= 2
	if err = checkDomain("odds-only", size); err != nil {
		return nil, err
	}

	flags := make([]bool, size)
	rootIndex := isqrt(maxValue) / 2
	for i := int64(1); i <= rootIndex; i++ {
		if flags[i] {
			// Anything i could mark is already marked by its smallest factor.
			continue
		}
		value := 2*i + 1
		for j := value * value / 2; j < size; j += value {
			flags[j] = true
		}
	}

	return flags, nil
}
