package sieve

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/primesieve/bound"
)

// MaxDomain caps the number of flags a single Flag call may allocate
// (1 TiB of bools on 64-bit platforms, the int range on 32-bit ones).
const MaxDomain = min(1<<40, math.MaxInt)

// Flagger marks composites over a layout-specific candidate domain.
//
// Implementations must guarantee that, for flags := Flag(max):
//   - every index in [FirstIndex(), len(flags)) represents a value ≤ max;
//   - flags[i] is true iff ValueAt(i) is composite (for i ≥ FirstIndex());
//   - every prime ≤ max is either in Seed() or represented by some index.
type Flagger interface {
	// Name identifies the layout in logs and error messages.
	Name() string

	// Seed returns the primes, in ascending order, that the domain does not represent.
	Seed() []int64

	// FirstIndex is the first index consumers must inspect; lower indices
	// hold sentinels such as 0 and 1.
	FirstIndex() int64

	// ValueAt returns the integer represented by index.
	ValueAt(index int64) int64

	// Flag returns the composite flags for every candidate ≤ maxValue.
	Flag(maxValue int64) ([]bool, error)
}

// FindPrimes returns the first count primes in ascending order using f.
//
// Counts covered by f.Seed() are answered without flagging. Otherwise the
// domain is flagged up to bound.UpperBound(count) and scanned from
// f.FirstIndex(). Finding fewer than count primes below that bound returns
// ErrInternalConsistency with the count and the bound attached.
//
// An unrepresentable bound returns ErrOverflow. Counts above MaxDomain return
// ErrDomainTooLarge before any allocation, as does any flagger whose domain
// for the bound would exceed MaxDomain.
//
// Complexity: O(B log log B) time, O(B) memory where B = bound.UpperBound(count).
func FindPrimes(f Flagger, count int64) ([]int64, error) {
	if count <= 0 {
		return []int64{}, nil
	}

	seed := f.Seed()
	if count <= int64(len(seed)) {
		primes := make([]int64, count)
		copy(primes, seed)

		return primes, nil
	}

	limit, err := bound.UpperBound(count)
	if err != nil {
		return nil, err
	}
	if count > MaxDomain {
		return nil, fmt.Errorf("%w: %d primes requested", ErrDomainTooLarge, count)
	}

	flags, err := f.Flag(limit)
	if err != nil {
		return nil, err
	}

	primes := make([]int64, 0, count)
	primes = append(primes, seed...)
	for i := f.FirstIndex(); i < int64(len(flags)) && int64(len(primes)) < count; i++ {
		if flags[i] {
			continue
		}
		primes = append(primes, f.ValueAt(i))
	}

	if int64(len(primes)) != count {
		return nil, errors.Wrapf(ErrInternalConsistency,
			"%s: only %d primes found but %d were required; upper bound %d",
			f.Name(), len(primes), count, limit)
	}

	return primes, nil
}

// checkDomain rejects flag domains longer than MaxDomain.
func checkDomain(layout string, size int64) error {
	if size > MaxDomain {
		return fmt.Errorf("%w: %s needs %d flags, limit %d", ErrDomainTooLarge, layout, size, int64(MaxDomain))
	}

	return nil
}

// isqrt returns ⌊√n⌋ for n ≥ 0, correcting float rounding at the edges.
func isqrt(n int64) int64 {
	if n < 2 {
		return max(n, 0)
	}
	r := int64(math.Sqrt(float64(n)))
	for r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}

	return r
}
