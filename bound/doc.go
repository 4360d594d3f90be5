// Package bound estimates how far a sieve must reach to contain a given
// number of primes.
//
// 🚀 What is an upper bound?
//
//	A sieve flags composites only up to some maximum value, so before
//	allocating anything we need a number that is guaranteed to be at least
//	as large as the prime we are looking for. The estimate comes from the
//	inequality (Dusart):
//
//	  p(m) < m (ln m + ln ln m − 1 + 1.8 ln ln m / ln m),   m ≥ 13
//
//	where p(m) is the m-th prime counted from 1.
//
// ✨ Key features:
//   - fixed bound 37 (the 12th prime) for counts below 12
//   - overflow-checked arithmetic: enormous counts yield ErrOverflow
//     instead of a wrapped, undersized bound
//   - at most ~10% slack over the true prime for large counts
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/primesieve/bound"
//
//	limit, err := bound.UpperBound(1_000_000)
//	if err != nil {
//	  // errors.Is(err, bound.ErrOverflow)
//	}
//
// Complexity:
//
//   - Time:   O(1)
//   - Memory: O(1)
package bound
