// Package nthprime returns the n-th prime (0-indexed, n=0 → 2) for any rank
// whose sieve bound fits in an int64.
//
// 🚀 How it works
//
//	An Engine keeps the primes found so far. A query past the end of that
//	cache re-sieves from scratch for max(n+1, 2·cached) primes using the
//	configured flagging layout, sized by bound.UpperBound. Doubling keeps a
//	run of increasing queries down to O(log n) sieves.
//
// ✨ Key features:
//   - three layouts: Plain, OddsOnly and Wheel (default basis {2,3,5})
//   - eager population with WithMaxRank, lazy otherwise
//   - fail-fast errors: ErrRange, ErrOverflow, ErrInternalConsistency
//   - structured slog events for every regeneration
//   - Guarded wrapper for shared use across goroutines
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/primesieve/nthprime"
//
//	e, err := nthprime.New(nthprime.WithStrategy(nthprime.OddsOnly))
//	if err != nil {
//	  // handle configuration error
//	}
//	p, err := e.NthPrime(1_000_000) // 15485867
//
// Performance (B = bound.UpperBound(n+1)):
//
//   - Time:   O(B log log B) per regeneration
//   - Memory: O(B) flags during a regeneration (halved by OddsOnly,
//     ×4/15 with the {2,3,5} wheel) plus O(n) cached primes
package nthprime
