// Package sieve flags composite numbers with the sieve of Eratosthenes and
// collects the primes that remain.
//
// 🚀 What is a flagger?
//
//	A Flagger owns a candidate domain: a boolean slice in which index i
//	stands for some integer ValueAt(i). Flag(max) marks every composite
//	candidate ≤ max as true. Integers the domain cannot represent (2 for
//	the odds-only layout, the basis primes for a wheel) are returned by
//	Seed() and prepended by FindPrimes.
//
// ✨ Three layouts:
//   - Plain    — index == value; memory max+1 flags.
//   - OddsOnly — index i ↔ value 2i+1; memory (max+1)/2 flags.
//   - Wheel    — only integers coprime to a basis of small primes
//     (default {2,3,5}); memory ≈ (max+1)·φ(M)/M flags, M = ∏ basis.
//
// Wheel layout (basis {2,3,5}, M = 30):
//
//	first turn:  7 11 13 17 19 23 29 31
//	increments:   4  2  4  2  4  6  2  6   (sum = 30)
//	index i ↔ value firstTurn[i mod 8] + ⌊i / 8⌋·30
//
//	value → index goes through a residue table: period = (v−2)/M,
//	residue = v − period·M ∈ [2, M+1], position = table[residue].
//
// ⚙️ Usage:
//
//	w, err := sieve.NewWheel(2, 3, 5, 7)
//	primes, err := sieve.FindPrimes(w, 1000)
//
//	flags, err := sieve.FlagOddComposites(99) // flags[i] ↔ 2i+1
//
// Errors:
//   - ErrEmptyBasis / ErrInvalidBasis / ErrBasisTooLarge — wheel construction.
//   - ErrInvalidBound — negative flagging limit.
//   - ErrOverflow — a domain size does not fit in an int64.
//   - ErrInternalConsistency — fewer primes than the bound guarantees; a defect.
//
// Complexity (for limit N):
//
//   - Time:   O(N log log N)
//   - Memory: O(N) flags, scaled by the layout's density.
//
// A Flagger is stateless after construction and safe for concurrent use.
package sieve
