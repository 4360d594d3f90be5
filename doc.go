// Package primesieve computes the n-th prime number (0-indexed, n=0 → 2)
// with an incrementally growable sieve of Eratosthenes.
//
// 🚀 What is primesieve?
//
//	A small, pure-Go library that brings together:
//		• Bound estimation: a guaranteed upper bound for the n-th prime
//		• Composite flagging: plain, odds-only and wheel-factorization sieves
//		• Prime cache: amortized regrowth for repeated, increasing queries
//
// ✨ Why choose primesieve?
//
//   - Fail-fast – out-of-range ranks and int64 overflow are errors, never wraparound
//   - Memory-aware – the default {2,3,5} wheel stores 8 candidates per 30 integers
//   - Observable – every cache regeneration is a structured slog event
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under three subpackages:
//
//	bound/    — upper bound for the value of the n-th prime
//	sieve/    — Flagger layouts (Plain, OddsOnly, Wheel) and FindPrimes
//	nthprime/ — Engine with its prime cache, options and Guarded wrapper
//
// Quick example:
//
//	e, _ := nthprime.New()
//	p, _ := e.NthPrime(19) // 71
//
//	go get github.com/katalvlaran/primesieve
package primesieve
