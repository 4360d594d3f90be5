package sieve_test

import (
	"testing"

	"github.com/katalvlaran/primesieve/sieve"
)

// benchmarkFindPrimes runs FindPrimes for count primes with f.
func benchmarkFindPrimes(b *testing.B, f sieve.Flagger, count int64) {
	b.ReportAllocs()
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := sieve.FindPrimes(f, count); err != nil {
			b.Fatalf("FindPrimes failed: %v", err)
		}
	}
}

// BenchmarkFindPrimes_Plain benchmarks the identity layout for 100k primes.
func BenchmarkFindPrimes_Plain(b *testing.B) {
	benchmarkFindPrimes(b, sieve.Plain{}, 100_000)
}

// BenchmarkFindPrimes_OddsOnly benchmarks the odd layout for 100k primes.
func BenchmarkFindPrimes_OddsOnly(b *testing.B) {
	benchmarkFindPrimes(b, sieve.OddsOnly{}, 100_000)
}

// BenchmarkFindPrimes_Wheel235 benchmarks the default wheel for 100k primes.
func BenchmarkFindPrimes_Wheel235(b *testing.B) {
	w, err := sieve.NewWheel(sieve.DefaultBasis()...)
	if err != nil {
		b.Fatal(err)
	}
	benchmarkFindPrimes(b, w, 100_000)
}

// BenchmarkFindPrimes_Wheel2357 benchmarks a larger wheel for 100k primes.
func BenchmarkFindPrimes_Wheel2357(b *testing.B) {
	w, err := sieve.NewWheel(2, 3, 5, 7)
	if err != nil {
		b.Fatal(err)
	}
	benchmarkFindPrimes(b, w, 100_000)
}
