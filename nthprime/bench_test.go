package nthprime_test

import (
	"testing"

	"github.com/katalvlaran/primesieve/nthprime"
)

// benchmarkNthPrime measures a cold lookup of rank n with strategy s.
func benchmarkNthPrime(b *testing.B, s nthprime.Strategy, n int64) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e, err := nthprime.New(nthprime.WithStrategy(s))
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		if _, err := e.NthPrime(n); err != nil {
			b.Fatalf("NthPrime failed: %v", err)
		}
	}
}

// BenchmarkNthPrime_Plain benchmarks the millionth rank with the plain layout.
func BenchmarkNthPrime_Plain(b *testing.B) { benchmarkNthPrime(b, nthprime.Plain, 1_000_000) }

// BenchmarkNthPrime_OddsOnly benchmarks the millionth rank with the odd layout.
func BenchmarkNthPrime_OddsOnly(b *testing.B) { benchmarkNthPrime(b, nthprime.OddsOnly, 1_000_000) }

// BenchmarkNthPrime_Wheel benchmarks the millionth rank with the default wheel.
func BenchmarkNthPrime_Wheel(b *testing.B) { benchmarkNthPrime(b, nthprime.Wheel, 1_000_000) }

// BenchmarkNthPrime_IncreasingRanks benchmarks a warm engine answering
// consecutive ranks, exercising the doubling growth policy.
func BenchmarkNthPrime_IncreasingRanks(b *testing.B) {
	e, err := nthprime.New()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.NthPrime(int64(i % 1_000_000)); err != nil {
			b.Fatal(err)
		}
	}
}
