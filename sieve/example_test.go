package sieve_test

import (
	"fmt"

	"github.com/katalvlaran/primesieve/sieve"
)

// ExampleFlagOddComposites shows the odds-only layout: index i stands for 2i+1.
func ExampleFlagOddComposites() {
	flags, _ := sieve.FlagOddComposites(15)
	for i := 1; i < len(flags); i++ {
		fmt.Printf("%d:%v ", 2*i+1, flags[i])
	}
	fmt.Println()
	// Output:
	// 3:false 5:false 7:false 9:true 11:false 13:false 15:true
}

// ExampleNewWheel shows the first turn and increment cycle of the {2,3,5} wheel.
func ExampleNewWheel() {
	w, err := sieve.NewWheel(2, 3, 5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(w.FirstTurn())
	fmt.Println(w.Increments())
	fmt.Println(w.ValueAt(8), w.ApproximateIndex(36))
	// Output:
	// [7 11 13 17 19 23 29 31]
	// [4 2 4 2 4 6 2 6]
	// 37 7
}

// ExampleFindPrimes collects the first ten primes with a wheel.
func ExampleFindPrimes() {
	w, _ := sieve.NewWheel(sieve.DefaultBasis()...)
	primes, err := sieve.FindPrimes(w, 10)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(primes)
	// Output:
	// [2 3 5 7 11 13 17 19 23 29]
}
