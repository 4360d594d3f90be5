package sieve

import (
	"errors"

	"github.com/katalvlaran/primesieve/internal/checked"
)

// Sentinel errors for sieve construction and flagging.
var (
	// ErrEmptyBasis indicates a wheel was requested without any basis primes.
	ErrEmptyBasis = errors.New("sieve: wheel basis must not be empty")

	// ErrInvalidBasis indicates a basis that is not the first k primes in ascending order.
	ErrInvalidBasis = errors.New("sieve: wheel basis must be the smallest primes in ascending order")

	// ErrBasisTooLarge indicates the basis product exceeds MaxModulus.
	ErrBasisTooLarge = errors.New("sieve: wheel modulus too large")

	// ErrInvalidBound indicates a negative flagging limit.
	ErrInvalidBound = errors.New("sieve: flagging limit must be non-negative")

	// ErrInternalConsistency indicates a flagger produced fewer primes than the
	// upper-bound estimate guarantees, or a wheel composite fell outside its
	// domain. It always signals a defect, never bad input. Returned errors are
	// wrapped with github.com/pkg/errors and carry the stack of the failing
	// call; print them with %+v.
	ErrInternalConsistency = errors.New("sieve: internal consistency failure")

	// ErrDomainTooLarge indicates a flag domain longer than MaxDomain.
	ErrDomainTooLarge = errors.New("sieve: flag domain too large")

	// ErrOverflow indicates a bound or domain size does not fit in an int64.
	ErrOverflow = checked.ErrOverflow
)
