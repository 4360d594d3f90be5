package sieve

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/katalvlaran/primesieve/internal/checked"
)

// MaxModulus caps the product of the wheel basis; the residue table holds
// MaxModulus+2 entries.
const MaxModulus = 1 << 24

// DefaultBasis returns the basis {2, 3, 5} used when none is supplied.
func DefaultBasis() []int64 { return []int64{2, 3, 5} }

// Wheel flags only integers coprime to every basis prime.
//
// Index i represents firstTurn[i mod L] + ⌊i / L⌋·M, where M is the basis
// product and L = len(firstTurn) = φ(M). A Wheel is immutable once built.
type Wheel struct {
	basis      []int64
	modulus    int64
	firstTurn  []int64 // coprime values in (max(basis), M+1], ascending
	increments []int64 // gaps between consecutive first-turn values, cyclic
	// residues[r] is the position of the greatest first-turn value ≤ r, or -1,
	// for every residue r in [0, M+1].
	residues []int32
}

// NewWheel builds a wheel from basis, which must be the first k primes in
// ascending order (k ≥ 1) with a product no larger than MaxModulus.
//
// Steps:
//  1. Validate the basis (ErrEmptyBasis, ErrInvalidBasis, ErrBasisTooLarge).
//  2. Flag multiples of every basis prime over [0, M+1] and keep the
//     unflagged values above the largest basis prime as the first turn.
//  3. Derive the increment cycle and the residue table.
//
// Complexity: O(M·k) time, O(M) memory.
func NewWheel(basis ...int64) (*Wheel, error) {
	modulus, err := validateBasis(basis)
	if err != nil {
		return nil, err
	}

	flags := make([]bool, modulus+2)
	for _, p := range basis {
		for j := 2 * p; j < int64(len(flags)); j += p {
			flags[j] = true
		}
	}
	firstTurn := make([]int64, 0, modulus/2)
	for v := basis[len(basis)-1] + 1; v < int64(len(flags)); v++ {
		if !flags[v] {
			firstTurn = append(firstTurn, v)
		}
	}

	turn := len(firstTurn)
	increments := make([]int64, turn)
	for r := 0; r < turn-1; r++ {
		increments[r] = firstTurn[r+1] - firstTurn[r]
	}
	increments[turn-1] = firstTurn[0] + modulus - firstTurn[turn-1]

	residues := make([]int32, modulus+2)
	pos := int32(-1)
	for r := range residues {
		if int(pos+1) < turn && firstTurn[pos+1] == int64(r) {
			pos++
		}
		residues[r] = pos
	}

	return &Wheel{
		basis:      append([]int64(nil), basis...),
		modulus:    modulus,
		firstTurn:  firstTurn,
		increments: increments,
		residues:   residues,
	}, nil
}

// Name implements Flagger, e.g. "wheel(2,3,5)".
func (w *Wheel) Name() string {
	parts := make([]string, len(w.basis))
	for i, p := range w.basis {
		parts[i] = fmt.Sprint(p)
	}

	return "wheel(" + strings.Join(parts, ",") + ")"
}

// Seed implements Flagger; the basis primes are never represented.
func (w *Wheel) Seed() []int64 { return w.Basis() }

// FirstIndex implements Flagger; index 0 is already the first prime after the basis.
func (w *Wheel) FirstIndex() int64 { return 0 }

// Basis returns a copy of the basis primes.
func (w *Wheel) Basis() []int64 { return append([]int64(nil), w.basis...) }

// Modulus returns the product of the basis primes, i.e. the wheel period.
func (w *Wheel) Modulus() int64 { return w.modulus }

// FirstTurn returns a copy of the first-turn sequence.
func (w *Wheel) FirstTurn() []int64 { return append([]int64(nil), w.firstTurn...) }

// Increments returns a copy of the increment cycle.
func (w *Wheel) Increments() []int64 { return append([]int64(nil), w.increments...) }

// ValueAt implements Flagger.
func (w *Wheel) ValueAt(index int64) int64 {
	turn := int64(len(w.firstTurn))

	return w.firstTurn[index%turn] + index/turn*w.modulus
}

// decompose splits v ≥ 2 into its period and a residue in [2, M+1].
func (w *Wheel) decompose(v int64) (period, residue int64) {
	period = (v - 2) / w.modulus

	return period, v - period*w.modulus
}

// IndexOf returns the index representing v, reporting false when v is not
// represented (it shares a factor with the basis or is below the first turn).
func (w *Wheel) IndexOf(v int64) (int64, bool) {
	if v < w.firstTurn[0] {
		return -1, false
	}
	period, residue := w.decompose(v)
	pos := w.residues[residue]
	if pos < 0 || w.firstTurn[pos] != residue {
		return -1, false
	}

	return period*int64(len(w.firstTurn)) + int64(pos), true
}

// ApproximateIndex returns the index of the greatest represented value ≤ v,
// or -1 when no represented value is that small.
//
// The sieve uses it to turn analytic thresholds such as √limit, which are
// usually not represented themselves, into loop bounds.
func (w *Wheel) ApproximateIndex(v int64) int64 {
	if v < w.firstTurn[0] {
		return -1
	}
	period, residue := w.decompose(v)
	base := period * int64(len(w.firstTurn))
	if pos := w.residues[residue]; pos >= 0 {
		return base + int64(pos)
	}

	// residue lies below the first turn: fall back to the last value of the
	// previous period, (period-1)·M + M+1.
	return base - 1
}

// Flag implements Flagger.
//
// The domain holds ApproximateIndex(maxValue)+1 flags. For each unflagged
// index up to ApproximateIndex(√maxValue) with value p, the products p·q
// for represented q ≥ p are marked. q advances along the increment cycle
// starting at p's own wheel position, so the composite advances by
// increments[cursor]·p on each step.
func (w *Wheel) Flag(maxValue int64) ([]bool, error) {
	if maxValue < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBound, maxValue)
	}
	last := w.ApproximateIndex(maxValue)
	if last < 0 {
		return []bool{}, nil
	}
	size, err := checked.Inc(last)
	if err != nil {
		return nil, fmt.Errorf("sieve: wheel domain size: %w", err)
	}
	if err = checkDomain(w.Name(), size); err != nil {
		return nil, err
	}

	flags := make([]bool, size)
	turn := int64(len(w.firstTurn))
	rootIndex := w.ApproximateIndex(isqrt(maxValue))
	for i := int64(0); i <= rootIndex; i++ {
		if flags[i] {
			continue
		}
		p := w.ValueAt(i)
		cursor := i % turn
		for c := p * p; ; {
			idx, ok := w.IndexOf(c)
			if !ok || idx >= size {
				return nil, errors.Wrapf(ErrInternalConsistency,
					"%s: composite %d = %d·%d has no flag below %d", w.Name(), c, p, c/p, size)
			}
			flags[idx] = true

			step := w.increments[cursor] * p
			if c > maxValue-step {
				break
			}
			c += step
			if cursor++; cursor == turn {
				cursor = 0
			}
		}
	}

	return flags, nil
}

// validateBasis checks basis against the true first len(basis) primes and
// returns the overflow-checked basis product.
func validateBasis(basis []int64) (int64, error) {
	if len(basis) == 0 {
		return 0, ErrEmptyBasis
	}

	want, err := FindPrimes(Plain{}, int64(len(basis)))
	if err != nil {
		return 0, err
	}
	var errs error
	for i, p := range basis {
		if p != want[i] {
			errs = multierr.Append(errs, fmt.Errorf("%w: basis[%d] = %d, want %d", ErrInvalidBasis, i, p, want[i]))
		}
	}
	if errs != nil {
		return 0, errs
	}

	modulus := int64(1)
	for _, p := range basis {
		modulus, err = checked.Mul(modulus, p)
		if err != nil || modulus > MaxModulus {
			return 0, fmt.Errorf("%w: product of %v exceeds %d", ErrBasisTooLarge, basis, MaxModulus)
		}
	}

	return modulus, nil
}
