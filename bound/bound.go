package bound

import (
	"fmt"
	"math"

	"github.com/katalvlaran/primesieve/internal/checked"
)

const (
	// MinFormulaCount is the smallest count the asymptotic formula is valid for.
	MinFormulaCount = 12

	// SmallCountBound is the 12th prime; every prime of rank < 12 is ≤ it.
	SmallCountBound = 37
)

// ErrOverflow indicates the bound for the requested count does not fit in an int64.
var ErrOverflow = checked.ErrOverflow

// UpperBound returns a value guaranteed to be ≥ the prime of 0-based rank
// count-1 (and, since the formula is applied to count+1, ≥ the prime of
// rank count as well).
//
// Steps:
//  1. count < MinFormulaCount → SmallCountBound.
//  2. m = count+1 (checked), re-basing to the 1-indexed form of the inequality.
//  3. bound = ⌊m (ln m + ln ln m − 1 + 1.8 ln ln m / ln m)⌋, the final cast checked.
//
// Returns ErrOverflow if step 2 or 3 exceeds the int64 range.
func UpperBound(count int64) (int64, error) {
	if count < MinFormulaCount {
		return SmallCountBound, nil
	}

	m, err := checked.Inc(count)
	if err != nil {
		return 0, fmt.Errorf("bound: count %d: %w", count, err)
	}

	fm := float64(m)
	logM := math.Log(fm)
	logLogM := math.Log(logM)
	limit, err := checked.FloatToInt64(fm * (logM + logLogM - 1 + 1.8*logLogM/logM))
	if err != nil {
		return 0, fmt.Errorf("bound: count %d: %w", count, err)
	}

	return limit, nil
}
