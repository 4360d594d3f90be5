package nthprime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/primesieve/nthprime"
)

// TestGuarded_ConcurrentQueries hammers one Guarded engine from many
// goroutines with interleaved growing and shrinking ranks.
func TestGuarded_ConcurrentQueries(t *testing.T) {
	ref, err := nthprime.New(nthprime.WithStrategy(nthprime.OddsOnly))
	require.NoError(t, err)
	want, err := ref.Primes(40000)
	require.NoError(t, err)

	g, err := nthprime.NewGuarded()
	require.NoError(t, err)

	const workers = 16
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			for n := int64(w); n < int64(len(want)); n += 397 + int64(w) {
				got, err := g.NthPrime(n)
				if err != nil {
					return err
				}
				if got != want[n] {
					t.Errorf("worker %d: rank %d = %d, want %d", w, n, got, want[n])
				}
			}

			return nil
		})
	}
	require.NoError(t, eg.Wait())
	assert.GreaterOrEqual(t, g.Len(), 1)

	prefix, err := g.Primes(100)
	require.NoError(t, err)
	assert.Equal(t, want[:100], prefix)
}

// TestNewGuarded_Error verifies configuration errors propagate.
func TestNewGuarded_Error(t *testing.T) {
	g, err := nthprime.NewGuarded(nthprime.WithBasis(3, 5))
	assert.Nil(t, g)
	assert.Error(t, err)
}
