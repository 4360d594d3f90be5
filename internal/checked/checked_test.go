package checked

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := Add(40, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), got)
	})

	t.Run("valid max", func(t *testing.T) {
		got, err := Add(math.MaxInt64-1, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), got)
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := Add(math.MaxInt64, 1)
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("underflow", func(t *testing.T) {
		_, err := Add(math.MinInt64, -1)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}

func TestInc(t *testing.T) {
	got, err := Inc(11)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), got)

	_, err = Inc(math.MaxInt64)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestMul(t *testing.T) {
	cases := []struct {
		name    string
		a, b    int64
		want    int64
		wantErr bool
	}{
		{"zero", 0, math.MaxInt64, 0, false},
		{"small", 30, 8, 240, false},
		{"negative", -7, 6, -42, false},
		{"max", math.MaxInt64, 1, math.MaxInt64, false},
		{"overflow", math.MaxInt64/2 + 1, 2, 0, true},
		{"min times minus one", math.MinInt64, -1, 0, true},
		{"minus one times min", -1, math.MinInt64, 0, true},
		{"large squares", 1 << 32, 1 << 32, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Mul(tc.a, tc.b)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrOverflow)

				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFloatToInt64(t *testing.T) {
	t.Run("truncates", func(t *testing.T) {
		got, err := FloatToInt64(41.99)
		assert.NoError(t, err)
		assert.Equal(t, int64(41), got)
	})

	t.Run("two to the 63rd", func(t *testing.T) {
		_, err := FloatToInt64(math.Pow(2, 63))
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("NaN", func(t *testing.T) {
		_, err := FloatToInt64(math.NaN())
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("infinity", func(t *testing.T) {
		_, err := FloatToInt64(math.Inf(1))
		assert.ErrorIs(t, err, ErrOverflow)
	})
}
