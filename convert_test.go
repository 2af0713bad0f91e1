package checkedfloat_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/tsatke/checkedfloat"
	"github.com/tsatke/checkedfloat/floatgen"
)

func TestWiden(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := floatgen.Finite64().Draw(t, "r")
		n := checkedfloat.Widen(r)
		if n.Raw() != r.Raw() || math.Signbit(n.Raw()) != math.Signbit(r.Raw()) {
			t.Fatalf("Widen(%v) = %v", r, n)
		}
	})
}

func TestNarrow(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := floatgen.Num32().Draw(t, "n")
		r, err := checkedfloat.Narrow(n)
		if n.IsInf() {
			if !errors.Is(err, checkedfloat.ErrIllegalValue) {
				t.Fatalf("Narrow(%v) error = %v", n, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("Narrow(%v) failed: %v", n, err)
		}
		if r.Raw() != n.Raw() {
			t.Fatalf("Narrow(%v) = %v", n, r)
		}
	})
}

func TestNarrow_infinities(t *testing.T) {
	_, err := checkedfloat.Narrow(checkedfloat.NewN64(inf))
	require.ErrorIs(t, err, checkedfloat.ErrIllegalValue)
	_, err = checkedfloat.Narrow(checkedfloat.NewN64(negInf))
	require.ErrorIs(t, err, checkedfloat.ErrIllegalValue)
}

func TestConvert(t *testing.T) {
	type nonNeg = checkedfloat.NonNegativeChecker[float64]

	v, err := checkedfloat.Convert[nonNeg](checkedfloat.NewR64(2))
	require.NoError(t, err)
	assert.Equal(t, 2.0, v.Raw())

	_, err = checkedfloat.Convert[nonNeg](checkedfloat.NewR64(-2))
	require.ErrorIs(t, err, checkedfloat.ErrIllegalValue)

	n, err := checkedfloat.Convert[checkedfloat.NumChecker[float64]](v)
	require.NoError(t, err)
	assert.Equal(t, checkedfloat.NewN64(2), n)
}

func TestWidthWidening(t *testing.T) {
	assert.Equal(t, checkedfloat.NewN64(inf), checkedfloat.N32ToN64(checkedfloat.NewN32(float32(inf))))
	assert.Equal(t, float64(float32(0.1)), checkedfloat.R32ToR64(checkedfloat.NewR32(0.1)).Raw())
}

func TestFromInt(t *testing.T) {
	type f32 = checkedfloat.FiniteChecker[float32]

	assert.Equal(t, float32(-32768), checkedfloat.FromInt[float32, f32](int16(math.MinInt16)).Raw())
	assert.Equal(t, float32(65535), checkedfloat.FromInt[float32, f32](uint16(math.MaxUint16)).Raw())
	assert.Equal(t, float64(math.MaxUint32), checkedfloat.FromInt[float64, checkedfloat.FiniteChecker[float64]](uint32(math.MaxUint32)).Raw())
	assert.Equal(t, float32(1<<24), checkedfloat.FromInt[float32, f32](1<<24+1).Raw())
}

func TestToInt(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		want    int64
		wantOk  bool
		wantU   uint64
		wantUOk bool
	}{
		{"truncates positive", 2.9, 2, true, 2, true},
		{"truncates negative", -2.9, -2, true, 0, false},
		{"small negative", -0.5, 0, true, 0, true},
		{"min int64", -9223372036854775808, math.MinInt64, true, 0, false},
		{"too large for int64", 9223372036854775808, 0, false, 1 << 63, true},
		{"too large for uint64", 18446744073709551616, 0, false, 0, false},
		{"infinity", inf, 0, false, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := checkedfloat.NewN64(tt.input)

			got, ok := v.ToInt64()
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)

			u, ok := v.ToUint64()
			assert.Equal(t, tt.wantUOk, ok)
			assert.Equal(t, tt.wantU, u)

			i, ok := v.ToInt()
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, int(tt.want), i)
		})
	}
}
