package floatgen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/tsatke/checkedfloat"
	"github.com/tsatke/checkedfloat/floatgen"
)

func TestNum64(t *testing.T) {
	sawInf := false
	rapid.Check(t, func(t *rapid.T) {
		v := floatgen.Num64().Draw(t, "v")
		if math.IsNaN(v.Raw()) {
			t.Fatalf("generated NaN")
		}
		sawInf = sawInf || v.IsInf()
	})
	assert.True(t, sawInf, "Num64 never produced an infinity")
}

func TestFinite(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := floatgen.Finite32().Draw(t, "a")
		b := floatgen.Finite64().Draw(t, "b")
		if !a.IsFinite() || !b.IsFinite() {
			t.Fatalf("generated non-finite value: %v, %v", a, b)
		}
	})
}

func TestNonNegative64(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := floatgen.NonNegative64().Draw(t, "v")
		if !(v.Raw() >= 0) {
			t.Fatalf("generated %v", v)
		}
	})
}

func TestSpecials(t *testing.T) {
	specials := floatgen.Specials[float32]()
	assert.Contains(t, specials, float32(math.MaxFloat32))
	assert.Contains(t, specials, float32(math.SmallestNonzeroFloat32))
	for _, f := range specials {
		assert.False(t, math.IsNaN(float64(f)), "specials must not contain NaN")
	}
}

func TestShrinker_Simplify(t *testing.T) {
	s := floatgen.NewShrinker(checkedfloat.NewR64(-1000))

	steps := 0
	for s.Simplify() {
		steps++
		require.Less(t, steps, 2000, "shrinking did not terminate")
	}
	assert.Equal(t, checkedfloat.NewR64(0), s.Current())
	assert.True(t, math.Signbit(s.Current().Raw()), "sign is kept")
}

func TestShrinker_infinity(t *testing.T) {
	s := floatgen.NewShrinker(checkedfloat.NewN32(float32(math.Inf(1))))

	require.True(t, s.Simplify())
	assert.Equal(t, float32(math.MaxFloat32), s.Current().Raw())
	require.True(t, s.Simplify())
	assert.Equal(t, float32(math.MaxFloat32/2), s.Current().Raw())
}

func TestShrinker_Complicate(t *testing.T) {
	s := floatgen.NewShrinker(checkedfloat.NewR64(8))
	assert.False(t, s.Complicate(), "nothing to complicate at the start value")

	require.True(t, s.Simplify())
	assert.Equal(t, 4.0, s.Current().Raw())
	require.True(t, s.Complicate())
	assert.Equal(t, 6.0, s.Current().Raw())
	require.True(t, s.Simplify())
	assert.Equal(t, 5.0, s.Current().Raw())
}

// Shrinking a failing value must end at the smallest magnitude that still
// fails, here the smallest value above the threshold reachable by bisection.
func TestShrinker_findsBoundary(t *testing.T) {
	fails := func(v checkedfloat.R64) bool { return v.Raw() > 10 }

	s := floatgen.NewShrinker(checkedfloat.NewR64(1e6))
	last := s.Current()
	for i := 0; i < 10000; i++ {
		var moved bool
		if fails(s.Current()) {
			last = s.Current()
			moved = s.Simplify()
		} else {
			moved = s.Complicate()
		}
		if !moved {
			break
		}
	}
	assert.True(t, fails(last))
	assert.InDelta(t, 10, last.Raw(), 1e-6)
}
