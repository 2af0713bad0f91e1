// Package floatgen provides pgregory.net/rapid generators for checked
// values, and a deterministic Shrinker that binary-searches a failing value
// toward zero.
package floatgen

import (
	"math"

	"golang.org/x/exp/constraints"
	"pgregory.net/rapid"

	"github.com/tsatke/checkedfloat"
	"github.com/tsatke/checkedfloat/internal/ieee"
)

// Of returns a generator of values of policy C. Besides arbitrary values of
// every magnitude it draws the signed zeros, the smallest subnormals and
// normals, the extremes and, where C allows them, the infinities.
func Of[F constraints.Float, C checkedfloat.Checker[F]]() *rapid.Generator[checkedfloat.Value[F, C]] {
	var c C
	raw := rapid.OneOf(anyFloat[F](), rapid.SampledFrom(Specials[F]()))
	return rapid.Map(raw.Filter(c.Check), checkedfloat.NewUnchecked[F, C])
}

func Num32() *rapid.Generator[checkedfloat.N32] {
	return Of[float32, checkedfloat.NumChecker[float32]]()
}

func Num64() *rapid.Generator[checkedfloat.N64] {
	return Of[float64, checkedfloat.NumChecker[float64]]()
}

func Finite32() *rapid.Generator[checkedfloat.R32] {
	return Of[float32, checkedfloat.FiniteChecker[float32]]()
}

func Finite64() *rapid.Generator[checkedfloat.R64] {
	return Of[float64, checkedfloat.FiniteChecker[float64]]()
}

func NonNegative64() *rapid.Generator[checkedfloat.Value[float64, checkedfloat.NonNegativeChecker[float64]]] {
	return Of[float64, checkedfloat.NonNegativeChecker[float64]]()
}

// Specials returns the boundary values of F that random drawing rarely hits.
// NaN is not among them.
func Specials[F constraints.Float]() []F {
	l := ieee.Of[F]()
	tiny := ieee.FromBits[F](1)
	return []F{
		0, F(math.Copysign(0, -1)),
		1, -1,
		tiny, -tiny,
		F(l.MinPositive), F(-l.MinPositive),
		F(l.MaxValue), F(-l.MaxValue),
		F(math.Inf(1)), F(math.Inf(-1)),
	}
}

func anyFloat[F constraints.Float]() *rapid.Generator[F] {
	if ieee.Of[F]().Bits == 32 {
		return rapid.Map(rapid.Float32Range(float32(math.Inf(-1)), float32(math.Inf(1))), func(f float32) F { return F(f) })
	}
	return rapid.Map(rapid.Float64Range(math.Inf(-1), math.Inf(1)), func(f float64) F { return F(f) })
}
