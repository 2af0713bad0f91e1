package checkedfloat

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/tsatke/checkedfloat/internal/ieee"
)

func Zero[F constraints.Float, C Checker[F]]() Value[F, C] { return New[F, C](0) }
func One[F constraints.Float, C Checker[F]]() Value[F, C]  { return New[F, C](1) }

// NaN always panics: no Value may hold NaN through a checked path.
func NaN[F constraints.Float, C Checker[F]]() Value[F, C] {
	panic(violation("unexpected NaN", F(math.NaN())))
}

// Infinity returns +Inf. It panics under policies that exclude infinity.
func Infinity[F constraints.Float, C Checker[F]]() Value[F, C] {
	return New[F, C](F(math.Inf(1)))
}

// NegInfinity returns -Inf. It panics under policies that exclude it.
func NegInfinity[F constraints.Float, C Checker[F]]() Value[F, C] {
	return New[F, C](F(math.Inf(-1)))
}

func NegZero[F constraints.Float, C Checker[F]]() Value[F, C] {
	return New[F, C](F(math.Copysign(0, -1)))
}

// MinValue returns the most negative finite value of F.
func MinValue[F constraints.Float, C Checker[F]]() Value[F, C] {
	return New[F, C](F(-ieee.Of[F]().MaxValue))
}

// MaxValue returns the largest finite value of F.
func MaxValue[F constraints.Float, C Checker[F]]() Value[F, C] {
	return New[F, C](F(ieee.Of[F]().MaxValue))
}

// MinPositive returns the smallest positive normal value of F.
func MinPositive[F constraints.Float, C Checker[F]]() Value[F, C] {
	return New[F, C](F(ieee.Of[F]().MinPositive))
}

// Epsilon returns the difference between 1 and the next larger value of F.
func Epsilon[F constraints.Float, C Checker[F]]() Value[F, C] {
	return New[F, C](F(ieee.Of[F]().Epsilon))
}

func Pi[F constraints.Float, C Checker[F]]() Value[F, C]          { return New[F, C](math.Pi) }
func Tau[F constraints.Float, C Checker[F]]() Value[F, C]         { return New[F, C](2 * math.Pi) }
func E[F constraints.Float, C Checker[F]]() Value[F, C]           { return New[F, C](math.E) }
func Sqrt2[F constraints.Float, C Checker[F]]() Value[F, C]       { return New[F, C](math.Sqrt2) }
func Ln2[F constraints.Float, C Checker[F]]() Value[F, C]         { return New[F, C](math.Ln2) }
func Ln10[F constraints.Float, C Checker[F]]() Value[F, C]        { return New[F, C](math.Ln10) }
func Log2E[F constraints.Float, C Checker[F]]() Value[F, C]       { return New[F, C](math.Log2E) }
func Log10E[F constraints.Float, C Checker[F]]() Value[F, C]      { return New[F, C](math.Log10E) }
func FracPi2[F constraints.Float, C Checker[F]]() Value[F, C]     { return New[F, C](math.Pi / 2) }
func FracPi3[F constraints.Float, C Checker[F]]() Value[F, C]     { return New[F, C](math.Pi / 3) }
func FracPi4[F constraints.Float, C Checker[F]]() Value[F, C]     { return New[F, C](math.Pi / 4) }
func FracPi6[F constraints.Float, C Checker[F]]() Value[F, C]     { return New[F, C](math.Pi / 6) }
func FracPi8[F constraints.Float, C Checker[F]]() Value[F, C]     { return New[F, C](math.Pi / 8) }
func Frac1Pi[F constraints.Float, C Checker[F]]() Value[F, C]     { return New[F, C](1 / math.Pi) }
func Frac2Pi[F constraints.Float, C Checker[F]]() Value[F, C]     { return New[F, C](2 / math.Pi) }
func Frac2SqrtPi[F constraints.Float, C Checker[F]]() Value[F, C] { return New[F, C](2 / math.SqrtPi) }
func Frac1Sqrt2[F constraints.Float, C Checker[F]]() Value[F, C]  { return New[F, C](1 / math.Sqrt2) }
