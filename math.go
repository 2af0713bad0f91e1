package checkedfloat

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/tsatke/checkedfloat/internal/ieee"
)

// The elementary functions are evaluated in float64 and rounded back to F,
// then wrapped with New. A result outside the policy panics, e.g. Sqrt of a
// negative number or Ln of zero under FiniteChecker.

func (v Value[F, C]) apply(fn func(float64) float64) Value[F, C] {
	return New[F, C](F(fn(float64(v.raw))))
}

func (v Value[F, C]) apply2(o Value[F, C], fn func(float64, float64) float64) Value[F, C] {
	return New[F, C](F(fn(float64(v.raw), float64(o.raw))))
}

func (v Value[F, C]) Floor() Value[F, C]       { return v.apply(math.Floor) }
func (v Value[F, C]) Ceil() Value[F, C]        { return v.apply(math.Ceil) }
func (v Value[F, C]) Trunc() Value[F, C]       { return v.apply(math.Trunc) }
func (v Value[F, C]) RoundToEven() Value[F, C] { return v.apply(math.RoundToEven) }

// Round rounds half away from zero.
func (v Value[F, C]) Round() Value[F, C] { return v.apply(math.Round) }

// Fract returns v - Trunc(v). It panics for infinite v, whose fractional
// part is NaN.
func (v Value[F, C]) Fract() Value[F, C] {
	return New[F, C](v.raw - F(math.Trunc(float64(v.raw))))
}

func (v Value[F, C]) Abs() Value[F, C] { return v.apply(math.Abs) }

// Signum returns 1 if v has a positive sign (including +0 and +Inf) and -1
// otherwise.
func (v Value[F, C]) Signum() Value[F, C] {
	if math.Signbit(float64(v.raw)) {
		return New[F, C](-1)
	}
	return New[F, C](1)
}

// CopySign returns a value with the magnitude of v and the sign of sign.
func (v Value[F, C]) CopySign(sign Value[F, C]) Value[F, C] { return v.apply2(sign, math.Copysign) }

// MulAdd returns v*a + b with a single rounding.
func (v Value[F, C]) MulAdd(a, b Value[F, C]) Value[F, C] {
	return New[F, C](F(math.FMA(float64(v.raw), float64(a.raw), float64(b.raw))))
}

func (v Value[F, C]) Recip() Value[F, C] { return New[F, C](1 / v.raw) }

// Powi raises v to an integer power.
func (v Value[F, C]) Powi(n int) Value[F, C] {
	return New[F, C](F(math.Pow(float64(v.raw), float64(n))))
}

func (v Value[F, C]) Pow(n Value[F, C]) Value[F, C] { return v.apply2(n, math.Pow) }

func (v Value[F, C]) Sqrt() Value[F, C]  { return v.apply(math.Sqrt) }
func (v Value[F, C]) Cbrt() Value[F, C]  { return v.apply(math.Cbrt) }
func (v Value[F, C]) Exp() Value[F, C]   { return v.apply(math.Exp) }
func (v Value[F, C]) Exp2() Value[F, C]  { return v.apply(math.Exp2) }
func (v Value[F, C]) ExpM1() Value[F, C] { return v.apply(math.Expm1) }
func (v Value[F, C]) Ln() Value[F, C]    { return v.apply(math.Log) }
func (v Value[F, C]) Log2() Value[F, C]  { return v.apply(math.Log2) }
func (v Value[F, C]) Log10() Value[F, C] { return v.apply(math.Log10) }
func (v Value[F, C]) Ln1p() Value[F, C]  { return v.apply(math.Log1p) }

// Log returns the logarithm of v in the given base.
func (v Value[F, C]) Log(base Value[F, C]) Value[F, C] {
	return v.apply2(base, func(x, b float64) float64 {
		return math.Log(x) / math.Log(b)
	})
}

func (v Value[F, C]) Hypot(o Value[F, C]) Value[F, C] { return v.apply2(o, math.Hypot) }

func (v Value[F, C]) Sin() Value[F, C]  { return v.apply(math.Sin) }
func (v Value[F, C]) Cos() Value[F, C]  { return v.apply(math.Cos) }
func (v Value[F, C]) Tan() Value[F, C]  { return v.apply(math.Tan) }
func (v Value[F, C]) Asin() Value[F, C] { return v.apply(math.Asin) }
func (v Value[F, C]) Acos() Value[F, C] { return v.apply(math.Acos) }
func (v Value[F, C]) Atan() Value[F, C] { return v.apply(math.Atan) }

// Atan2 returns the arc tangent of v/x, using the signs of both to pick the
// quadrant.
func (v Value[F, C]) Atan2(x Value[F, C]) Value[F, C] { return v.apply2(x, math.Atan2) }

// SinCos returns Sin(v) and Cos(v).
func (v Value[F, C]) SinCos() (sin, cos Value[F, C]) {
	s, c := math.Sincos(float64(v.raw))
	return New[F, C](F(s)), New[F, C](F(c))
}

func (v Value[F, C]) Sinh() Value[F, C]  { return v.apply(math.Sinh) }
func (v Value[F, C]) Cosh() Value[F, C]  { return v.apply(math.Cosh) }
func (v Value[F, C]) Tanh() Value[F, C]  { return v.apply(math.Tanh) }
func (v Value[F, C]) Asinh() Value[F, C] { return v.apply(math.Asinh) }
func (v Value[F, C]) Acosh() Value[F, C] { return v.apply(math.Acosh) }
func (v Value[F, C]) Atanh() Value[F, C] { return v.apply(math.Atanh) }

func (v Value[F, C]) ToDegrees() Value[F, C] { return New[F, C](v.raw * (180 / math.Pi)) }
func (v Value[F, C]) ToRadians() Value[F, C] { return New[F, C](v.raw * (math.Pi / 180)) }

// AbsSub returns v - o if v > o and +0 otherwise.
func (v Value[F, C]) AbsSub(o Value[F, C]) Value[F, C] { return v.apply2(o, math.Dim) }

// Classification never needs re-validation.

func (v Value[F, C]) IsNaN() bool          { return math.IsNaN(float64(v.raw)) }
func (v Value[F, C]) IsInf() bool          { return math.IsInf(float64(v.raw), 0) }
func (v Value[F, C]) IsFinite() bool       { return v.raw-v.raw == 0 }
func (v Value[F, C]) IsZero() bool         { return v.raw == 0 }
func (v Value[F, C]) IsSignPositive() bool { return !math.Signbit(float64(v.raw)) }
func (v Value[F, C]) IsSignNegative() bool { return math.Signbit(float64(v.raw)) }

// IsPositive reports whether v > 0. Unlike IsSignPositive it is false for +0.
func (v Value[F, C]) IsPositive() bool { return v.raw > 0 }

// IsNegative reports whether v < 0. Unlike IsSignNegative it is false for -0.
func (v Value[F, C]) IsNegative() bool { return v.raw < 0 }

// IsNormal reports whether v is neither zero, subnormal, infinite nor NaN.
func (v Value[F, C]) IsNormal() bool { return v.Classify() == CategoryNormal }

// Category is the IEEE-754 class of a float.
type Category uint8

const (
	CategoryNaN Category = iota
	CategoryInfinite
	CategoryZero
	CategorySubnormal
	CategoryNormal
)

func (c Category) String() string {
	switch c {
	case CategoryNaN:
		return "NaN"
	case CategoryInfinite:
		return "Infinite"
	case CategoryZero:
		return "Zero"
	case CategorySubnormal:
		return "Subnormal"
	case CategoryNormal:
		return "Normal"
	}
	return "Category(" + strconv.Itoa(int(c)) + ")"
}

// Classify returns the IEEE-754 category of v.
func (v Value[F, C]) Classify() Category {
	return classify(v.raw)
}

func classify[F constraints.Float](raw F) Category {
	switch {
	case math.IsNaN(float64(raw)):
		return CategoryNaN
	case math.IsInf(float64(raw), 0):
		return CategoryInfinite
	case raw == 0:
		return CategoryZero
	case ieee.IsSubnormal(raw):
		return CategorySubnormal
	}
	return CategoryNormal
}

// IntegerDecode returns mantissa, exponent and sign such that
// v == sign * mantissa * 2^exponent.
func (v Value[F, C]) IntegerDecode() (mantissa uint64, exponent int16, sign int8) {
	return ieee.Decode(v.raw)
}
