package checkedfloat

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Widen converts a finite value to a NaN-free value. It cannot fail: every
// finite value is a number.
func Widen[F constraints.Float](v Value[F, FiniteChecker[F]]) Value[F, NumChecker[F]] {
	return NewUnchecked[F, NumChecker[F]](v.raw)
}

// Narrow converts a NaN-free value to a finite one, failing with
// ErrIllegalValue if v is infinite.
func Narrow[F constraints.Float](v Value[F, NumChecker[F]]) (Value[F, FiniteChecker[F]], error) {
	return FromRaw[F, FiniteChecker[F]](v.raw)
}

// Convert re-checks v against the policy To.
func Convert[To Checker[F], F constraints.Float, From Checker[F]](v Value[F, From]) (Value[F, To], error) {
	return FromRaw[F, To](v.raw)
}

// N32ToN64 widens the float width. Every float32 is exactly representable
// as a float64, so the policy still holds.
func N32ToN64(v N32) N64 { return NewUnchecked[float64, NumChecker[float64]](float64(v.raw)) }

// R32ToR64 widens the float width of a finite value.
func R32ToR64(v R32) R64 { return NewUnchecked[float64, FiniteChecker[float64]](float64(v.raw)) }

// FromInt converts an integer to the nearest value of F. Integers of at most
// 16 bits (float32) or 32 bits (float64) convert exactly.
func FromInt[F constraints.Float, C Checker[F], I constraints.Integer](i I) Value[F, C] {
	return New[F, C](F(i))
}

// ToInt64 truncates v toward zero. ok is false if the result does not fit
// in an int64.
func (v Value[F, C]) ToInt64() (i int64, ok bool) {
	t := math.Trunc(float64(v.raw))
	// -2^63 is representable, 2^63 is not.
	if t < -(1<<63) || t >= 1<<63 || math.IsNaN(t) {
		return 0, false
	}
	return int64(t), true
}

// ToUint64 truncates v toward zero. ok is false if the result does not fit
// in a uint64.
func (v Value[F, C]) ToUint64() (u uint64, ok bool) {
	t := math.Trunc(float64(v.raw))
	if t < 0 || t >= 1<<64 || math.IsNaN(t) {
		return 0, false
	}
	return uint64(t), true
}

// ToInt is ToInt64 limited to the range of int.
func (v Value[F, C]) ToInt() (i int, ok bool) {
	i64, ok := v.ToInt64()
	if !ok || i64 < math.MinInt || i64 > math.MaxInt {
		return 0, false
	}
	return int(i64), true
}
