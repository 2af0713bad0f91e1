package checkedfloat

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Every operation in this file computes on the raw values and wraps the
// result with New, so a result that violates the policy panics at the
// operation that produced it.

func (v Value[F, C]) Add(o Value[F, C]) Value[F, C] { return New[F, C](v.raw + o.raw) }
func (v Value[F, C]) Sub(o Value[F, C]) Value[F, C] { return New[F, C](v.raw - o.raw) }
func (v Value[F, C]) Mul(o Value[F, C]) Value[F, C] { return New[F, C](v.raw * o.raw) }
func (v Value[F, C]) Div(o Value[F, C]) Value[F, C] { return New[F, C](v.raw / o.raw) }

// Rem returns the remainder of v/o with the sign of v, as math.Mod.
func (v Value[F, C]) Rem(o Value[F, C]) Value[F, C] { return New[F, C](rem(v.raw, o.raw)) }

func (v Value[F, C]) AddRaw(x F) Value[F, C] { return New[F, C](v.raw + x) }
func (v Value[F, C]) SubRaw(x F) Value[F, C] { return New[F, C](v.raw - x) }
func (v Value[F, C]) MulRaw(x F) Value[F, C] { return New[F, C](v.raw * x) }
func (v Value[F, C]) DivRaw(x F) Value[F, C] { return New[F, C](v.raw / x) }
func (v Value[F, C]) RemRaw(x F) Value[F, C] { return New[F, C](rem(v.raw, x)) }

// Neg returns -v.
func (v Value[F, C]) Neg() Value[F, C] { return New[F, C](-v.raw) }

// RawAdd returns x + v.
func RawAdd[F constraints.Float, C Checker[F]](x F, v Value[F, C]) Value[F, C] {
	return New[F, C](x + v.raw)
}

// RawSub returns x - v.
func RawSub[F constraints.Float, C Checker[F]](x F, v Value[F, C]) Value[F, C] {
	return New[F, C](x - v.raw)
}

// RawMul returns x * v.
func RawMul[F constraints.Float, C Checker[F]](x F, v Value[F, C]) Value[F, C] {
	return New[F, C](x * v.raw)
}

// RawDiv returns x / v.
func RawDiv[F constraints.Float, C Checker[F]](x F, v Value[F, C]) Value[F, C] {
	return New[F, C](x / v.raw)
}

// RawRem returns the remainder of x / v.
func RawRem[F constraints.Float, C Checker[F]](x F, v Value[F, C]) Value[F, C] {
	return New[F, C](rem(x, v.raw))
}

// The assignment forms update v in place and then assert the policy. If
// the assertion panics, v already holds the invalid result.

func (v *Value[F, C]) AddAssign(o Value[F, C]) { v.assign(v.raw + o.raw) }
func (v *Value[F, C]) SubAssign(o Value[F, C]) { v.assign(v.raw - o.raw) }
func (v *Value[F, C]) MulAssign(o Value[F, C]) { v.assign(v.raw * o.raw) }
func (v *Value[F, C]) DivAssign(o Value[F, C]) { v.assign(v.raw / o.raw) }
func (v *Value[F, C]) RemAssign(o Value[F, C]) { v.assign(rem(v.raw, o.raw)) }

func (v *Value[F, C]) AddAssignRaw(x F) { v.assign(v.raw + x) }
func (v *Value[F, C]) SubAssignRaw(x F) { v.assign(v.raw - x) }
func (v *Value[F, C]) MulAssignRaw(x F) { v.assign(v.raw * x) }
func (v *Value[F, C]) DivAssignRaw(x F) { v.assign(v.raw / x) }
func (v *Value[F, C]) RemAssignRaw(x F) { v.assign(rem(v.raw, x)) }

func (v *Value[F, C]) assign(raw F) {
	v.raw = raw
	var c C
	c.Assert(v.raw)
}

func rem[F constraints.Float](x, y F) F {
	return F(math.Mod(float64(x), float64(y)))
}
