package checkedfloat

import (
	"math"

	"github.com/tsatke/checkedfloat/internal/ieee"
)

// DefaultMaxULPs is the ULP tolerance used by callers that have no better
// estimate.
const DefaultMaxULPs = 4

// DefaultEpsilon returns the machine epsilon of F as an absolute tolerance.
func (v Value[F, C]) DefaultEpsilon() F {
	return F(ieee.Of[F]().Epsilon)
}

// AbsDiffEq reports whether |v - o| <= epsilon. The difference of two
// equal infinities is NaN, so infinities are never AbsDiffEq; RelativeEq and
// UlpsEq treat them as equal to themselves.
func (v Value[F, C]) AbsDiffEq(o Value[F, C], epsilon F) bool {
	return math.Abs(float64(v.raw)-float64(o.raw)) <= float64(epsilon)
}

// RelativeEq reports whether v and o are within epsilon of each other, or
// within maxRelative times the larger magnitude. Infinities are only equal
// to themselves.
func (v Value[F, C]) RelativeEq(o Value[F, C], epsilon, maxRelative F) bool {
	if v.raw == o.raw {
		return true
	}
	if v.IsInf() || o.IsInf() {
		return false
	}

	a, b := float64(v.raw), float64(o.raw)
	diff := math.Abs(a - b)
	if diff <= float64(epsilon) {
		return true
	}
	largest := math.Max(math.Abs(a), math.Abs(b))
	return diff <= largest*float64(maxRelative)
}

// UlpsEq reports whether v and o are within epsilon of each other, or at
// most maxULPs representable values of F apart. Values of different sign
// are only ULP-equal through the epsilon test.
func (v Value[F, C]) UlpsEq(o Value[F, C], epsilon F, maxULPs uint64) bool {
	if v.AbsDiffEq(o, epsilon) {
		return true
	}
	if math.Signbit(float64(v.raw)) != math.Signbit(float64(o.raw)) {
		return false
	}

	a, b := ieee.Bits(v.raw), ieee.Bits(o.raw)
	if a > b {
		a, b = b, a
	}
	return b-a <= maxULPs
}
