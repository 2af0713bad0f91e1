package floatgen

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/tsatke/checkedfloat"
	"github.com/tsatke/checkedfloat/internal/ieee"
)

// Shrinker walks a value toward zero by bisecting its magnitude. The sign of
// the start value is kept throughout.
//
// Simplify moves to a simpler value after the current one was found to
// still fail. Complicate moves back toward the last failing value after the
// current one passed. Both report false once no further step is possible,
// and every value the Shrinker yields satisfies C.
type Shrinker[F constraints.Float, C checkedfloat.Checker[F]] struct {
	neg bool
	// magnitudes: lo <= curr <= hi
	lo, curr, hi F
}

func NewShrinker[F constraints.Float, C checkedfloat.Checker[F]](v checkedfloat.Value[F, C]) *Shrinker[F, C] {
	raw := v.Raw()
	mag := F(math.Abs(float64(raw)))
	return &Shrinker[F, C]{
		neg:  math.Signbit(float64(raw)),
		curr: mag,
		hi:   mag,
	}
}

func (s *Shrinker[F, C]) Current() checkedfloat.Value[F, C] {
	return checkedfloat.NewUnchecked[F, C](s.signed(s.curr)) //checkedfloat:trusted every position is checked before it is taken
}

func (s *Shrinker[F, C]) Simplify() bool {
	if math.IsInf(float64(s.curr), 0) {
		// no midpoint exists between 0 and infinity
		top := F(ieee.Of[F]().MaxValue)
		if !s.valid(top) {
			return false
		}
		s.curr, s.hi = top, top
		return true
	}
	if s.curr == s.lo {
		return false
	}
	s.hi = s.curr
	return s.reposition()
}

func (s *Shrinker[F, C]) Complicate() bool {
	if s.curr == s.hi {
		return false
	}
	s.lo = s.curr
	return s.reposition()
}

func (s *Shrinker[F, C]) reposition() bool {
	mid := s.lo + (s.hi-s.lo)/2
	if mid == s.curr || !s.valid(mid) {
		return false
	}
	s.curr = mid
	return true
}

func (s *Shrinker[F, C]) valid(mag F) bool {
	var c C
	return c.Check(s.signed(mag))
}

func (s *Shrinker[F, C]) signed(mag F) F {
	if s.neg {
		return -mag
	}
	return mag
}
