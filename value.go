package checkedfloat

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/tsatke/checkedfloat/internal/ieee"
)

// Value is a float of type F that satisfies the policy C. Every Value built
// by New, TryNew, FromRaw, Parse or any arithmetic method satisfies
// C.Check. Only NewUnchecked can produce a Value that does not.
//
// Value is comparable, so == and map keys work directly and agree with
// Equal: +0 and -0 are the same key.
type Value[F constraints.Float, C Checker[F]] struct {
	raw F
}

type (
	// N32 is a float32 that is never NaN.
	N32 = Value[float32, NumChecker[float32]]
	// N64 is a float64 that is never NaN.
	N64 = Value[float64, NumChecker[float64]]
	// R32 is a float32 that is never NaN or infinite.
	R32 = Value[float32, FiniteChecker[float32]]
	// R64 is a float64 that is never NaN or infinite.
	R64 = Value[float64, FiniteChecker[float64]]
)

// New wraps raw, panicking with an *InvariantError if raw violates C.
func New[F constraints.Float, C Checker[F]](raw F) Value[F, C] {
	var c C
	c.Assert(raw)
	return Value[F, C]{raw: raw}
}

// TryNew wraps raw if it satisfies C. On failure it returns the zero
// Value, which is +0. The check is performed in every
// build, so TryNew is the entry point for untrusted input.
func TryNew[F constraints.Float, C Checker[F]](raw F) (Value[F, C], bool) {
	var c C
	if !c.Check(raw) {
		return Value[F, C]{}, false
	}
	return Value[F, C]{raw: raw}, true
}

// FromRaw is TryNew with an error wrapping ErrIllegalValue.
func FromRaw[F constraints.Float, C Checker[F]](raw F) (Value[F, C], error) {
	v, ok := TryNew[F, C](raw)
	if !ok {
		return v, illegal(raw)
	}
	return v, nil
}

// NewUnchecked wraps raw without checking it against C.
//
// The caller must already know that raw satisfies C, for example because it
// was extracted from another Value with the same policy. Passing an invalid
// raw value breaks the ordering and hashing guarantees of Value silently.
func NewUnchecked[F constraints.Float, C Checker[F]](raw F) Value[F, C] {
	return Value[F, C]{raw: raw}
}

func NewN32(raw float32) N32 { return New[float32, NumChecker[float32]](raw) }
func NewN64(raw float64) N64 { return New[float64, NumChecker[float64]](raw) }
func NewR32(raw float32) R32 { return New[float32, FiniteChecker[float32]](raw) }
func NewR64(raw float64) R64 { return New[float64, FiniteChecker[float64]](raw) }

// Raw returns the wrapped float.
func (v Value[F, C]) Raw() F {
	return v.raw
}

// Float64 returns the wrapped float widened to float64.
func (v Value[F, C]) Float64() float64 {
	return float64(v.raw)
}

// FromFloat64 converts x to F and wraps it with New. The receiver is not
// used; the method exists so that generic code holding only the type can
// construct values, see package realnum.
func (Value[F, C]) FromFloat64(x float64) Value[F, C] {
	return New[F, C](F(x))
}

// IsValid re-evaluates the policy predicate. It can only be false for
// values produced by NewUnchecked.
func (v Value[F, C]) IsValid() bool {
	var c C
	return c.Check(v.raw)
}

func (v Value[F, C]) String() string {
	return strconv.FormatFloat(float64(v.raw), 'g', -1, ieee.Of[F]().Bits)
}

// Format formats the raw value, so every float verb and flag of package fmt
// applies. %s is treated as %v.
func (v Value[F, C]) Format(s fmt.State, verb rune) {
	if verb == 's' {
		verb = 'v'
	}
	_, _ = fmt.Fprintf(s, fmt.FormatString(s, verb), v.raw)
}
