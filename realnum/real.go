// Package realnum contains numeric algorithms written once against the Real
// interface. They run unchanged on plain floats (Float64) and on checked
// values, where every intermediate result is validated by the value's
// policy.
package realnum

import "math"

// Real is the set of operations the algorithms in this package need from a
// real number type T.
type Real[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	Abs() T
	Sqrt() T
	Compare(T) int
	Float64() float64
	// FromFloat64 converts x to T. The receiver is ignored, so the zero T can
	// be used as a factory.
	FromFloat64(x float64) T
}

// Float64 is an unchecked float64 implementing Real.
type Float64 float64

var _ Real[Float64] = Float64(0)

func (f Float64) Add(o Float64) Float64 { return f + o }
func (f Float64) Sub(o Float64) Float64 { return f - o }
func (f Float64) Mul(o Float64) Float64 { return f * o }
func (f Float64) Div(o Float64) Float64 { return f / o }
func (f Float64) Neg() Float64          { return -f }
func (f Float64) Abs() Float64          { return Float64(math.Abs(float64(f))) }
func (f Float64) Sqrt() Float64         { return Float64(math.Sqrt(float64(f))) }
func (f Float64) Float64() float64      { return float64(f) }

func (Float64) FromFloat64(x float64) Float64 { return Float64(x) }

// Compare orders f and o with the relational operators. NaN compares
// greater than everything, itself included.
func (f Float64) Compare(o Float64) int {
	switch {
	case f < o:
		return -1
	case f == o:
		return 0
	default:
		return 1
	}
}
