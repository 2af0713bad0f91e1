package realnum

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmpty is returned by the algorithms that are undefined without input.
	ErrEmpty          = errors.New("empty input")
	ErrLengthMismatch = errors.New("length mismatch")
)

func zero[T Real[T]]() T {
	var t T
	return t.FromFloat64(0)
}

// Sum adds xs from left to right.
func Sum[T Real[T]](xs []T) T {
	acc := zero[T]()
	for _, x := range xs {
		acc = acc.Add(x)
	}
	return acc
}

// Mean returns the arithmetic mean of xs.
func Mean[T Real[T]](xs []T) (T, error) {
	if len(xs) == 0 {
		return zero[T](), ErrEmpty
	}
	n := zero[T]().FromFloat64(float64(len(xs)))
	return Sum(xs).Div(n), nil
}

// Variance returns the population variance of xs, computed in two passes
// around the mean.
func Variance[T Real[T]](xs []T) (T, error) {
	mean, err := Mean(xs)
	if err != nil {
		return mean, err
	}
	acc := zero[T]()
	for _, x := range xs {
		d := x.Sub(mean)
		acc = acc.Add(d.Mul(d))
	}
	return acc.Div(mean.FromFloat64(float64(len(xs)))), nil
}

// Dot returns the inner product of xs and ys, which must have equal length.
func Dot[T Real[T]](xs, ys []T) (T, error) {
	if len(xs) != len(ys) {
		return zero[T](), fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(xs), len(ys))
	}
	acc := zero[T]()
	for i := range xs {
		acc = acc.Add(xs[i].Mul(ys[i]))
	}
	return acc, nil
}

// Norm returns the Euclidean norm of xs. Components are scaled by the
// largest magnitude first, so the squares do not overflow for large inputs.
func Norm[T Real[T]](xs []T) T {
	scale := zero[T]()
	for _, x := range xs {
		if a := x.Abs(); a.Compare(scale) > 0 {
			scale = a
		}
	}
	if scale.Compare(zero[T]()) == 0 || math.IsInf(scale.Float64(), 0) {
		return scale
	}

	acc := zero[T]()
	for _, x := range xs {
		r := x.Div(scale)
		acc = acc.Add(r.Mul(r))
	}
	return acc.Sqrt().Mul(scale)
}

// Horner evaluates the polynomial with coefficients coeffs, highest degree
// first, at x.
func Horner[T Real[T]](coeffs []T, x T) T {
	acc := zero[T]()
	for _, c := range coeffs {
		acc = acc.Mul(x).Add(c)
	}
	return acc
}

// MinMax returns the smallest and largest element of xs by Compare.
func MinMax[T Real[T]](xs []T) (lo, hi T, err error) {
	if len(xs) == 0 {
		return lo, hi, ErrEmpty
	}
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x.Compare(lo) < 0 {
			lo = x
		}
		if x.Compare(hi) > 0 {
			hi = x
		}
	}
	return lo, hi, nil
}
