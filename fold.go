package checkedfloat

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Sum adds vs in order on the raw values and checks only the total. A
// partial sum that violates C is only reported if the total does too.
func Sum[F constraints.Float, C Checker[F]](vs ...Value[F, C]) Value[F, C] {
	var acc F
	for _, v := range vs {
		acc += v.raw
	}
	return New[F, C](acc)
}

// SumSeq is Sum over an iterator.
func SumSeq[F constraints.Float, C Checker[F]](seq iter.Seq[Value[F, C]]) Value[F, C] {
	var acc F
	for v := range seq {
		acc += v.raw
	}
	return New[F, C](acc)
}

// Product multiplies vs in order and checks only the result. The product of
// no values is 1.
func Product[F constraints.Float, C Checker[F]](vs ...Value[F, C]) Value[F, C] {
	acc := F(1)
	for _, v := range vs {
		acc *= v.raw
	}
	return New[F, C](acc)
}

// ProductSeq is Product over an iterator.
func ProductSeq[F constraints.Float, C Checker[F]](seq iter.Seq[Value[F, C]]) Value[F, C] {
	acc := F(1)
	for v := range seq {
		acc *= v.raw
	}
	return New[F, C](acc)
}
