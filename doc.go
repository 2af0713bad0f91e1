// Package checkedfloat provides floats that are checked against a validity
// policy whenever they are created or changed.
//
// A Value[F, C] wraps a single float32 or float64 and guarantees that the
// policy C holds for it. The standard policies are NumChecker, which
// excludes NaN, and FiniteChecker, which excludes NaN and both infinities.
// Since a valid Value is never NaN, Equal and Compare form a reflexive
// equality and a total order, and Hash is consistent with Equal across
// +0 and -0.
//
//	a := checkedfloat.NewR64(1)
//	b := a.DivRaw(3)                      // fine
//	c := a.DivRaw(0)                      // panics: unexpected NaN or infinity
//	d := checkedfloat.NewN64(1).DivRaw(0) // +Inf, valid under NumChecker
//
// Arithmetic is offered as methods (Add, SubRaw, MulAssign, Sqrt, ...) and
// each method re-validates its result with New, so a policy violation
// panics at the operation that introduced it.
//
// There are three ways to construct a Value: New panics on invalid input,
// TryNew and FromRaw report it, and NewUnchecked skips the check for
// callers that have already established validity.
//
// Panics raised by policy assertions carry an *InvariantError. Building with
// the checkedfloat_release tag compiles the assertions out; TryNew, FromRaw
// and Parse keep checking in every build.
package checkedfloat
