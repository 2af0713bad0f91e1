package checkedfloat

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Checker is a validity policy for raw floats of type F. Implementations
// must be stateless zero-size types; they are only ever used through the
// zero value of their type, selected by a type parameter of Value.
//
// Every policy must accept +0. The zero Value holds +0, and it is what
// TryNew returns on failure and what generic code such as realnum starts
// its accumulators from.
type Checker[F constraints.Float] interface {
	// Check reports whether raw is a legal value under the policy.
	Check(raw F) bool
	// Assert panics with an *InvariantError if Check(raw) is false.
	// It does nothing in builds with the checkedfloat_release tag.
	Assert(raw F)
}

// NumChecker accepts every value except NaN.
type NumChecker[F constraints.Float] struct{}

func (NumChecker[F]) Check(raw F) bool {
	return raw == raw
}

func (c NumChecker[F]) Assert(raw F) {
	if assertionsEnabled && !c.Check(raw) {
		panic(violation("unexpected NaN", raw))
	}
}

// FiniteChecker accepts every value except NaN and the two infinities.
type FiniteChecker[F constraints.Float] struct{}

func (FiniteChecker[F]) Check(raw F) bool {
	// Inf-Inf and NaN-NaN are both NaN, so this is a single test.
	return raw-raw == 0
}

func (c FiniteChecker[F]) Assert(raw F) {
	if assertionsEnabled && !c.Check(raw) {
		panic(violation("unexpected NaN or infinity", raw))
	}
}

// NonNegativeChecker accepts zero (of either sign), positive numbers and
// positive infinity.
type NonNegativeChecker[F constraints.Float] struct{}

func (NonNegativeChecker[F]) Check(raw F) bool {
	return raw >= 0
}

func (c NonNegativeChecker[F]) Assert(raw F) {
	if assertionsEnabled && !c.Check(raw) {
		panic(violation("unexpected NaN or negative value", raw))
	}
}

// InvariantError is the panic value of a failed policy assertion.
type InvariantError struct {
	// Message names the violated condition, e.g. "unexpected NaN".
	Message string
	// Raw is the offending value, widened to float64.
	Raw float64
}

func violation[F constraints.Float](msg string, raw F) *InvariantError {
	return &InvariantError{
		Message: msg,
		Raw:     float64(raw),
	}
}

func (e *InvariantError) Error() string {
	return e.Message
}

// IsNaN reports whether the offending value was NaN.
func (e *InvariantError) IsNaN() bool {
	return math.IsNaN(e.Raw)
}

// AssertionsEnabled reports whether policy assertions are compiled in,
// which is the case unless the checkedfloat_release build tag is set.
func AssertionsEnabled() bool {
	return assertionsEnabled
}
