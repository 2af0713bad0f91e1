package checkedfloat_test

import (
	"math"
	"testing"

	"github.com/tsatke/checkedfloat"
)

var (
	inf     = math.Inf(1)
	negInf  = math.Inf(-1)
	nan     = math.NaN()
	negZero = math.Copysign(0, -1)
)

// requireAssertions skips tests that rely on policy assertions panicking.
func requireAssertions(t *testing.T) {
	t.Helper()
	if !checkedfloat.AssertionsEnabled() {
		t.Skip("assertions are compiled out")
	}
}
