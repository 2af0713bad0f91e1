package checkedfloat

import (
	"errors"
	"fmt"
)

// ErrIllegalValue is returned by the fallible constructors and conversions
// when a raw value does not satisfy the target policy.
var ErrIllegalValue = errors.New("illegal value")

func illegal[F ~float32 | ~float64](raw F) error {
	return fmt.Errorf("%w: %v", ErrIllegalValue, raw)
}
