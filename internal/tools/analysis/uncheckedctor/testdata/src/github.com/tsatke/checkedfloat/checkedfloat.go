package checkedfloat

type Checker[F ~float32 | ~float64] interface {
	Check(F) bool
}

type FiniteChecker[F ~float32 | ~float64] struct{}

func (FiniteChecker[F]) Check(f F) bool { return f-f == 0 }

type Value[F ~float32 | ~float64, C Checker[F]] struct {
	raw F
}

func (v Value[F, C]) Raw() F { return v.raw }

// calls inside the package itself are never reported
func (v Value[F, C]) Neg() Value[F, C] { return NewUnchecked[F, C](-v.raw) }

func NewUnchecked[F ~float32 | ~float64, C Checker[F]](raw F) Value[F, C] {
	return Value[F, C]{raw: raw}
}

func TryNew[F ~float32 | ~float64, C Checker[F]](raw F) (Value[F, C], bool) {
	var c C
	if !c.Check(raw) {
		return Value[F, C]{}, false
	}
	return Value[F, C]{raw: raw}, true
}
