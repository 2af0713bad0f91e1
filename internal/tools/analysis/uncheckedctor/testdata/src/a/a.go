package a

import "github.com/tsatke/checkedfloat"

type finite = checkedfloat.FiniteChecker[float64]

type R64 = checkedfloat.Value[float64, finite]

func unmarked(x float64) R64 {
	return checkedfloat.NewUnchecked[float64, finite](x) // want `call to checkedfloat.NewUnchecked without //checkedfloat:trusted marker`
}

func sameLine(v R64) R64 {
	return checkedfloat.NewUnchecked[float64, finite](-v.Raw()) //checkedfloat:trusted negation keeps finiteness
}

func lineAbove(v R64) R64 {
	//checkedfloat:trusted
	return checkedfloat.NewUnchecked[float64, finite](v.Raw() / 2)
}

func tooFarAbove(v R64) R64 {
	//checkedfloat:trusted

	return checkedfloat.NewUnchecked[float64, finite](v.Raw() * 2) // want `call to checkedfloat.NewUnchecked`
}

func nested(xs []float64) []R64 {
	out := make([]R64, 0, len(xs))
	for _, x := range xs {
		out = append(out, checkedfloat.NewUnchecked[float64, finite](x)) // want `call to checkedfloat.NewUnchecked`
	}
	return out
}

func safe(x float64) (R64, bool) {
	return checkedfloat.TryNew[float64, finite](x)
}

// a function value is not a call
var ctor = checkedfloat.NewUnchecked[float64, finite]

func NewUnchecked(x float64) float64 { return x }

func local(x float64) float64 {
	return NewUnchecked(x)
}
