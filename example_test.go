package checkedfloat_test

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tsatke/checkedfloat"
)

func ExampleNew() {
	v := checkedfloat.NewR64(1.5)
	w := v.Mul(checkedfloat.NewR64(2)).AddRaw(0.5)
	fmt.Println(w, w.Greater(v))
	// Output: 3.5 true
}

func ExampleTryNew() {
	for _, x := range []float64{1, inf, nan} {
		_, ok := checkedfloat.TryNew[float64, checkedfloat.FiniteChecker[float64]](x)
		fmt.Println(x, ok)
	}
	// Output:
	// 1 true
	// +Inf false
	// NaN false
}

func ExampleParse() {
	_, err := checkedfloat.Parse[float64, checkedfloat.NonNegativeChecker[float64]]("-0.5")
	fmt.Println(err)
	fmt.Println(errors.Is(err, checkedfloat.ErrIllegalValue))
	// Output:
	// parse "-0.5": illegal value: -0.5
	// true
}

func ExampleValue_AddAssign() {
	total := checkedfloat.NewN64(0)
	for _, x := range []float64{1, 2, 3} {
		total.AddAssignRaw(x)
	}
	total.MulAssign(checkedfloat.NewN64(0.5))
	fmt.Println(total)
	// Output: 3
}

func ExampleValue_MarshalJSON() {
	data, _ := json.Marshal(map[string]checkedfloat.N64{
		"limit": checkedfloat.NewN64(inf),
		"value": checkedfloat.NewN64(0.25),
	})
	fmt.Println(string(data))
	// Output: {"limit":"+Inf","value":0.25}
}
