package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsatke/checkedfloat"
	"github.com/tsatke/checkedfloat/realnum"
)

func newStatsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE...",
		Short: "Print summary statistics of the valid values of all files",
		Long: `stats computes count, sum, mean, min, max, variance and Euclidean norm
over the valid values of all files. Every intermediate result is checked
against the policy; a computation leaving the policy fails the command.
Deviations from the mean can be negative, so nonnegative input is
summarized under the num policy.
`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.perPolicy(
			stats[numChecker, numChecker],
			stats[finiteChecker, finiteChecker],
			stats[nonNegativeChecker, numChecker],
		),
	}
}

type summary struct {
	count    int
	sum      float64
	mean     float64
	min, max float64
	variance float64
	norm     float64
}

// stats reads values under the input policy In and computes the summary
// under S.
func stats[In, S checkedfloat.Checker[float64]](e *env, paths []string) error {
	read, err := readAll[In](e, paths)
	if err != nil {
		return err
	}
	values := make([]checkedfloat.Value[float64, S], 0, len(read))
	for _, v := range read {
		sv, err := checkedfloat.Convert[S](v)
		if err != nil {
			return fmt.Errorf("stats: %w", err)
		}
		values = append(values, sv)
	}
	if len(values) == 0 {
		_, _ = fmt.Fprintf(e.stdout, "%-9s%d\n", "count", 0)
		return nil
	}

	var s summary
	if err := guard(func() error {
		s, err = summarize(values)
		return err
	}); err != nil {
		return fmt.Errorf("stats: %w", err)
	}

	for _, row := range []struct {
		name string
		val  any
	}{
		{"count", s.count},
		{"sum", s.sum},
		{"mean", s.mean},
		{"min", s.min},
		{"max", s.max},
		{"variance", s.variance},
		{"norm", s.norm},
	} {
		_, _ = fmt.Fprintf(e.stdout, "%-9s%v\n", row.name, row.val)
	}
	return nil
}

func summarize[T realnum.Real[T]](xs []T) (summary, error) {
	mean, err := realnum.Mean(xs)
	if err != nil {
		return summary{}, err
	}
	variance, err := realnum.Variance(xs)
	if err != nil {
		return summary{}, err
	}
	lo, hi, err := realnum.MinMax(xs)
	if err != nil {
		return summary{}, err
	}
	return summary{
		count:    len(xs),
		sum:      realnum.Sum(xs).Float64(),
		mean:     mean.Float64(),
		min:      lo.Float64(),
		max:      hi.Float64(),
		variance: variance.Float64(),
		norm:     realnum.Norm(xs).Float64(),
	}, nil
}

// guard turns an invariant violation raised inside fn into an error. Other
// panics are propagated.
func guard(fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var ie *checkedfloat.InvariantError
		if rerr, ok := r.(error); ok && errors.As(rerr, &ie) {
			err = ie
			return
		}
		panic(r)
	}()
	return fn()
}
