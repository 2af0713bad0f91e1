package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/tsatke/checkedfloat"
	"github.com/tsatke/checkedfloat/internal/ingest"
)

type sortOptions struct {
	reverse bool
	unique  bool
}

func newSortCmd(e *env) *cobra.Command {
	var opts sortOptions
	cmd := &cobra.Command{
		Use:   "sort FILE...",
		Short: "Print the valid values of all files in ascending order",
		Long: `sort merges the valid values of all files and prints them sorted, one per
line. Rejected lines are logged and skipped.
`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.perPolicy(
			sortValues[numChecker](&opts),
			sortValues[finiteChecker](&opts),
			sortValues[nonNegativeChecker](&opts),
		),
	}
	cmd.Flags().BoolVarP(&opts.reverse, "reverse", "r", false, "sort in descending order")
	cmd.Flags().BoolVarP(&opts.unique, "unique", "u", false, "print equal values once")
	return cmd
}

func sortValues[C checkedfloat.Checker[float64]](opts *sortOptions) handler {
	return func(e *env, paths []string) error {
		values, err := readAll[C](e, paths)
		if err != nil {
			return err
		}

		slices.SortFunc(values, checkedfloat.Compare[checkedfloat.Value[float64, C]])
		if opts.unique {
			values = slices.CompactFunc(values, checkedfloat.Value[float64, C].Equal)
		}
		if opts.reverse {
			slices.Reverse(values)
		}

		for _, v := range values {
			_, _ = fmt.Fprintln(e.stdout, v)
		}
		return nil
	}
}

// readAll concatenates the valid values of all paths.
func readAll[C checkedfloat.Checker[float64]](e *env, paths []string) ([]checkedfloat.Value[float64, C], error) {
	var values []checkedfloat.Value[float64, C]
	for _, path := range paths {
		report, err := ingest.ReadFile[float64, C](e.reader, path)
		if err != nil {
			return nil, err
		}
		values = append(values, report.Values...)
	}
	return values, nil
}
