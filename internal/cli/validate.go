package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsatke/checkedfloat"
	"github.com/tsatke/checkedfloat/internal/ingest"
)

func newValidateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Report every line that does not hold a valid value",
		Long: `validate checks every file and prints one line per rejected input line,
followed by a summary per file. It fails if any line was rejected.
`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.perPolicy(validate[numChecker], validate[finiteChecker], validate[nonNegativeChecker]),
	}
}

func validate[C checkedfloat.Checker[float64]](e *env, paths []string) error {
	rejected := 0
	for _, path := range paths {
		report, err := ingest.ReadFile[float64, C](e.reader, path)
		if err != nil {
			return err
		}
		for _, r := range report.Rejected {
			_, _ = fmt.Fprintf(e.stdout, "%s:%s\n", path, r)
		}
		_, _ = fmt.Fprintf(e.stdout, "%s: %d accepted, %d rejected\n", path, len(report.Values), len(report.Rejected))
		rejected += len(report.Rejected)
	}
	if rejected > 0 {
		return fmt.Errorf("%d lines rejected", rejected)
	}
	return nil
}
