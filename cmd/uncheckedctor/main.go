// Command uncheckedctor reports calls to checkedfloat.NewUnchecked that are
// not marked as trusted.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/tsatke/checkedfloat/internal/tools/analysis/uncheckedctor"
)

func main() {
	singlechecker.Main(uncheckedctor.Analyzer)
}
