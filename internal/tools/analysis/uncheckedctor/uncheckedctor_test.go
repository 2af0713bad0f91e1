package uncheckedctor_test

import (
	"path/filepath"
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/tsatke/checkedfloat/internal/tools/analysis/uncheckedctor"
)

func TestAnalyzer(t *testing.T) {
	dir, err := filepath.Abs("./testdata")
	if err != nil {
		t.Error(err)
	}
	analysistest.Run(t, dir, uncheckedctor.Analyzer, "a", "github.com/tsatke/checkedfloat")
}
