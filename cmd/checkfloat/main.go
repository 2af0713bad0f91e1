package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/tsatke/checkedfloat/internal/cli"
)

// Version can be set with the Go linker.
var Version = "master"

func main() {
	rootCmd := cli.NewRootCommand(afero.NewOsFs(), os.Stdout, os.Stderr)
	rootCmd.Version = Version
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s: %s\n", cli.AppName, err)
		os.Exit(1)
	}
}
