// Package cli implements the checkfloat command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/tsatke/checkedfloat"
	"github.com/tsatke/checkedfloat/internal/ingest"
)

// AppName is the name of the root command, as displayed in the help text.
const AppName = "checkfloat"

// env is the state shared by all subcommands of one invocation. It is
// filled in by the root command's PersistentPreRunE.
type env struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer

	cfg    Config
	logger *slog.Logger
	reader *ingest.Reader
}

type handler func(e *env, args []string) error

// NewRootCommand builds the command tree. All file access goes through fs,
// so tests can run it on an in-memory file system.
func NewRootCommand(fs afero.Fs, stdout, stderr io.Writer) *cobra.Command {
	e := &env{
		fs:     fs,
		stdout: stdout,
		stderr: stderr,
		cfg:    defaultConfig(),
	}

	var configPath string
	root := &cobra.Command{
		Use:   AppName + " SUBCOMMAND",
		Short: "Validate, sort and summarize floating-point data under a validity policy",
		Long: `checkfloat reads files holding one float per line and checks every value
against a validity policy:

  num          rejects NaN
  finite       rejects NaN and infinities
  nonnegative  rejects NaN and negative values

Blank lines and lines starting with the comment prefix are ignored.
`,
		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
		SilenceUsage:      true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.init(cmd, configPath)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&e.cfg.Policy, "policy", e.cfg.Policy, "validity policy: num, finite or nonnegative")
	flags.StringVar(&e.cfg.LogLevel, "log-level", e.cfg.LogLevel, "log level: debug, info, warn or error")

	root.AddCommand(
		newValidateCmd(e),
		newSortCmd(e),
		newStatsCmd(e),
	)
	return root
}

// init applies the config file under the flags that were set explicitly,
// then builds the logger and the reader.
func (e *env) init(cmd *cobra.Command, configPath string) error {
	if configPath != "" {
		fromFile := defaultConfig()
		if err := loadConfig(e.fs, configPath, &fromFile); err != nil {
			return err
		}
		flags := cmd.Flags()
		if !flags.Changed("policy") {
			e.cfg.Policy = fromFile.Policy
		}
		if !flags.Changed("log-level") {
			e.cfg.LogLevel = fromFile.LogLevel
		}
		e.cfg.Comment = fromFile.Comment
	}
	if err := e.cfg.validate(); err != nil {
		return err
	}

	lvl, _ := e.cfg.level()
	e.logger = slog.New(slog.NewTextHandler(e.stderr, &slog.HandlerOptions{Level: lvl}))
	e.reader = ingest.New(
		ingest.WithFs(e.fs),
		ingest.WithLogger(e.logger),
		ingest.WithComment(e.cfg.Comment),
	)
	e.logger.Debug("configured", "policy", e.cfg.Policy, "config", configPath)
	return nil
}

type (
	numChecker         = checkedfloat.NumChecker[float64]
	finiteChecker      = checkedfloat.FiniteChecker[float64]
	nonNegativeChecker = checkedfloat.NonNegativeChecker[float64]
)

// perPolicy selects the instantiation of a generic handler that matches the
// configured policy.
func (e *env) perPolicy(num, finite, nonNegative handler) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		switch e.cfg.Policy {
		case PolicyNum:
			return num(e, args)
		case PolicyFinite:
			return finite(e, args)
		case PolicyNonNegative:
			return nonNegative(e, args)
		}
		return fmt.Errorf("unknown policy %q", e.cfg.Policy)
	}
}
