package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	PolicyNum         = "num"
	PolicyFinite      = "finite"
	PolicyNonNegative = "nonnegative"
)

// Config is the file form of the persistent flags. Flags given on the
// command line take precedence over the file.
type Config struct {
	Policy   string `yaml:"policy"`
	LogLevel string `yaml:"log-level"`
	// Comment is the comment prefix for input files.
	Comment string `yaml:"comment"`
}

func defaultConfig() Config {
	return Config{
		Policy:   PolicyFinite,
		LogLevel: "warn",
		Comment:  "#",
	}
}

// loadConfig decodes the YAML file at path over cfg. Unknown keys are an
// error.
func loadConfig(fs afero.Fs, path string, cfg *Config) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

func (c Config) validate() error {
	switch c.Policy {
	case PolicyNum, PolicyFinite, PolicyNonNegative:
	default:
		return fmt.Errorf("unknown policy %q, want one of %s, %s, %s", c.Policy, PolicyNum, PolicyFinite, PolicyNonNegative)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

func (c Config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
