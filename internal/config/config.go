// Package config loads elaboration settings from a silica.toml manifest.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the [elaboration] and [report] configuration of a run.
type Config struct {
	Elaboration Elaboration `toml:"elaboration"`
	Report      Report      `toml:"report"`
}

// Elaboration holds the knobs forwarded into sem.Options.
type Elaboration struct {
	// MaxDiagnostics caps the diagnostic sink; 0 keeps the built-in default.
	MaxDiagnostics int `toml:"max_diagnostics"`
	// LintImplicitStatic enables the implicit-static-initializer warning.
	LintImplicitStatic bool `toml:"lint_implicit_static"`
}

// Report selects the symbol dump encoding.
type Report struct {
	// Format is "json" or "msgpack".
	Format string `toml:"format"`
}

// Default returns the configuration used when no manifest exists.
func Default() Config {
	return Config{
		Report: Report{Format: "json"},
	}
}

// Parse decodes a manifest from TOML text. Missing sections keep defaults;
// unknown report formats are rejected here rather than at dump time.
func Parse(text string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(text, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and decodes a manifest file.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Report.Format {
	case "", "json", "msgpack":
		return nil
	}
	return fmt.Errorf("unknown report format %q", c.Report.Format)
}
