// Package config loads the harness configuration for standalone
// conformance runs.
package config

import (
	"github.com/gobwas/glob"
)

// Config is the top-level harness configuration.
type Config struct {
	// FixturesRoot is the directory holding the
	// <category>/<valid|invalid> fixture tree.
	FixturesRoot string `yaml:"fixtures-root"`

	// Categories limits the run to a subset of the preset's
	// categories. Empty means all of them.
	Categories []string `yaml:"categories"`

	// Patterns filter fixture file names. Empty means the store's
	// defaults (*.ts, *.tsx).
	Patterns []string `yaml:"patterns"`

	// Ignore lists glob patterns for fixture paths excluded from the
	// run.
	Ignore []string `yaml:"ignore"`

	// Engine configures the external lint engine invocation.
	Engine EngineConfig `yaml:"engine"`

	// TSConfigPath and Ignores are handed to the preset factory when
	// the run materializes its own engine config (Engine.Config empty).
	TSConfigPath string   `yaml:"tsconfig"`
	Ignores      []string `yaml:"preset-ignores"`
}

// EngineConfig locates the external engine.
type EngineConfig struct {
	// Bin is the engine executable. Defaults to "eslint".
	Bin string `yaml:"bin"`

	// Config is the config file passed to the engine, if any.
	Config string `yaml:"config"`

	// Dir is the working directory for engine invocations.
	Dir string `yaml:"dir"`
}

// IsIgnored returns true if path matches any of the configured ignore
// patterns. Invalid patterns are skipped.
func (c *Config) IsIgnored(path string) bool {
	for _, pattern := range c.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		if g.Match(path) {
			return true
		}
	}
	return false
}
