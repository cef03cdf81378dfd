package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".conformance.yml"

// Defaults returns the configuration used when no config file exists.
func Defaults() *Config {
	return &Config{
		FixturesRoot: "fixtures",
		Engine: EngineConfig{
			Bin: "eslint",
		},
	}
}

// Load reads and parses a config file at the given path, applied on
// top of Defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.FixturesRoot == "" {
		cfg.FixturesRoot = "fixtures"
	}
	if cfg.Engine.Bin == "" {
		cfg.Engine.Bin = "eslint"
	}

	return cfg, nil
}

// Discover walks up the directory tree from startDir looking for a
// .conformance.yml file. It stops at a directory containing .git (the
// repository root) or at the filesystem root. Returns the path to the
// config file, or "" if none was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		// A .git directory marks the repository root; do not search
		// above it.
		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
