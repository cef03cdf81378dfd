// Package eslintconfig builds a shareable flat-config preset for
// TypeScript + React projects. New returns an ordered list of config
// layers; later layers override earlier ones for matching files. The
// layers are pure data, meant to be serialized and handed to the
// external lint engine.
package eslintconfig

import (
	"encoding/json"
	"fmt"
	"io"
)

// DefaultTSConfigPath is used when Options.TSConfigPath is empty.
const DefaultTSConfigPath = "./tsconfig.json"

// defaultIgnores are excluded from analysis in every project.
var defaultIgnores = []string{
	"**/node_modules/**",
	"**/dist/**",
	"**/build/**",
	"**/coverage/**",
}

// Options are the recognized overrides accepted by New.
type Options struct {
	// TSConfigPath is the type-checking project file handed to the
	// TypeScript parser. Defaults to DefaultTSConfigPath.
	TSConfigPath string

	// Ignores are additional glob patterns excluded from analysis,
	// appended after the built-in ignore list.
	Ignores []string
}

// Layer is a single flat-config entry. Field order matters only for
// readability of the serialized output; layer order in the slice is
// what the engine applies.
type Layer struct {
	Name            string           `json:"name"`
	Ignores         []string         `json:"ignores,omitempty"`
	Files           []string         `json:"files,omitempty"`
	LanguageOptions *LanguageOptions `json:"languageOptions,omitempty"`
	Plugins         []string         `json:"plugins,omitempty"`
	Rules           map[string]any   `json:"rules,omitempty"`
	Settings        map[string]any   `json:"settings,omitempty"`
}

// LanguageOptions configures the parser for a layer.
type LanguageOptions struct {
	Parser        string         `json:"parser,omitempty"`
	ParserOptions map[string]any `json:"parserOptions,omitempty"`
}

// New builds the preset layers for the given options. The result is
// ordered: global ignores first, then one layer per category in
// Categories() order.
func New(opts Options) []Layer {
	tsconfig := opts.TSConfigPath
	if tsconfig == "" {
		tsconfig = DefaultTSConfigPath
	}

	ignores := make([]string, 0, len(defaultIgnores)+len(opts.Ignores))
	ignores = append(ignores, defaultIgnores...)
	ignores = append(ignores, opts.Ignores...)

	return []Layer{
		{
			Name:    "preset/ignores",
			Ignores: ignores,
		},
		{
			Name:    "preset/base",
			Files:   []string{"**/*.{js,jsx,ts,tsx}"},
			Plugins: []string{"import"},
			Rules:   baseRules(),
		},
		{
			Name:  "preset/typescript",
			Files: []string{"**/*.{ts,tsx}"},
			LanguageOptions: &LanguageOptions{
				Parser: "@typescript-eslint/parser",
				ParserOptions: map[string]any{
					"project": tsconfig,
				},
			},
			Plugins: []string{"@typescript-eslint"},
			Rules:   typescriptRules(),
		},
		{
			Name:    "preset/react",
			Files:   []string{"**/*.{jsx,tsx}"},
			Plugins: []string{"react"},
			Rules:   reactRules(),
			Settings: map[string]any{
				"react": map[string]any{"version": "detect"},
			},
		},
		{
			Name:    "preset/react-hooks",
			Files:   []string{"**/*.{jsx,tsx}"},
			Plugins: []string{"react-hooks"},
			Rules:   reactHooksRules(),
		},
		{
			Name:    "preset/jsx-a11y",
			Files:   []string{"**/*.{jsx,tsx}"},
			Plugins: []string{"jsx-a11y"},
			Rules:   jsxA11yRules(),
		},
	}
}

// WriteJSON serializes the preset layers for opts to w as indented JSON.
func WriteJSON(w io.Writer, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(New(opts)); err != nil {
		return fmt.Errorf("encoding preset: %w", err)
	}
	return nil
}
