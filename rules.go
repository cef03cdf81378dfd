package eslintconfig

// Categories is the closed set of rule domains covered by the preset.
// Each category owns one config layer and one fixture directory.
func Categories() []string {
	return []string{
		"base",
		"typescript",
		"react",
		"react-hooks",
		"jsx-a11y",
	}
}

func baseRules() map[string]any {
	return map[string]any{
		"eqeqeq":         []any{"error", "smart"},
		"no-console":     []any{"warn", map[string]any{"allow": []any{"warn", "error"}}},
		"no-var":         "error",
		"prefer-const":   "error",
		"no-else-return": "warn",
		"import/order": []any{"warn", map[string]any{
			"newlines-between": "always",
			"alphabetize":      map[string]any{"order": "asc"},
		}},
		"import/no-duplicates": "error",
	}
}

// typescriptRules are type-aware and depend on parserOptions.project
// pointing at a resolvable tsconfig.
func typescriptRules() map[string]any {
	return map[string]any{
		"@typescript-eslint/no-floating-promises":        "error",
		"@typescript-eslint/no-misused-promises":         "error",
		"@typescript-eslint/switch-exhaustiveness-check": "error",
		"@typescript-eslint/no-unnecessary-condition":    "warn",
		"@typescript-eslint/no-explicit-any":             "warn",
		"@typescript-eslint/consistent-type-imports":     "warn",
		"@typescript-eslint/no-unused-vars": []any{"warn", map[string]any{
			"argsIgnorePattern": "^_",
			"varsIgnorePattern": "^_",
		}},
	}
}

func reactRules() map[string]any {
	return map[string]any{
		"react/jsx-no-leaked-render": []any{"error", map[string]any{
			"validStrategies": []any{"ternary", "coerce"},
		}},
		"react/jsx-key":            "error",
		"react/no-array-index-key": "warn",
		"react/self-closing-comp":  "warn",
		"react/jsx-handler-names": []any{"warn", map[string]any{
			"eventHandlerPrefix":     "handle",
			"eventHandlerPropPrefix": "on",
		}},
		"react/jsx-boolean-value": []any{"warn", "never"},
	}
}

func reactHooksRules() map[string]any {
	return map[string]any{
		"react-hooks/rules-of-hooks":  "error",
		"react-hooks/exhaustive-deps": "warn",
	}
}

func jsxA11yRules() map[string]any {
	return map[string]any{
		"jsx-a11y/alt-text":                     "error",
		"jsx-a11y/anchor-is-valid":              "error",
		"jsx-a11y/aria-role":                    "error",
		"jsx-a11y/no-autofocus":                 "warn",
		"jsx-a11y/click-events-have-key-events": "warn",
	}
}
