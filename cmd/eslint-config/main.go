// Command eslint-config emits the shareable preset and runs the
// fixture conformance suite outside of go test.
package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	flag "github.com/spf13/pflag"

	eslintconfig "github.com/mazarelo/eslint-config"
	"github.com/mazarelo/eslint-config/internal/config"
	"github.com/mazarelo/eslint-config/internal/conformance"
	"github.com/mazarelo/eslint-config/internal/engine"
	"github.com/mazarelo/eslint-config/internal/fixture"
	"github.com/mazarelo/eslint-config/internal/log"
	"github.com/mazarelo/eslint-config/internal/output"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: eslint-config <command> [flags]

Commands:
  emit      Print the generated flat-config layers as JSON
  check     Run the conformance suite against the fixture tree
  docs      List category docs, or show one by id or name
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'eslint-config <command> --help' for more information on a command.
`

func run() int {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	first := os.Args[1]

	switch first {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch first {
	case "emit":
		return runEmit(os.Args[2:])
	case "check":
		return runCheck(os.Args[2:])
	case "docs":
		return runDocs(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "eslint-config: unknown command %q\n\n%s", first, usageText)
		return 2
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("eslint-config %s\n", version)
}

// runEmit implements the "emit" subcommand: serialize the preset.
func runEmit(args []string) int {
	fs := flag.NewFlagSet("emit", flag.ContinueOnError)
	var (
		tsconfig string
		ignores  []string
		outPath  string
	)
	fs.StringVar(&tsconfig, "tsconfig", "", "path to the type-checking project file")
	fs.StringArrayVar(&ignores, "ignore", nil, "additional ignore pattern (repeatable)")
	fs.StringVarP(&outPath, "out", "o", "", "write to file instead of stdout")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "eslint-config emit: %v\n", err)
		return 2
	}

	opts := eslintconfig.Options{
		TSConfigPath: tsconfig,
		Ignores:      ignores,
	}

	w := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "eslint-config emit: %v\n", err)
			return 1
		}
		defer f.Close()
		w = f
	}

	if err := eslintconfig.WriteJSON(w, opts); err != nil {
		fmt.Fprintf(os.Stderr, "eslint-config emit: %v\n", err)
		return 1
	}
	return 0
}

// runCheck implements the "check" subcommand: lint every fixture and
// apply the valid/invalid assertions, printing one line per file.
func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	var (
		configPath string
		format     string
		noColor    bool
		verbose    bool
	)
	fs.StringVarP(&configPath, "config", "c", "", "path to .conformance.yml")
	fs.StringVar(&format, "format", "text", "failure output format: text or json")
	fs.BoolVar(&noColor, "no-color", false, "disable colored output")
	fs.BoolVarP(&verbose, "verbose", "v", false, "log each engine invocation")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "eslint-config check: %v\n", err)
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "eslint-config check: %v\n", err)
		return 1
	}

	var formatter output.Formatter
	switch format {
	case "text":
		formatter = &output.TextFormatter{Color: !noColor}
	case "json":
		formatter = &output.JSONFormatter{}
	default:
		fmt.Fprintf(os.Stderr, "eslint-config check: unknown format %q\n", format)
		return 2
	}

	logger := &log.Logger{Enabled: verbose, W: os.Stderr}

	categories := cfg.Categories
	if len(categories) == 0 {
		categories = eslintconfig.Categories()
	}

	engineConfig := cfg.Engine.Config
	if engineConfig == "" {
		path, cleanup, err := materializePreset(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "eslint-config check: %v\n", err)
			return 1
		}
		defer cleanup()
		engineConfig = path
	}

	store := &fixture.DirStore{Root: cfg.FixturesRoot, Patterns: cfg.Patterns}
	eng := engine.NewESLint(cfg.Engine.Bin, engineConfig, cfg.Engine.Dir)

	failed := checkAll(cfg, categories, store, eng, formatter, logger)
	if failed {
		return 1
	}
	return 0
}

// materializePreset writes the generated preset to a temporary file
// so a check run without a checked-in engine config still lints
// against exactly the layers this module produces. The config's
// tsconfig path and extra ignore patterns are applied here.
func materializePreset(cfg *config.Config) (string, func(), error) {
	f, err := os.CreateTemp("", "eslint-config-*.json")
	if err != nil {
		return "", nil, fmt.Errorf("creating preset file: %w", err)
	}

	opts := eslintconfig.Options{
		TSConfigPath: cfg.TSConfigPath,
		Ignores:      cfg.Ignores,
	}
	if err := eslintconfig.WriteJSON(f, opts); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", nil, fmt.Errorf("writing preset file: %w", err)
	}

	return f.Name(), func() { os.Remove(f.Name()) }, nil
}

// loadConfig resolves the harness config: an explicit path, a
// discovered .conformance.yml, or defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	found, err := config.Discover(".")
	if err != nil {
		return nil, err
	}
	if found == "" {
		return config.Defaults(), nil
	}
	return config.Load(found)
}

// checkAll walks every (category, validity) group and prints one
// pass/fail line per fixture. Returns true if anything failed.
func checkAll(
	cfg *config.Config, categories []string,
	store fixture.Store, eng engine.Engine,
	formatter output.Formatter, logger *log.Logger,
) bool {
	failed := false

	for _, category := range categories {
		for _, validity := range []fixture.Validity{fixture.Valid, fixture.Invalid} {
			names, err := store.List(category, validity)
			if err != nil {
				fmt.Fprintf(os.Stderr, "listing %s/%s: %v\n", category, validity, err)
				failed = true
				continue
			}
			if len(names) == 0 {
				fmt.Printf("skip %s/%s: no fixtures\n", category, validity)
				continue
			}

			for _, name := range names {
				path := store.Path(category, validity, name)
				if cfg.IsIgnored(path) {
					logger.Ignore(path)
					continue
				}
				logger.Lint(path)

				var report conformance.FileReport
				if validity == fixture.Valid {
					report = conformance.CheckValid(eng, store, category, name)
				} else {
					report = conformance.CheckInvalid(eng, store, category, name)
				}

				if !printReport(report, formatter) {
					failed = true
				}
			}
		}
	}

	return failed
}

// runDocs implements the "docs" subcommand: list category docs or
// show one in full.
func runDocs(args []string) int {
	fs := flag.NewFlagSet("docs", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "eslint-config docs: %v\n", err)
		return 2
	}

	if fs.NArg() == 0 {
		docs, err := eslintconfig.ListCategoryDocs()
		if err != nil {
			fmt.Fprintf(os.Stderr, "eslint-config docs: %v\n", err)
			return 1
		}
		for _, d := range docs {
			fmt.Printf("%-12s %s\n", d.ID, d.Description)
		}
		return 0
	}

	content, err := eslintconfig.LookupCategoryDoc(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "eslint-config docs: %v\n", err)
		return 1
	}
	fmt.Print(content)
	return 0
}

// printReport prints the pass/fail line for one fixture and dumps
// failure detail. Returns true when the fixture passed.
func printReport(report conformance.FileReport, formatter output.Formatter) bool {
	if report.Err != nil {
		fmt.Printf("ERROR %s: %v\n", report.Path, report.Err)
		return false
	}
	if len(report.Failures) == 0 {
		fmt.Printf("ok   %s\n", report.Path)
		return true
	}

	fmt.Printf("FAIL %s\n", report.Path)
	for _, msg := range report.Failures {
		fmt.Printf("  %s\n", strings.ReplaceAll(msg, "\n", "\n  "))
	}
	if len(report.Diagnostics) > 0 {
		_ = formatter.Format(os.Stdout, report.Diagnostics)
	}
	return false
}
