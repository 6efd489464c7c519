// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"pii-scan/internal/config"
	"pii-scan/internal/core"
	"pii-scan/internal/formatters"
	jsonformatter "pii-scan/internal/formatters/json"
	textformatter "pii-scan/internal/formatters/text"
	"pii-scan/internal/observability"
	"pii-scan/internal/preprocessors"
	"pii-scan/internal/version"
)

// cliFlags holds command line flag values
type cliFlags struct {
	configFile     string
	profile        string
	format         string
	recognizers    string
	strategy       string
	verbose        bool
	debug          bool
	noColor        bool
	hideMatch      bool
	failFast       bool
	recursive      bool
	failOnFindings bool
	showVersion    bool
	minScore       float64
}

func main() {
	os.Exit(run())
}

func run() int {
	flags := parseFlags()

	if flags.showVersion {
		fmt.Println(version.Info())
		return 0
	}

	cfg := loadConfiguration(flags.configFile)
	applyProfile(cfg, flags.profile)
	applyFlags(cfg, flags)

	if err := config.ValidateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	observer := buildObserver(cfg)

	pipeline, err := core.BuildPipeline(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	pipeline.SetObserver(observer)

	registry := formatters.NewRegistry()
	registry.Register(textformatter.NewFormatter())
	registry.Register(jsonformatter.NewFormatter())
	formatter, ok := registry.Get(cfg.Defaults.Format)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (available: %s)\n",
			cfg.Defaults.Format, strings.Join(registry.List(), ", "))
		return 2
	}

	results, scanErrors := scanInputs(pipeline, flag.Args(), flags.recursive)
	if flags.minScore > 0 {
		results = filterByScore(results, flags.minScore)
	}

	output, err := formatter.Format(results, formatters.Options{
		Verbose:   cfg.Defaults.Verbose,
		NoColor:   cfg.Defaults.NoColor,
		HideMatch: flags.hideMatch,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	fmt.Println(output)

	for _, scanErr := range scanErrors {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", scanErr)
	}
	if len(scanErrors) > 0 && cfg.Defaults.FailFast {
		return 2
	}
	if flags.failOnFindings && countFindings(results) > 0 {
		return 1
	}
	return 0
}

func parseFlags() cliFlags {
	var flags cliFlags
	flag.StringVar(&flags.configFile, "config", "", "Path to configuration file")
	flag.StringVar(&flags.profile, "profile", "", "Configuration profile to apply")
	flag.StringVar(&flags.format, "format", "", "Output format: text, json")
	flag.StringVar(&flags.recognizers, "recognizers", "", "Comma-separated recognizers to run (default: all)")
	flag.StringVar(&flags.strategy, "strategy", "", "Overlap strategy: ensure_disjointness, merge, keep_all")
	flag.BoolVar(&flags.verbose, "verbose", false, "Show finding provenance and scores")
	flag.BoolVar(&flags.debug, "debug", false, "Enable debug output")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&flags.hideMatch, "hide-match", false, "Do not print the matched text")
	flag.BoolVar(&flags.failFast, "fail-fast", false, "Abort when a recognizer is unavailable")
	flag.BoolVar(&flags.recursive, "recursive", false, "Scan directories recursively")
	flag.BoolVar(&flags.failOnFindings, "fail-on-findings", false, "Exit with code 1 when PII is found")
	flag.BoolVar(&flags.showVersion, "version", false, "Print version and exit")
	flag.Float64Var(&flags.minScore, "min-score", 0, "Drop scored findings below this confidence (0..1)")
	flag.Usage = printUsage
	flag.Parse()
	return flags
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: pii-scan [options] [file|directory ...]\n\n")
	fmt.Fprintf(os.Stderr, "Scans text, PDF and image files for personal data. With no paths,\n")
	fmt.Fprintf(os.Stderr, "text is read from stdin.\n\nOptions:\n")
	flag.PrintDefaults()
}

// loadConfiguration loads the configuration file or returns default config
func loadConfiguration(configFile string) *config.Config {
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = config.LoadConfig("")
	}
	return cfg
}

func applyProfile(cfg *config.Config, name string) {
	if name == "" {
		return
	}
	profile, ok := cfg.GetProfile(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Warning: unknown profile %q (available: %s)\n",
			name, strings.Join(cfg.ListProfiles(), ", "))
		return
	}
	if profile.Format != "" {
		cfg.Defaults.Format = profile.Format
	}
	if profile.Recognizers != "" {
		cfg.Defaults.Recognizers = profile.Recognizers
	}
	if profile.Strategy != "" {
		cfg.Defaults.Strategy = profile.Strategy
	}
	cfg.Defaults.FailFast = profile.FailFast
	cfg.Defaults.Verbose = profile.Verbose
	cfg.Defaults.Debug = profile.Debug
	cfg.Defaults.NoColor = profile.NoColor
}

// applyFlags lets command line flags override file and profile settings.
func applyFlags(cfg *config.Config, flags cliFlags) {
	if flags.format != "" {
		cfg.Defaults.Format = flags.format
	}
	if flags.recognizers != "" {
		cfg.Defaults.Recognizers = flags.recognizers
	}
	if flags.strategy != "" {
		cfg.Defaults.Strategy = flags.strategy
	}
	if flags.verbose {
		cfg.Defaults.Verbose = true
	}
	if flags.debug {
		cfg.Defaults.Debug = true
	}
	if flags.failFast {
		cfg.Defaults.FailFast = true
	}
	if flags.noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		cfg.Defaults.NoColor = true
	}
}

func buildObserver(cfg *config.Config) *observability.StandardObserver {
	level := observability.ObservabilityOff
	if cfg.Defaults.Verbose {
		level = observability.ObservabilityMetrics
	}
	if cfg.Defaults.Debug {
		level = observability.ObservabilityDebug
	}
	observer := observability.NewStandardObserver(level, os.Stderr)
	if cfg.Defaults.Debug {
		observer.DebugObserver = observability.NewDebugObserver(os.Stderr)
	}
	return observer
}

// scanInputs scans each named path, or stdin when none are given. Scan
// failures do not stop the remaining inputs; they are reported together.
func scanInputs(pipeline *core.Pipeline, paths []string, recursive bool) ([]formatters.FileResult, []error) {
	ctx := context.Background()

	if len(paths) == 0 {
		return scanStdin(ctx, pipeline)
	}

	explicit := make(map[string]bool, len(paths))
	for _, path := range paths {
		explicit[path] = true
	}

	var results []formatters.FileResult
	var scanErrors []error
	for _, path := range expandPaths(paths, recursive, &scanErrors) {
		if len(preprocessors.ForFile(path)) == 0 {
			// inside a directory walk, unsupported files are simply skipped
			if explicit[path] {
				scanErrors = append(scanErrors, fmt.Errorf("%s: unsupported file type", path))
			}
			continue
		}
		result, err := scanFile(ctx, pipeline, path)
		if err != nil {
			scanErrors = append(scanErrors, err)
			continue
		}
		results = append(results, result)
	}
	return results, scanErrors
}

func scanStdin(ctx context.Context, pipeline *core.Pipeline) ([]formatters.FileResult, []error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, []error{fmt.Errorf("reading stdin: %w", err)}
	}

	findings, err := pipeline.FindPiis(ctx, string(data))
	if err != nil {
		return nil, []error{err}
	}
	return []formatters.FileResult{{Path: "-", Findings: findings}}, nil
}

func scanFile(ctx context.Context, pipeline *core.Pipeline, path string) (formatters.FileResult, error) {
	procs := preprocessors.ForFile(path)
	result := formatters.FileResult{Path: path}
	processed := false
	for _, proc := range procs {
		doc, err := proc.Process(path)
		if err != nil {
			// a PDF without metadata or an image without EXIF is not fatal
			// as long as one preprocessor succeeds
			continue
		}
		processed = true

		findings, err := pipeline.FindPiis(ctx, doc.ScannableText())
		if err != nil {
			return formatters.FileResult{}, fmt.Errorf("%s: %w", path, err)
		}
		result.Findings = append(result.Findings, findings...)
	}
	if !processed {
		return formatters.FileResult{}, fmt.Errorf("%s: no preprocessor could extract text", path)
	}
	return result, nil
}

// expandPaths resolves directories to the files they contain.
func expandPaths(paths []string, recursive bool, scanErrors *[]error) []string {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			*scanErrors = append(*scanErrors, err)
			continue
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		if !recursive {
			entries, err := os.ReadDir(path)
			if err != nil {
				*scanErrors = append(*scanErrors, err)
				continue
			}
			for _, entry := range entries {
				if !entry.IsDir() {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
			continue
		}
		err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			*scanErrors = append(*scanErrors, err)
		}
	}
	return files
}

// filterByScore drops scored findings below the threshold. Unscored
// findings come from pattern backends and always pass.
func filterByScore(results []formatters.FileResult, minScore float64) []formatters.FileResult {
	filtered := make([]formatters.FileResult, len(results))
	for i, result := range results {
		filtered[i] = formatters.FileResult{Path: result.Path}
		for _, finding := range result.Findings {
			if finding.HasScore && finding.Score < minScore {
				continue
			}
			filtered[i].Findings = append(filtered[i].Findings, finding)
		}
	}
	return filtered
}

func countFindings(results []formatters.FileResult) int {
	total := 0
	for _, result := range results {
		total += len(result.Findings)
	}
	return total
}
