// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"pii-scan/internal/pii"
)

// Config represents the application configuration. It is constructed once
// at startup and then treated as read-only: recognizers never look anything
// up in ambient state at call time.
type Config struct {
	// Default settings
	Defaults struct {
		Format      string `yaml:"format"`
		Recognizers string `yaml:"recognizers"`
		Strategy    string `yaml:"strategy"`
		FailFast    bool   `yaml:"fail_fast"`
		MaxParallel int    `yaml:"max_parallel"`
		Verbose     bool   `yaml:"verbose"`
		Debug       bool   `yaml:"debug"`
		NoColor     bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Priorities is the declared total order over categories used for
	// cross-category overlap tie-breaks. Higher outranks lower.
	Priorities map[string]int `yaml:"priorities"`

	// Per-recognizer configurations
	Recognizers map[string]map[string]interface{} `yaml:"recognizers"`

	// Profiles for different scanning scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a scanning profile with specific settings
type Profile struct {
	Format      string `yaml:"format"`
	Recognizers string `yaml:"recognizers"`
	Strategy    string `yaml:"strategy"`
	FailFast    bool   `yaml:"fail_fast"`
	Verbose     bool   `yaml:"verbose"`
	Debug       bool   `yaml:"debug"`
	NoColor     bool   `yaml:"no_color"`
	Description string `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path. An empty
// path returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	config := defaultConfig()

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func defaultConfig() *Config {
	config := &Config{
		Priorities:  make(map[string]int),
		Recognizers: make(map[string]map[string]interface{}),
		Profiles:    make(map[string]Profile),
	}

	config.Defaults.Format = "text"
	config.Defaults.Recognizers = "all"
	config.Defaults.Strategy = "ensure_disjointness"
	config.Defaults.FailFast = false
	config.Defaults.MaxParallel = 0 // 0 means one worker per recognizer

	// Statistical full-entity categories outrank the narrower pattern-based
	// ones, which can spuriously match inside a longer mention.
	config.Priorities = map[string]int{
		string(pii.CategoryPersonName):   2,
		string(pii.CategoryPlaceOfBirth): 2,
		string(pii.CategoryPhoneNumber):  1,
		string(pii.CategoryEmail):        1,
	}

	config.Profiles["strict"] = Profile{
		Format:      "json",
		Recognizers: "all",
		Strategy:    "ensure_disjointness",
		FailFast:    true,
		Description: "Fail the whole call when any backend is unavailable",
	}

	return config
}

// FindConfigFile looks for a configuration file in standard locations.
func FindConfigFile() string {
	candidates := []string{
		"pii-scan.yaml",
		"pii-scan.yml",
		".pii-scan.yaml",
		".pii-scan.yml",
	}
	for _, name := range candidates {
		if fileExists(name) {
			return name
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		for _, name := range []string{"config.yaml", "config.yml"} {
			path := filepath.Join(home, ".pii-scan", name)
			if fileExists(path) {
				return path
			}
		}
	}

	return ""
}

// ValidateConfig checks the configuration for invalid values.
func ValidateConfig(config *Config) error {
	switch config.Defaults.Strategy {
	case "", "keep_all", "merge", "ensure_disjointness":
	default:
		return fmt.Errorf("unknown strategy %q", config.Defaults.Strategy)
	}

	if config.Defaults.MaxParallel < 0 {
		return fmt.Errorf("max_parallel must not be negative, got %d", config.Defaults.MaxParallel)
	}

	known := make(map[string]bool)
	for _, cat := range pii.Categories() {
		known[string(cat)] = true
	}
	for cat := range config.Priorities {
		if !known[cat] {
			return fmt.Errorf("priority declared for unknown category %q", cat)
		}
	}

	for _, name := range ParseRecognizers(config.Defaults.Recognizers) {
		if !knownRecognizer(name) {
			return fmt.Errorf("unknown recognizer %q", name)
		}
	}

	return nil
}

// CategoryPriorities converts the configured priority table to the typed
// form used by the reconciliation policy.
func (c *Config) CategoryPriorities() map[pii.Category]int {
	result := make(map[pii.Category]int, len(c.Priorities))
	for cat, prio := range c.Priorities {
		result[pii.Category(cat)] = prio
	}
	return result
}

// GetProfile returns the named profile.
func (c *Config) GetProfile(name string) (Profile, bool) {
	profile, ok := c.Profiles[name]
	return profile, ok
}

// ListProfiles returns the configured profile names, sorted.
func (c *Config) ListProfiles() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseRecognizers splits a comma-separated recognizer list. "all" or an
// empty string selects every built-in recognizer.
func ParseRecognizers(spec string) []string {
	spec = strings.TrimSpace(spec)
	if spec == "" || spec == "all" {
		return []string{"personname", "phone", "email", "placeofbirth"}
	}

	var names []string
	for _, part := range strings.Split(spec, ",") {
		if name := strings.ToLower(strings.TrimSpace(part)); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func knownRecognizer(name string) bool {
	switch name {
	case "personname", "phone", "email", "placeofbirth":
		return true
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
