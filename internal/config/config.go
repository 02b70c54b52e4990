// Package config provides configuration management for zen-temple projects
// using Viper for loading from files, environment variables, and command-line
// flags.
//
// The project file is zen-temple.yaml in the project root. Every key can be
// overridden with a ZEN_TEMPLE_ environment variable (ZEN_TEMPLE_PROJECT_NAME,
// ZEN_TEMPLE_VALIDATION_STRICT, ...). The scaffold writes the same structure
// with Write, so a generated project loads back without changes.
package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	zerrors "github.com/mame7743/zen-temple/internal/errors"
	"github.com/mame7743/zen-temple/internal/validator"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file name.
const FileName = "zen-temple.yaml"

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "ZEN_TEMPLE"

type Config struct {
	Project    ProjectConfig    `yaml:"project" mapstructure:"project"`
	Templates  TemplatesConfig  `yaml:"templates" mapstructure:"templates"`
	CDN        CDNConfig        `yaml:"cdn" mapstructure:"cdn"`
	Validation ValidationConfig `yaml:"validation" mapstructure:"validation"`
	ZenTemple  PhilosophyConfig `yaml:"zen_temple" mapstructure:"zen_temple"`
}

type ProjectConfig struct {
	Name    string `yaml:"name" mapstructure:"name"`
	Version string `yaml:"version" mapstructure:"version"`
}

type TemplatesConfig struct {
	Directories []string `yaml:"directories" mapstructure:"directories"`
}

type CDNConfig struct {
	HTMX     string `yaml:"htmx" mapstructure:"htmx"`
	Alpine   string `yaml:"alpine" mapstructure:"alpine"`
	Tailwind string `yaml:"tailwind" mapstructure:"tailwind"`
}

type ValidationConfig struct {
	// Strict makes warnings fail the validate command.
	Strict          bool     `yaml:"strict" mapstructure:"strict"`
	ExcludePatterns []string `yaml:"exclude_patterns" mapstructure:"exclude_patterns"`
	DisabledRules   []string `yaml:"disabled_rules,omitempty" mapstructure:"disabled_rules"`
}

type PhilosophyConfig struct {
	Philosophy []string `yaml:"philosophy" mapstructure:"philosophy"`
}

const (
	DefaultVersion     = "0.1.0"
	DefaultHTMXURL     = "https://unpkg.com/htmx.org@1.9.10"
	DefaultAlpineURL   = "https://unpkg.com/alpinejs@3.13.5/dist/cdn.min.js"
	DefaultTailwindURL = "https://cdn.tailwindcss.com"
)

// Principles is the zen-temple philosophy written into every project file.
var Principles = []string{
	"No build step required",
	"No hidden abstractions",
	"Template-centered design",
	"Logic in Alpine.js x-data only",
	"Server returns JSON only",
	"HTMX for communication and events only",
}

// Default returns the configuration written for a new project.
func Default(projectName string) *Config {
	return &Config{
		Project: ProjectConfig{Name: projectName, Version: DefaultVersion},
		Templates: TemplatesConfig{
			Directories: []string{"templates", "templates/components", "templates/layouts"},
		},
		CDN: CDNConfig{
			HTMX:     DefaultHTMXURL,
			Alpine:   DefaultAlpineURL,
			Tailwind: DefaultTailwindURL,
		},
		Validation: ValidationConfig{
			ExcludePatterns: []string{"*.bak.html"},
		},
		ZenTemple: PhilosophyConfig{Philosophy: append([]string(nil), Principles...)},
	}
}

// envKeys are bound explicitly so that environment overrides apply even when
// the project file does not set the key.
var envKeys = []string{
	"project.name",
	"project.version",
	"templates.directories",
	"cdn.htmx",
	"cdn.alpine",
	"cdn.tailwind",
	"validation.strict",
	"validation.exclude_patterns",
	"validation.disabled_rules",
}

// BindEnv maps every configuration key to its ZEN_TEMPLE_ environment
// variable on the global viper instance.
func BindEnv() error {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	for _, key := range envKeys {
		if err := viper.BindEnv(key); err != nil {
			return zerrors.NewConfigError("failed to bind "+key, err)
		}
	}
	return nil
}

// Load reads the configuration from the global viper instance, applies
// defaults and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, zerrors.NewConfigError("failed to decode configuration", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Project.Version == "" {
		cfg.Project.Version = DefaultVersion
	}
	if len(cfg.Templates.Directories) == 0 {
		cfg.Templates.Directories = []string{"templates"}
	}
	if cfg.CDN.HTMX == "" {
		cfg.CDN.HTMX = DefaultHTMXURL
	}
	if cfg.CDN.Alpine == "" {
		cfg.CDN.Alpine = DefaultAlpineURL
	}
	if cfg.CDN.Tailwind == "" {
		cfg.CDN.Tailwind = DefaultTailwindURL
	}
	if len(cfg.ZenTemple.Philosophy) == 0 {
		cfg.ZenTemple.Philosophy = append([]string(nil), Principles...)
	}
}

// validateConfig validates configuration values for security and correctness
func validateConfig(cfg *Config) error {
	for _, dir := range cfg.Templates.Directories {
		if err := validatePath(dir); err != nil {
			return zerrors.NewConfigError("templates.directories", err)
		}
	}

	cdn := map[string]string{
		"cdn.htmx":     cfg.CDN.HTMX,
		"cdn.alpine":   cfg.CDN.Alpine,
		"cdn.tailwind": cfg.CDN.Tailwind,
	}
	for key, raw := range cdn {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return zerrors.NewConfigError(key, fmt.Errorf("%q is not an http(s) URL", raw))
		}
	}

	for _, name := range cfg.Validation.DisabledRules {
		if _, ok := validator.ParseRule(name); !ok {
			return zerrors.NewConfigError("validation.disabled_rules",
				fmt.Errorf("unknown rule %q", name))
		}
	}

	for _, pattern := range cfg.Validation.ExcludePatterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return zerrors.NewConfigError("validation.exclude_patterns",
				fmt.Errorf("bad pattern %q: %w", pattern, err))
		}
	}

	return nil
}

func validatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty path")
	}
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".." {
			return fmt.Errorf("path %q contains directory traversal", path)
		}
	}
	return nil
}

// Rules returns the validator battery with disabled rules removed.
func (c *Config) Rules() []validator.Rule {
	disabled := make(map[validator.Rule]bool, len(c.Validation.DisabledRules))
	for _, name := range c.Validation.DisabledRules {
		if r, ok := validator.ParseRule(name); ok {
			disabled[r] = true
		}
	}

	rules := make([]validator.Rule, 0, len(validator.DefaultRules))
	for _, r := range validator.DefaultRules {
		if !disabled[r] {
			rules = append(rules, r)
		}
	}
	return rules
}

// Write encodes cfg as YAML at path.
func Write(path string, cfg *Config) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return zerrors.NewConfigError("failed to encode configuration", err)
	}
	if err := enc.Close(); err != nil {
		return zerrors.NewConfigError("failed to encode configuration", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return zerrors.NewIOError(zerrors.CodeWriteFailed, "failed to write configuration", err).WithPath(path)
	}
	return nil
}

// Read decodes the YAML file at path without consulting viper.
func Read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerrors.NewIOError(zerrors.CodeReadFailed, "failed to read configuration", err).WithPath(path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, zerrors.NewConfigError("failed to parse "+path, err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}
