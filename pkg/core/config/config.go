// ============================================================================
// molecule - Chemical Formula Atom Counter
// ============================================================================
//
// Package:     config
// Description: Application configuration from TOML or YAML files with
//              MOLECULE_ environment overrides
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/molecule/foundation/core/error"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "MOLECULE"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Output  OutputConfig  `toml:"output" yaml:"output"`

	path string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// ParserConfig holds formula parser limits
type ParserConfig struct {
	MaxDepth       int      `toml:"max_depth" yaml:"max_depth"`
	MaxInputLength int      `toml:"max_input_length" yaml:"max_input_length"`
	Workers        int      `toml:"workers" yaml:"workers"`
	BatchTimeout   Duration `toml:"batch_timeout" yaml:"batch_timeout"`
}

// OutputConfig holds rendering settings
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
	Color  bool   `toml:"color" yaml:"color"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Valid values of the enumerated settings
var (
	LogLevels     = []string{"trace", "debug", "info", "warn", "error", "fatal"}
	LogFormats    = []string{"json", "text", "console"}
	OutputFormats = []string{"text", "table", "json", "yaml", "tuple", "formula"}
)

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.Output.Color = true
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension.
// Missing values take their defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.New(fmt.Sprintf("config file not found: %s", path)).
				WithCode(mdwerror.CodeMissingConfig).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg, err := Parse(content, filepath.Ext(path))
	if err != nil {
		if mdwErr, ok := err.(*mdwerror.Error); ok {
			mdwErr.WithDetail("path", path)
		}
		return nil, err
	}
	cfg.path = path
	return cfg, nil
}

// Parse decodes configuration content. ext selects the format: ".yaml" and
// ".yml" are YAML, anything else is TOML.
func Parse(content []byte, ext string) (*Config, error) {
	cfg := &Config{Output: OutputConfig{Color: true}}

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Parse")
		}
	default:
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Parse")
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

// LoadFromEnv loads the file named by MOLECULE_CONFIG, or the first file found
// in the default locations. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvPrefix + "_CONFIG"); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// DefaultPaths lists the locations searched by LoadFromEnv
func DefaultPaths() []string {
	paths := []string{
		"./molecule.toml",
		"./molecule.yaml",
		"./configs/molecule.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "molecule", "config.toml"))
	}
	return paths
}

// Path returns the file the configuration was loaded from
func (c *Config) Path() string {
	return c.path
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Parser
	if c.Parser.MaxDepth == 0 {
		c.Parser.MaxDepth = 64
	}
	if c.Parser.MaxInputLength == 0 {
		c.Parser.MaxInputLength = 4096
	}
	if c.Parser.Workers == 0 {
		c.Parser.Workers = 4
	}
	if c.Parser.BatchTimeout.Duration == 0 {
		c.Parser.BatchTimeout.Duration = 30 * time.Second
	}

	// Output
	if c.Output.Format == "" {
		c.Output.Format = "table"
	}
}

// ApplyEnv overrides settings from MOLECULE_ environment variables
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"LOG_LEVEL":     &c.General.LogLevel,
		"LOG_FORMAT":    &c.General.LogFormat,
		"OUTPUT_FORMAT": &c.Output.Format,
	}
	for key, target := range strs {
		if value, ok := lookup(EnvPrefix + "_" + key); ok && value != "" {
			*target = strings.ToLower(strings.TrimSpace(value))
		}
	}

	ints := map[string]*int{
		"MAX_DEPTH":        &c.Parser.MaxDepth,
		"MAX_INPUT_LENGTH": &c.Parser.MaxInputLength,
		"WORKERS":          &c.Parser.Workers,
	}
	for key, target := range ints {
		value, ok := lookup(EnvPrefix + "_" + key)
		if !ok || value == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return mdwerror.Wrap(err, "invalid environment override").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.ApplyEnv").
				WithDetail("variable", EnvPrefix+"_"+key)
		}
		*target = n
	}

	if value, ok := lookup(EnvPrefix + "_COLOR"); ok && value != "" {
		color, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return mdwerror.Wrap(err, "invalid environment override").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.ApplyEnv").
				WithDetail("variable", EnvPrefix+"_COLOR")
		}
		c.Output.Color = color
	}

	return nil
}

// Validate checks enumerated values and numeric bounds
func (c *Config) Validate() error {
	var problems []string

	if !slices.Contains(LogLevels, c.General.LogLevel) {
		problems = append(problems, fmt.Sprintf("general.log_level %q is not one of %s", c.General.LogLevel, strings.Join(LogLevels, ", ")))
	}
	if !slices.Contains(LogFormats, c.General.LogFormat) {
		problems = append(problems, fmt.Sprintf("general.log_format %q is not one of %s", c.General.LogFormat, strings.Join(LogFormats, ", ")))
	}
	if !slices.Contains(OutputFormats, c.Output.Format) {
		problems = append(problems, fmt.Sprintf("output.format %q is not one of %s", c.Output.Format, strings.Join(OutputFormats, ", ")))
	}
	if c.Parser.MaxDepth < 1 || c.Parser.MaxDepth > 10000 {
		problems = append(problems, fmt.Sprintf("parser.max_depth %d must be between 1 and 10000", c.Parser.MaxDepth))
	}
	if c.Parser.MaxInputLength < 0 {
		problems = append(problems, fmt.Sprintf("parser.max_input_length %d must not be negative", c.Parser.MaxInputLength))
	}
	if c.Parser.Workers < 1 || c.Parser.Workers > 256 {
		problems = append(problems, fmt.Sprintf("parser.workers %d must be between 1 and 256", c.Parser.Workers))
	}
	if c.Parser.BatchTimeout.Duration < 0 {
		problems = append(problems, "parser.batch_timeout must not be negative")
	}

	if len(problems) == 0 {
		return nil
	}

	return mdwerror.New("invalid configuration: "+strings.Join(problems, "; ")).
		WithCode(mdwerror.CodeValidationFailed).
		WithOperation("config.Validate").
		WithDetail("problems", len(problems))
}
