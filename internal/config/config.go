package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/gyeh/csvfaq/internal/report"
	"github.com/gyeh/csvfaq/internal/selector"
)

// Config holds all runtime configuration for a csvfaq run.
type Config struct {
	ConfigPath string
	LogFormat  string // "text" or "json"
	LogLevel   string
	Progress   bool
	NoColor    bool

	Wildcard       string          `yaml:"wildcard"`
	GridWidth      int             `yaml:"grid_width"`
	StrictExit     bool            `yaml:"strict_exit"` // exit non-zero when the input file is missing or unreadable
	SemanticChecks []SemanticCheck `yaml:"semantic_checks"`
}

// SemanticCheck binds a table column to a reference set loaded from a TSV file.
type SemanticCheck struct {
	Column          string `yaml:"column"`
	Name            string `yaml:"name"`
	Reference       string `yaml:"reference"`
	ReferenceColumn string `yaml:"reference_column"`
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Wildcard       string          `yaml:"wildcard"`
	GridWidth      int             `yaml:"grid_width"`
	StrictExit     bool            `yaml:"strict_exit"`
	SemanticChecks []SemanticCheck `yaml:"semantic_checks"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Relative reference paths are resolved against the config file's directory.
// Unknown keys are rejected.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&yc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config file: %w", err)
	}

	if yc.Wildcard != "" {
		c.Wildcard = yc.Wildcard
	}
	if yc.GridWidth != 0 {
		c.GridWidth = yc.GridWidth
	}
	c.StrictExit = c.StrictExit || yc.StrictExit

	dir := filepath.Dir(path)
	for _, sc := range yc.SemanticChecks {
		if sc.Reference != "" && !filepath.IsAbs(sc.Reference) {
			sc.Reference = filepath.Join(dir, sc.Reference)
		}
		c.SemanticChecks = append(c.SemanticChecks, sc)
	}
	return nil
}

// ApplyDefaults fills unset values.
func (c *Config) ApplyDefaults() {
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.Wildcard == "" {
		c.Wildcard = selector.Wildcard
	}
	if c.GridWidth == 0 {
		c.GridWidth = report.DefaultWidth
	}
	for i := range c.SemanticChecks {
		if c.SemanticChecks[i].Name == "" {
			c.SemanticChecks[i].Name = c.SemanticChecks[i].Column
		}
	}
}

// Validate checks field values and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("--log-format must be text or json, got %q", c.LogFormat)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	if c.GridWidth < 0 {
		return fmt.Errorf("grid_width must be positive, got %d", c.GridWidth)
	}
	seen := make(map[string]bool)
	for i, sc := range c.SemanticChecks {
		if sc.Column == "" || sc.Reference == "" || sc.ReferenceColumn == "" {
			return fmt.Errorf("semantic_checks[%d]: column, reference and reference_column are required", i)
		}
		if seen[sc.Column] {
			return fmt.Errorf("semantic_checks[%d]: column %q configured twice", i, sc.Column)
		}
		seen[sc.Column] = true
	}
	return nil
}
