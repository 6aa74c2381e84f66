// Package config loads and validates timerpairs configuration.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/mpyw/timerpairs/internal/report"
	"github.com/mpyw/timerpairs/internal/scope"
	"github.com/mpyw/timerpairs/internal/timer"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = ".timerpairs.yaml"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the rule and runner configuration.
type Config struct {
	// ObjectNames lists receivers whose timer calls are checked.
	ObjectNames []string `yaml:"objectNames,omitempty" json:"objectNames,omitempty"`

	// Scope is the matching boundary.
	Scope scope.Mode `yaml:"scope,omitempty" json:"scope,omitempty"`

	StartMethod string `yaml:"startMethod,omitempty" json:"startMethod,omitempty"`
	EndMethod   string `yaml:"endMethod,omitempty" json:"endMethod,omitempty"`

	// Severity of unmatched-timer diagnostics.
	Severity report.Severity `yaml:"severity,omitempty" json:"severity,omitempty"`

	// Extensions selects files while walking directories.
	Extensions []string `yaml:"extensions,omitempty" json:"extensions,omitempty"`

	// Exclude lists directory names skipped while walking.
	Exclude []string `yaml:"exclude,omitempty" json:"exclude,omitempty"`
}

// New creates a configuration with every default applied.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

func (c *Config) applyDefaults() {
	if c.ObjectNames == nil {
		c.ObjectNames = []string{"console"}
	}
	if c.Scope == "" {
		c.Scope = scope.File
	}
	if c.StartMethod == "" {
		c.StartMethod = timer.DefaultMethods.Start
	}
	if c.EndMethod == "" {
		c.EndMethod = timer.DefaultMethods.End
	}
	if c.Severity == "" {
		c.Severity = report.SeverityError
	}
	if c.Extensions == nil {
		c.Extensions = []string{".js", ".mjs", ".cjs", ".jsx"}
	}
	if c.Exclude == nil {
		c.Exclude = []string{"node_modules", ".git"}
	}
}

// Validate checks field values that the schema cannot express.
func (c *Config) Validate() error {
	if _, err := scope.ParseMode(string(c.Scope)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := report.ParseSeverity(string(c.Severity)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Options().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Options returns the timer collector options.
func (c *Config) Options() timer.Options {
	return timer.Options{
		ObjectNames: slices.Clone(c.ObjectNames),
		Scope:       c.Scope,
		Methods: timer.Methods{
			Start: c.StartMethod,
			End:   c.EndMethod,
		},
	}
}
