// Package config provides configuration management for the extractor CLI
// and batch runner.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrInvalidCustomPatternName  = errors.New("custom_patterns[].name is required")
	ErrInvalidCustomPatternRegex = errors.New("custom_patterns[].pattern must be a valid regular expression")
	ErrInvalidCategory           = errors.New("custom_patterns[].category must be one of: abstime, duration, reltime, set")
	ErrInvalidModifier           = errors.New("custom_patterns[].mod is not a recognized modifier")
	ErrInvalidQuant              = errors.New("custom_patterns[].quant is not a recognized quantifier")
	ErrInvalidMaxAttempts        = errors.New("export.retry.max_attempts must be at least 1")
	ErrInvalidInitialDelay       = errors.New("export.retry.initial_delay_ms must be non-negative")
	ErrInvalidBackoffMultiplier  = errors.New("export.retry.backoff_multiplier must be >= 1.0")
	ErrInvalidTimeout            = errors.New("export.retry.timeout_sec must be at least 1")
	ErrMissingEndpoint           = errors.New("export.endpoint is required when export.enabled is true")
	ErrInvalidConcurrency        = errors.New("batch.concurrency must be at least 1")
	ErrInvalidLogLevel           = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete extractor configuration.
type Config struct {
	Extractor ExtractorConfig `yaml:"extractor"`
	Batch     BatchConfig     `yaml:"batch"`
	Export    ExportConfig    `yaml:"export"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ExtractorConfig controls the pipeline's Parser construction.
type ExtractorConfig struct {
	ReferenceDate   string          `yaml:"reference_date"` // RFC3339; empty means unset
	IgnoreKansuji   bool            `yaml:"ignore_kansuji"`
	CustomPatterns  []CustomPattern `yaml:"custom_patterns"`
	DisabledFilters []string        `yaml:"disabled_filters"`
}

// CustomPattern describes one application-specific pattern contributed to
// the "custom" category ahead of the built-in abstime/duration/reltime/set
// families.
type CustomPattern struct {
	Name     string `yaml:"name"`
	Pattern  string `yaml:"pattern"`
	Category string `yaml:"category"`
	Mod      string `yaml:"mod"`
	Quant    string `yaml:"quant"`
}

// BatchConfig controls internal/batch.Pool sizing.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency"`
}

// ExportConfig controls internal/export's HTTP sink.
type ExportConfig struct {
	Enabled    bool        `yaml:"enabled"`
	Endpoint   string      `yaml:"endpoint"`
	BearerToken string     `yaml:"bearer_token"`
	HMACSecret string      `yaml:"hmac_secret"`
	Retry      RetryPolicy `yaml:"retry"`
}

// RetryPolicy defines exponential-backoff retry behavior, shared by the
// export sink.
type RetryPolicy struct {
	MaxAttempts       int     `yaml:"max_attempts"`
	InitialDelayMs    int     `yaml:"initial_delay_ms"`
	MaxDelayMs        int     `yaml:"max_delay_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
	TimeoutSec        int     `yaml:"timeout_sec"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

var recognizedCategories = map[string]bool{
	"abstime": true, "duration": true, "reltime": true, "set": true,
}

var recognizedModifiers = map[string]bool{
	"": true, "BEFORE": true, "AFTER": true, "EQUAL_OR_LESS": true, "EQUAL_OR_MORE": true,
	"APPROX": true, "START": true, "MID": true, "END": true, "ON_OR_BEFORE": true, "ON_OR_AFTER": true,
}

var recognizedQuants = map[string]bool{
	"": true, "EVERY": true,
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	for i, cp := range c.Extractor.CustomPatterns {
		if cp.Name == "" {
			return fmt.Errorf("%w: custom_patterns[%d]", ErrInvalidCustomPatternName, i)
		}

		if _, err := regexp.Compile(cp.Pattern); err != nil {
			return fmt.Errorf("%w: custom_patterns[%d]: %v", ErrInvalidCustomPatternRegex, i, err)
		}

		if !recognizedCategories[cp.Category] {
			return fmt.Errorf("%w: custom_patterns[%d]", ErrInvalidCategory, i)
		}

		if !recognizedModifiers[cp.Mod] {
			return fmt.Errorf("%w: custom_patterns[%d]", ErrInvalidModifier, i)
		}

		if !recognizedQuants[cp.Quant] {
			return fmt.Errorf("%w: custom_patterns[%d]", ErrInvalidQuant, i)
		}
	}

	if c.Batch.Concurrency < 1 {
		return ErrInvalidConcurrency
	}

	if c.Export.Enabled {
		if c.Export.Endpoint == "" {
			return ErrMissingEndpoint
		}

		if c.Export.Retry.MaxAttempts < 1 {
			return ErrInvalidMaxAttempts
		}

		if c.Export.Retry.InitialDelayMs < 0 {
			return ErrInvalidInitialDelay
		}

		if c.Export.Retry.BackoffMultiplier < 1.0 {
			return ErrInvalidBackoffMultiplier
		}

		if c.Export.Retry.TimeoutSec < 1 {
			return ErrInvalidTimeout
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// GetRetryDelay calculates the exponential backoff delay for a given retry
// attempt number (1-indexed; attempt 1 never waits). Attempt n >= 2 waits
// InitialDelayMs * BackoffMultiplier^(n-1), capped at MaxDelayMs.
func (rp *RetryPolicy) GetRetryDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}

	delayMs := float64(rp.InitialDelayMs)
	for i := 2; i < attempt; i++ {
		delayMs *= rp.BackoffMultiplier
	}

	if int(delayMs) > rp.MaxDelayMs {
		delayMs = float64(rp.MaxDelayMs)
	}

	return time.Duration(int(delayMs)) * time.Millisecond
}

// GetTimeout returns the timeout duration.
func (rp *RetryPolicy) GetTimeout() time.Duration {
	return time.Duration(rp.TimeoutSec) * time.Second
}
