package config

import (
	"os"
	"path/filepath"
	"testing"
)

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}

	return configPath
}

const validConfigYAML = `
extractor:
  reference_date: "2024-01-01T00:00:00Z"
  ignore_kansuji: false
batch:
  concurrency: 4
export:
  enabled: false
logging:
  level: "info"
`

func TestLoadConfig_Valid(t *testing.T) {
	path := createTempConfigFile(t, validConfigYAML)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Batch.Concurrency != 4 {
		t.Errorf("Concurrency = %d, want 4", cfg.Batch.Concurrency)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate_InvalidConcurrency(t *testing.T) {
	cfg := &Config{Batch: BatchConfig{Concurrency: 0}, Logging: LoggingConfig{Level: "info"}}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero concurrency")
	}
}

func TestValidate_ExportRequiresEndpoint(t *testing.T) {
	cfg := &Config{
		Batch:   BatchConfig{Concurrency: 1},
		Export:  ExportConfig{Enabled: true},
		Logging: LoggingConfig{Level: "info"},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for export enabled without endpoint")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := &Config{Batch: BatchConfig{Concurrency: 1}, Logging: LoggingConfig{Level: "verbose"}}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func TestValidate_CustomPatternInvalidRegex(t *testing.T) {
	cfg := &Config{
		Batch: BatchConfig{Concurrency: 1},
		Extractor: ExtractorConfig{
			CustomPatterns: []CustomPattern{
				{Name: "bad", Pattern: "(unclosed", Category: "abstime"},
			},
		},
		Logging: LoggingConfig{Level: "info"},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid regex")
	}
}

func TestValidate_CustomPatternUnknownCategory(t *testing.T) {
	cfg := &Config{
		Batch: BatchConfig{Concurrency: 1},
		Extractor: ExtractorConfig{
			CustomPatterns: []CustomPattern{
				{Name: "weird", Pattern: "x", Category: "nonsense"},
			},
		},
		Logging: LoggingConfig{Level: "info"},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unrecognized category")
	}
}

func TestGetRetryDelay(t *testing.T) {
	rp := RetryPolicy{InitialDelayMs: 100, MaxDelayMs: 1000, BackoffMultiplier: 2.0}

	if d := rp.GetRetryDelay(1); d != 0 {
		t.Errorf("attempt 1 delay = %v, want 0", d)
	}

	if d := rp.GetRetryDelay(2); d.Milliseconds() != 100 {
		t.Errorf("attempt 2 delay = %v, want 100ms", d)
	}

	if d := rp.GetRetryDelay(6); d.Milliseconds() != 1000 {
		t.Errorf("attempt 6 delay = %v, want capped at 1000ms", d)
	}
}
