package config

import (
	"os"
	"path/filepath"
	"testing"

	"trending/internal/apperr"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.TopK.K != 10 {
		t.Errorf("expected K=10, got %d", cfg.TopK.K)
	}
	if cfg.Tokens.Marker != "#" {
		t.Errorf("expected Marker=#, got %q", cfg.Tokens.Marker)
	}
	if cfg.Tokens.DropEmpty {
		t.Error("expected empty tokens to be kept by default")
	}
	if cfg.Session.AutoBatch {
		t.Error("expected piped input to prompt unless auto_batch is set")
	}
	if cfg.Output.Format != "list" {
		t.Errorf("expected Format=list, got %q", cfg.Output.Format)
	}
	if cfg.Session.MaxReadRetries != 0 {
		t.Errorf("expected unlimited retries, got %d", cfg.Session.MaxReadRetries)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "trending.yaml")

	content := `
tokens:
  drop_empty: true
  ignore: ["spam*"]
topk:
  k: 3
output:
  format: table
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TopK.K != 3 {
		t.Errorf("expected K=3, got %d", cfg.TopK.K)
	}
	if !cfg.Tokens.DropEmpty {
		t.Error("expected DropEmpty=true")
	}
	if len(cfg.Tokens.Ignore) != 1 || cfg.Tokens.Ignore[0] != "spam*" {
		t.Errorf("expected Ignore=[spam*], got %v", cfg.Tokens.Ignore)
	}
	if cfg.Output.Format != "table" {
		t.Errorf("expected Format=table, got %q", cfg.Output.Format)
	}
	// Untouched sections keep their defaults.
	if cfg.Tokens.Marker != "#" {
		t.Errorf("expected default Marker, got %q", cfg.Tokens.Marker)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "trending.yaml")
	if err := os.WriteFile(configPath, []byte("topk: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "trending.yaml")

	content := `
topk:
  k: 25
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TopK.K != 25 {
		t.Errorf("expected K=25, got %d", cfg.TopK.K)
	}
}

func TestLoadFromDir_HiddenDir(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmpDir, ".trending"), 0755); err != nil {
		t.Fatal(err)
	}
	content := `
logging:
  level: debug
`
	if err := os.WriteFile(filepath.Join(tmpDir, ".trending", "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected Level=debug, got %q", cfg.Logging.Level)
	}
}

func TestLoadFromDir_Defaults(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TopK.K != 10 {
		t.Errorf("expected default K=10, got %d", cfg.TopK.K)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trending.yaml")
	cfg := DefaultConfig()
	cfg.TopK.K = 7

	if err := cfg.Save(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.TopK.K != 7 {
		t.Errorf("expected K=7, got %d", loaded.TopK.K)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero k", func(c *Config) { c.TopK.K = 0 }},
		{"negative k", func(c *Config) { c.TopK.K = -3 }},
		{"negative retries", func(c *Config) { c.Session.MaxReadRetries = -1 }},
		{"unknown format", func(c *Config) { c.Output.Format = "xml" }},
		{"bad pattern", func(c *Config) { c.Tokens.Ignore = []string{"[oops"} }},
		{"bad level", func(c *Config) { c.Logging.Level = "chatty" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !apperr.IsInvalidArgument(err) {
				t.Errorf("expected invalid argument, got %T: %v", err, err)
			}
		})
	}
}
