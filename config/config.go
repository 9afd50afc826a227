package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"trending/internal/adapter/analyzer"
	"trending/internal/adapter/render"
	"trending/internal/apperr"
)

// Config holds all configuration for the trending tool.
type Config struct {
	Tokens  TokensConfig  `yaml:"tokens"`
	TopK    TopKConfig    `yaml:"topk"`
	Session SessionConfig `yaml:"session"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// TokensConfig holds hashtag extraction configuration.
type TokensConfig struct {
	Marker    string   `yaml:"marker"`
	DropEmpty bool     `yaml:"drop_empty"` // Discard the token produced by a bare marker
	Ignore    []string `yaml:"ignore"`     // Glob patterns of tokens to skip
}

// TopKConfig holds selection configuration.
type TopKConfig struct {
	K int `yaml:"k"`
}

// SessionConfig holds input loop configuration.
type SessionConfig struct {
	AutoBatch      bool `yaml:"auto_batch"`       // Opt-in: read to EOF without prompts when stdin is not a terminal
	MaxReadRetries int  `yaml:"max_read_retries"` // 0 = retry forever
	ShowProgress   bool `yaml:"show_progress"`
}

// OutputConfig holds result rendering configuration.
type OutputConfig struct {
	Format string `yaml:"format"` // "list", "table", "json"
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text", "json"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Tokens: TokensConfig{
			Marker:    analyzer.DefaultMarker,
			DropEmpty: false,
		},
		TopK: TopKConfig{
			K: 10,
		},
		Session: SessionConfig{
			AutoBatch:      false,
			MaxReadRetries: 0,
			ShowProgress:   true,
		},
		Output: OutputConfig{
			Format: render.FormatList,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for trending.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "trending.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".trending", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings that can never work.
func (c *Config) Validate() error {
	if c.TopK.K <= 0 {
		return apperr.NewInvalidArgument(fmt.Sprintf("topk.k must be positive, got %d", c.TopK.K))
	}
	if c.Session.MaxReadRetries < 0 {
		return apperr.NewInvalidArgument(fmt.Sprintf("session.max_read_retries must not be negative, got %d", c.Session.MaxReadRetries))
	}
	if !slices.Contains(render.Formats(), c.Output.Format) {
		return apperr.NewInvalidArgument(fmt.Sprintf("output.format must be one of %v, got %q", render.Formats(), c.Output.Format))
	}
	if p, ok := analyzer.ValidatePatterns(c.Tokens.Ignore); !ok {
		return apperr.NewInvalidArgument(fmt.Sprintf("tokens.ignore has malformed pattern %q", p))
	}
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return apperr.NewInvalidArgumentWrap("logging.level", err)
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return apperr.NewInvalidArgument(fmt.Sprintf("logging.format must be text or json, got %q", c.Logging.Format))
	}
	return nil
}
