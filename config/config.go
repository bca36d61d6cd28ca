// Package config loads the rl settings from a YAML file with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/etnz/rupeelogic"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	KnowledgeBase struct {
		Path     string `yaml:"path"`     // empty for the embedded knowledge base
		Selector string `yaml:"selector"` // JSONPath of the asset class object
	} `yaml:"knowledge_base"`
	Currency string `yaml:"currency"`
	History  struct {
		SQLitePath string `yaml:"sqlite_path"`
		Disabled   bool   `yaml:"disabled"`
	} `yaml:"history"`
	Gemini struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`
	Batch struct {
		Workers int `yaml:"workers"`
	} `yaml:"batch"`
}

// DefaultPath is the config file read when none is given: $RUPEELOGIC_CONFIG,
// or rupeelogic/config.yaml in the user config directory.
func DefaultPath() string {
	if v := os.Getenv("RUPEELOGIC_CONFIG"); v != "" {
		return v
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "rupeelogic.yaml"
	}
	return filepath.Join(dir, "rupeelogic", "config.yaml")
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("RUPEELOGIC_KB"); v != "" {
		cfg.KnowledgeBase.Path = v
	}
	if v := os.Getenv("RUPEELOGIC_KB_SELECTOR"); v != "" {
		cfg.KnowledgeBase.Selector = v
	}
	if v := os.Getenv("RUPEELOGIC_CURRENCY"); v != "" {
		cfg.Currency = v
	}
	if v := os.Getenv("RUPEELOGIC_HISTORY"); v != "" {
		cfg.History.SQLitePath = v
	}
	if v := os.Getenv("RUPEELOGIC_MODEL"); v != "" {
		cfg.Gemini.Model = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("RUPEELOGIC_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("RUPEELOGIC_WORKERS: %w", err)
		}
		cfg.Batch.Workers = n
	}

	// Defaults
	if cfg.KnowledgeBase.Selector == "" {
		cfg.KnowledgeBase.Selector = rupeelogic.DefaultSelector
	}
	if cfg.Currency == "" {
		cfg.Currency = rupeelogic.DefaultCurrency
	}
	if cfg.History.SQLitePath == "" {
		cfg.History.SQLitePath = defaultHistoryPath()
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.5-flash"
	}
	if cfg.Batch.Workers == 0 {
		cfg.Batch.Workers = 4
	}

	return cfg, nil
}

func defaultHistoryPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "rupeelogic.db"
	}
	return filepath.Join(dir, "rupeelogic", "history.db")
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if money.GetCurrency(c.Currency) == nil {
		return fmt.Errorf("currency %q is not an ISO 4217 code", c.Currency)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be positive, got %d", c.Batch.Workers)
	}
	return nil
}

// LoadKnowledgeBase opens the configured knowledge base, or returns the
// embedded one when no path is set.
func (c *Config) LoadKnowledgeBase() (*rupeelogic.KnowledgeBase, error) {
	if c.KnowledgeBase.Path == "" {
		return rupeelogic.DefaultKnowledgeBase(), nil
	}
	f, err := os.Open(c.KnowledgeBase.Path)
	if err != nil {
		return nil, fmt.Errorf("open knowledge base: %w", err)
	}
	defer f.Close()
	return rupeelogic.LoadKnowledgeBase(f, c.KnowledgeBase.Path, c.KnowledgeBase.Selector)
}
