// Package config loads the address book settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPageSize = 5
	DefaultBackend  = "json"
	DefaultLogLevel = "warn"
	DefaultLogFmt   = "text"
)

// Config holds every tunable setting.
type Config struct {
	Storage Storage
	Pages   Pages
	Log     Log
}

type Storage struct {
	Backend string // json | sqlite
	File    string // JSON data file
	DB      string // SQLite database
}

type Pages struct {
	Size int
}

type Log struct {
	Level  string
	File   string
	Format string
}

// Path returns the active data path for the configured backend.
func (s Storage) Path() string {
	if s.Backend == "sqlite" {
		return s.DB
	}
	return s.File
}

// HomeDir is the default directory for config and data files.
func HomeDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".addressbook")
}

// DefaultPath returns $ADDRESSBOOK_CONFIG or ~/.addressbook/config.yaml.
func DefaultPath() string {
	if env := os.Getenv("ADDRESSBOOK_CONFIG"); env != "" {
		return env
	}
	return filepath.Join(HomeDir(), "config.yaml")
}

// Default returns the built-in settings.
func Default() Config {
	dir := HomeDir()
	return Config{
		Storage: Storage{
			Backend: DefaultBackend,
			File:    filepath.Join(dir, "data.json"),
			DB:      filepath.Join(dir, "data.db"),
		},
		Pages: Pages{Size: DefaultPageSize},
		Log:   Log{Level: DefaultLogLevel, Format: DefaultLogFmt},
	}
}

// Load reads path on top of the defaults, then applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	default:
		var y yamlConfig
		if err := yaml.Unmarshal(b, &y); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		y.apply(&cfg)
	}

	applyEnv(&cfg)
	return cfg, cfg.Validate()
}

// Validate checks the settings that cannot be defaulted away.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case "json", "sqlite":
	default:
		return fmt.Errorf("invalid storage backend %q (valid: json, sqlite)", c.Storage.Backend)
	}
	if c.Pages.Size <= 0 {
		return fmt.Errorf("invalid page size %d (must be positive)", c.Pages.Size)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if env := os.Getenv("ADDRESSBOOK_FILE"); env != "" {
		cfg.Storage.File = env
	}
	if env := os.Getenv("ADDRESSBOOK_DB"); env != "" {
		cfg.Storage.DB = env
	}
}

type yamlConfig struct {
	Storage struct {
		Backend string `yaml:"backend"`
		File    string `yaml:"file"`
		DB      string `yaml:"db"`
	} `yaml:"storage"`

	Pages struct {
		Size *int `yaml:"size"`
	} `yaml:"pages"`

	Log struct {
		Level  string `yaml:"level"`
		File   string `yaml:"file"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// apply copies parsed values on top of cfg.
func (y yamlConfig) apply(cfg *Config) {
	if y.Storage.Backend != "" {
		cfg.Storage.Backend = y.Storage.Backend
	}
	if y.Storage.File != "" {
		cfg.Storage.File = y.Storage.File
	}
	if y.Storage.DB != "" {
		cfg.Storage.DB = y.Storage.DB
	}
	if y.Pages.Size != nil {
		cfg.Pages.Size = *y.Pages.Size
	}
	if y.Log.Level != "" {
		cfg.Log.Level = y.Log.Level
	}
	if y.Log.File != "" {
		cfg.Log.File = y.Log.File
	}
	if y.Log.Format != "" {
		cfg.Log.Format = y.Log.Format
	}
}
