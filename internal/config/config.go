package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const allCategories = "すべて"

type Storage struct {
	Backend string `yaml:"backend"` // "sqlite" or "file"
	Path    string `yaml:"path"`
}

type Log struct {
	Dir   string `yaml:"dir"`
	Debug bool   `yaml:"debug"`
}

type Config struct {
	Storage        Storage `yaml:"storage"`
	Log            Log     `yaml:"log"`
	Catalog        string  `yaml:"catalog"`
	MinCredibility float64 `yaml:"min_credibility"`
	Category       string  `yaml:"category"`
}

// StoragePath returns the configured storage location or the XDG default
// for the backend.
func (c *Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	if c.Storage.Backend == "file" {
		return filepath.Join(xdg.DataHome, "yami", "state.json")
	}
	return filepath.Join(xdg.DataHome, "yami", "yami.db")
}

// StartCategory returns the initial category, defaulting to all categories.
func (c *Config) StartCategory() string {
	if strings.TrimSpace(c.Category) == "" {
		return allCategories
	}
	return c.Category
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "yami", "config.yaml")
}

// LogDir returns the configured log directory or $XDG_STATE_HOME/yami.
func (c *Config) LogDir() string {
	if c.Log.Dir != "" {
		return c.Log.Dir
	}
	return filepath.Join(xdg.StateHome, "yami")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads path (or the default location) over the embedded defaults,
// then applies YAMI_* environment overrides.
func Load(path string) (*Config, error) {
	cfg, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Write defaults to config path on first run; failure is non-fatal.
		_ = writeDefaults(path)
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("YAMI_STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("YAMI_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("YAMI_CATALOG"); v != "" {
		cfg.Catalog = v
	}
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	switch cfg.Storage.Backend {
	case "":
		cfg.Storage.Backend = "sqlite"
	case "sqlite", "file", "memory":
	default:
		return fmt.Errorf("storage: unknown backend %q (valid: sqlite, file, memory)", cfg.Storage.Backend)
	}
	if cfg.MinCredibility < 0 || cfg.MinCredibility > 5 {
		return fmt.Errorf("min_credibility must be within [0,5], got %v", cfg.MinCredibility)
	}
	return nil
}
