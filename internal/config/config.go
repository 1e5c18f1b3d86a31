package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	FileName     = "config.toml"
	DefaultModel = "claude-3-haiku-20240307"
)

type Config struct {
	// Home is the directory holding config.toml, the data directory and the
	// log file. It is never written to the file itself.
	Home    string        `toml:"-"`
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
	AI      AIConfig      `toml:"ai"`
}

type StorageConfig struct {
	Backend string `toml:"backend"`
	DSN     string `toml:"dsn,omitempty"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type AIConfig struct {
	APIKey string `toml:"api_key,omitempty"`
	Model  string `toml:"model"`
}

func Default(home string) *Config {
	return &Config{
		Home:    home,
		Storage: StorageConfig{Backend: "file"},
		Log:     LogConfig{Level: "info"},
		AI:      AIConfig{Model: DefaultModel},
	}
}

// HomeDir resolves the welltrack home: WELLTRACK_HOME, else ~/welltrack.
func HomeDir() (string, error) {
	if h := strings.TrimSpace(os.Getenv("WELLTRACK_HOME")); h != "" {
		return h, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: home dir: %w", err)
	}
	return filepath.Join(homeDir, "welltrack"), nil
}

// Load reads .env, the config file and environment overrides, in that order
// of precedence (lowest first), and validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	home, err := HomeDir()
	if err != nil {
		return nil, err
	}
	cfg, err := ReadFile(home)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadFile loads home/config.toml over the defaults without consulting the
// environment. A missing file yields the defaults.
func ReadFile(home string) (*Config, error) {
	cfg := Default(home)
	data, err := os.ReadFile(cfg.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", cfg.Path(), err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", cfg.Path(), err)
	}
	cfg.Home = home
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("WELLTRACK_STORAGE"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("WELLTRACK_DSN"); v != "" {
		c.Storage.DSN = v
	}
	if v := os.Getenv("WELLTRACK_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		c.AI.APIKey = v
	}
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "file", "sqlite", "memory":
	case "postgres":
		if c.Storage.DSN == "" {
			return errors.New("config: storage.dsn (or WELLTRACK_DSN) is required when storage.backend = postgres")
		}
	default:
		return fmt.Errorf("config: storage.backend must be one of file, sqlite, postgres, memory; got %q", c.Storage.Backend)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	return nil
}

func (c *Config) Path() string    { return filepath.Join(c.Home, FileName) }
func (c *Config) DataDir() string { return filepath.Join(c.Home, "data") }
func (c *Config) LogPath() string { return filepath.Join(c.Home, "welltrack.log") }

// Save writes the config file with owner-only permissions since it may hold
// an API key.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.Home, 0o755); err != nil {
		return fmt.Errorf("config: create %s: %w", c.Home, err)
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return os.WriteFile(c.Path(), data, 0o600)
}
