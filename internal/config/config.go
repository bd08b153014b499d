// Package config loads the quill configuration from .env, a YAML file and the
// environment, in that order of precedence (environment wins for the API key).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultBaseURL = "https://generativelanguage.googleapis.com/"

	BackendFile   = "file"
	BackendSQLite = "sqlite"

	appName = "quill"
)

// apiKeyEnv lists the variables consulted for the credential, first match wins.
var apiKeyEnv = []string{"GEMINI_API_KEY", "API_KEY"}

type Config struct {
	AI      AIConfig      `yaml:"ai" validate:"required"`
	Paths   PathsConfig   `yaml:"paths" validate:"required"`
	Storage StorageConfig `yaml:"storage" validate:"required"`
	Limits  Limits        `yaml:"limits" validate:"required"`
}

type AIConfig struct {
	// APIKey may be empty; operations then fail with a missing credential.
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model" validate:"required"`
	BaseURL string `yaml:"base_url" validate:"required,url"`
	Timeout int    `yaml:"timeout" validate:"required,min=10,max=3600"`
}

type PathsConfig struct {
	DataDir   string `yaml:"data_dir" validate:"required"`
	ExportDir string `yaml:"export_dir" validate:"required"`
}

type StorageConfig struct {
	Backend string `yaml:"backend" validate:"required,oneof=file sqlite"`
	// SQLitePath defaults to <data_dir>/quill.db.
	SQLitePath string `yaml:"sqlite_path"`
}

// Load reads the configuration. An explicit path (from --config) overrides
// discovery. A missing file is not an error: defaults apply.
func Load(explicitPath string) (*Config, error) {
	_ = godotenv.Load()

	configPath := explicitPath
	if configPath == "" {
		configPath = Path()
	}

	cfg := Default()
	data, err := os.ReadFile(expandTilde(configPath))
	switch {
	case os.IsNotExist(err) && explicitPath == "":
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if cfg.AI.APIKey == "" || strings.HasPrefix(cfg.AI.APIKey, "${") {
		cfg.AI.APIKey = apiKeyFromEnv()
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func apiKeyFromEnv() string {
	for _, name := range apiKeyEnv {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

// Path is the discovered config file location.
func Path() string {
	// 1. Explicit config path via environment variable
	if path := os.Getenv("QUILL_CONFIG"); path != "" {
		return path
	}

	// 2. XDG_CONFIG_HOME
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, appName, "config.yaml")
	}

	// 3. ~/.config/quill/config.yaml
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName, "config.yaml")
}

func dataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", appName)
}

// Default is a complete configuration with no credential.
func Default() *Config {
	return &Config{
		AI: AIConfig{
			Model:   DefaultModel,
			BaseURL: DefaultBaseURL,
			Timeout: 120,
		},
		Storage: StorageConfig{Backend: BackendFile},
		Limits:  DefaultLimits(),
	}
}

// expandTilde expands a tilde (~) at the beginning of a path to the user's home directory
func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

func (c *Config) validate() error {
	if c.Paths.DataDir == "" {
		c.Paths.DataDir = dataHome()
	} else {
		c.Paths.DataDir = expandTilde(c.Paths.DataDir)
	}

	if c.Paths.ExportDir == "" {
		c.Paths.ExportDir = filepath.Join(c.Paths.DataDir, "exports")
	} else {
		c.Paths.ExportDir = expandTilde(c.Paths.ExportDir)
	}

	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendFile
	}
	if c.Storage.SQLitePath == "" {
		c.Storage.SQLitePath = filepath.Join(c.Paths.DataDir, "quill.db")
	} else {
		c.Storage.SQLitePath = expandTilde(c.Storage.SQLitePath)
	}

	defaults := DefaultLimits()
	if c.Limits.MaxPromptSize == 0 {
		c.Limits.MaxPromptSize = defaults.MaxPromptSize
	}
	if c.Limits.RateLimit.RequestsPerMinute == 0 {
		c.Limits.RateLimit = defaults.RateLimit
	}

	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// HasCredential reports whether an API key is configured.
func (c *Config) HasCredential() bool {
	return strings.TrimSpace(c.AI.APIKey) != ""
}

// SetDataDir relocates the data directory and everything derived from it.
func (c *Config) SetDataDir(dir string) {
	dir = expandTilde(dir)
	if c.Paths.ExportDir == filepath.Join(c.Paths.DataDir, "exports") {
		c.Paths.ExportDir = filepath.Join(dir, "exports")
	}
	if c.Storage.SQLitePath == filepath.Join(c.Paths.DataDir, "quill.db") {
		c.Storage.SQLitePath = filepath.Join(dir, "quill.db")
	}
	c.Paths.DataDir = dir
}

// WriteDefault writes a starter config file to path. The key is stored as an
// environment placeholder, never in clear.
func WriteDefault(path string) (*Config, error) {
	path = expandTilde(path)
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("config already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	cfg := Default()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	toSave := *cfg
	toSave.AI.APIKey = "${GEMINI_API_KEY}"

	data, err := yaml.Marshal(&toSave)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("writing config: %w", err)
	}
	return cfg, nil
}
