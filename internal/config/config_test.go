package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		AI: AIConfig{
			APIKey:  "AIzaSy-test-key",
			Model:   DefaultModel,
			BaseURL: DefaultBaseURL,
			Timeout: 30,
		},
		Paths: PathsConfig{
			DataDir:   "data",
			ExportDir: "data/exports",
		},
		Storage: StorageConfig{Backend: BackendFile},
		Limits:  DefaultLimits(),
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:   "empty API key is allowed",
			mutate: func(c *Config) { c.AI.APIKey = "" },
		},
		{
			name:    "invalid base URL",
			mutate:  func(c *Config) { c.AI.BaseURL = "not-a-url" },
			wantErr: true,
			errMsg:  "BaseURL",
		},
		{
			name:   "timeout at upper bound",
			mutate: func(c *Config) { c.AI.Timeout = 3600 },
		},
		{
			name:    "timeout too high",
			mutate:  func(c *Config) { c.AI.Timeout = 5000 },
			wantErr: true,
			errMsg:  "Timeout",
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.Storage.Backend = "postgres" },
			wantErr: true,
			errMsg:  "Backend",
		},
		{
			name: "burst too high",
			mutate: func(c *Config) {
				c.Limits.RateLimit.BurstSize = 500
			},
			wantErr: true,
			errMsg:  "BurstSize",
		},
		{
			name:    "missing model",
			mutate:  func(c *Config) { c.AI.Model = "" },
			wantErr: true,
			errMsg:  "Model",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil && tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("validate() error = %v, want error containing %q", err, tt.errMsg)
			}
		})
	}
}

func TestValidateFillsDerivedPaths(t *testing.T) {
	cfg := validConfig()
	cfg.Paths.ExportDir = ""
	cfg.Storage.SQLitePath = ""

	if err := cfg.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if want := filepath.Join("data", "exports"); cfg.Paths.ExportDir != want {
		t.Errorf("ExportDir = %q, want %q", cfg.Paths.ExportDir, want)
	}
	if want := filepath.Join("data", "quill.db"); cfg.Storage.SQLitePath != want {
		t.Errorf("SQLitePath = %q, want %q", cfg.Storage.SQLitePath, want)
	}
}

func TestValidateDefaultsRateLimitOnly(t *testing.T) {
	cfg := validConfig()
	cfg.Limits = Limits{MaxPromptSize: 50000}

	if err := cfg.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.Limits.MaxPromptSize != 50000 {
		t.Errorf("MaxPromptSize = %d, want the configured 50000", cfg.Limits.MaxPromptSize)
	}
	if cfg.Limits.RateLimit != DefaultLimits().RateLimit {
		t.Errorf("RateLimit = %+v, want defaults", cfg.Limits.RateLimit)
	}
}

func TestValidateDefaultsMissingPromptSize(t *testing.T) {
	cfg := validConfig()
	cfg.Limits.MaxPromptSize = 0

	if err := cfg.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.Limits.MaxPromptSize != DefaultLimits().MaxPromptSize {
		t.Errorf("MaxPromptSize = %d, want default", cfg.Limits.MaxPromptSize)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUILL_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "from-api-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AI.Model != DefaultModel {
		t.Errorf("Model = %q, want %q", cfg.AI.Model, DefaultModel)
	}
	if cfg.AI.APIKey != "from-api-key" {
		t.Errorf("APIKey = %q, want fallback env value", cfg.AI.APIKey)
	}
	if want := filepath.Join(dir, "data", "quill"); cfg.Paths.DataDir != want {
		t.Errorf("DataDir = %q, want %q", cfg.Paths.DataDir, want)
	}
	if cfg.Storage.Backend != BackendFile {
		t.Errorf("Backend = %q, want file", cfg.Storage.Backend)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
ai:
  api_key: ${GEMINI_API_KEY}
  model: gemini-2.5-pro
paths:
  data_dir: ` + filepath.Join(dir, "store") + `
storage:
  backend: sqlite
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GEMINI_API_KEY", "gemini-secret")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AI.APIKey != "gemini-secret" {
		t.Errorf("APIKey = %q, want placeholder resolved from env", cfg.AI.APIKey)
	}
	if cfg.AI.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %q", cfg.AI.Model)
	}
	if cfg.AI.Timeout != 120 {
		t.Errorf("Timeout = %d, want default 120", cfg.AI.Timeout)
	}
	if cfg.Storage.SQLitePath != filepath.Join(dir, "store", "quill.db") {
		t.Errorf("SQLitePath = %q", cfg.Storage.SQLitePath)
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for explicit missing config")
	}
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	path := filepath.Join(dir, "quill", "config.yaml")

	if _, err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "${GEMINI_API_KEY}") {
		t.Errorf("expected placeholder key in written config:\n%s", raw)
	}
	if _, err := WriteDefault(path); err == nil {
		t.Error("expected error when config already exists")
	}
}

func TestSetDataDirMovesDerivedPaths(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.SQLitePath = ""
	if err := cfg.validate(); err != nil {
		t.Fatal(err)
	}

	cfg.SetDataDir("elsewhere")
	if cfg.Paths.ExportDir != filepath.Join("elsewhere", "exports") {
		t.Errorf("ExportDir = %q", cfg.Paths.ExportDir)
	}
	if cfg.Storage.SQLitePath != filepath.Join("elsewhere", "quill.db") {
		t.Errorf("SQLitePath = %q", cfg.Storage.SQLitePath)
	}
}

func TestDefaultLimits(t *testing.T) {
	cfg := validConfig()
	cfg.Limits = DefaultLimits()

	if err := cfg.validate(); err != nil {
		t.Errorf("DefaultLimits() should produce valid config, got error: %v", err)
	}
	// A story prompt embedding a few hundred archived memories stays well under the default.
	if got := DefaultLimits().MaxPromptSize; got < 500000 {
		t.Errorf("MaxPromptSize default = %d, want room for large archives", got)
	}
}
