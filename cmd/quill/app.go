package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Evrosil/The-Aetherial-Quill/internal/agent"
	"github.com/Evrosil/The-Aetherial-Quill/internal/config"
	"github.com/Evrosil/The-Aetherial-Quill/internal/muse"
	"github.com/Evrosil/The-Aetherial-Quill/internal/state"
	"github.com/Evrosil/The-Aetherial-Quill/internal/storage"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	dataDir    string
	backend    string
	debug      bool
}

// app is everything a command needs, wired from the configuration.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   *state.Store
	muse    *muse.Muse
	exports *storage.FileSystem
	closers []func() error
}

// newAIClient builds the model client. It yields a nil client, not an error,
// when no credential is configured; every model call then reports the
// missing credential. Tests replace it.
var newAIClient = func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (agent.AIClient, error) {
	if !cfg.HasCredential() {
		return nil, nil
	}
	client, err := agent.NewClient(ctx, cfg.AI.APIKey,
		agent.WithAPIConfig(cfg.AI.BaseURL, cfg.AI.Model),
		agent.WithTimeout(time.Duration(cfg.AI.Timeout)*time.Second),
		agent.WithRateLimit(cfg.Limits.RateLimit.RequestsPerMinute, cfg.Limits.RateLimit.BurstSize),
		agent.WithMaxPromptSize(cfg.Limits.MaxPromptSize),
		agent.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func loadConfig(flags *globalFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.dataDir != "" {
		cfg.SetDataDir(flags.dataDir)
	}
	if flags.backend != "" {
		switch flags.backend {
		case config.BackendFile, config.BackendSQLite:
			cfg.Storage.Backend = flags.backend
		default:
			return nil, fmt.Errorf("unknown backend %q (want %s or %s)", flags.backend, config.BackendFile, config.BackendSQLite)
		}
	}
	return cfg, nil
}

// newLogger writes text logs to w, at debug level when asked.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func openApp(ctx context.Context, flags *globalFlags, logger *slog.Logger) (*app, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	a := &app{cfg: cfg, logger: logger}

	kv, err := a.openKV()
	if err != nil {
		return nil, err
	}

	a.store = state.New(kv, state.WithLogger(logger))
	if err := a.store.Load(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("loading state: %w", err)
	}

	client, err := newAIClient(ctx, cfg, logger)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("creating model client: %w", err)
	}
	a.muse = muse.New(agent.NewAgentFactory(client, logger), muse.WithLogger(logger))
	a.exports = storage.NewFileSystem(cfg.Paths.ExportDir)

	logger.Debug("app ready",
		"backend", cfg.Storage.Backend,
		"data_dir", cfg.Paths.DataDir,
		"model", cfg.AI.Model,
		"credential", cfg.HasCredential())
	return a, nil
}

func (a *app) openKV() (storage.KV, error) {
	if a.cfg.Storage.Backend != config.BackendSQLite {
		return storage.NewFileSystem(a.cfg.Paths.DataDir), nil
	}
	if err := os.MkdirAll(filepath.Dir(a.cfg.Storage.SQLitePath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	db, err := storage.OpenSQLite(a.cfg.Storage.SQLitePath)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, db.Close)
	return db, nil
}

func (a *app) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Warn("closing", "error", err)
		}
	}
	a.closers = nil
}
