package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Evrosil/The-Aetherial-Quill/internal/config"
	"github.com/Evrosil/The-Aetherial-Quill/internal/scriptorium"
	"github.com/Evrosil/The-Aetherial-Quill/internal/tui"
)

const debugLogName = "quill-debug.log"

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "quill",
		Short: "The Aetherial Quill - a Victorian companion for writers",
		Long: `The Aetherial Quill keeps an archive of characters, settings, storylines
and narrative styles, inscribes short fiction from them with Gemini, and
collects the words you learn along the way.

Run without arguments to open the interactive scriptorium.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), flags)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/quill/config.yaml)")
	pf.StringVar(&flags.dataDir, "data-dir", "", "Directory for the archive, lexicon and exports")
	pf.StringVar(&flags.backend, "backend", "", "State backend: file or sqlite")
	pf.BoolVar(&flags.debug, "debug", false, "Enable debug logging")

	root.AddCommand(
		newInitCmd(flags),
		newMemoryCmd(flags),
		newGenerateCmd(flags),
		newLexiconCmd(flags),
		newLangCmd(flags),
	)
	return root
}

// withApp opens the app for one command and closes it afterwards.
func withApp(flags *globalFlags, fn func(ctx context.Context, cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		a, err := openApp(ctx, flags, newLogger(cmd.ErrOrStderr(), flags.debug))
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(ctx, cmd, args, a)
	}
}

func runInteractive(ctx context.Context, flags *globalFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// The terminal belongs to the UI; logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flags.debug {
		cfg, err := loadConfig(flags)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := os.MkdirAll(cfg.Paths.DataDir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
		f, err := os.OpenFile(filepath.Join(cfg.Paths.DataDir, debugLogName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, flags.debug)

	a, err := openApp(ctx, flags, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	ws := scriptorium.New(a.muse, a.store, a.exports, a.store.Language(), scriptorium.WithLogger(logger))
	return tui.Run(tui.New(ctx, a.store, a.muse, ws, tui.WithLogger(logger)))
}

func newInitCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Long: `Writes a config file with the defaults filled in. The API key is written
as ${GEMINI_API_KEY} so the secret stays in your environment or .env file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flags.configPath
			if path == "" {
				path = config.Path()
			}
			cfg, err := config.WriteDefault(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config written to %s\n", path)
			fmt.Fprintf(out, "Data directory: %s\n", cfg.Paths.DataDir)
			fmt.Fprintln(out, "The API key is read from GEMINI_API_KEY.")
			return nil
		},
	}
}
