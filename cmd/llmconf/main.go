// Package main provides the llmconf CLI: inspect and edit persisted LLM
// provider settings.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/llmconf/metrics"
	"github.com/randalmurphal/llmconf/model"
	"github.com/randalmurphal/llmconf/settings"
	"github.com/randalmurphal/llmconf/store"
)

var version = "0.1.0"

// app holds the state shared by every command for one invocation.
type app struct {
	configPath string
	sqlitePath string
	applyEnv   bool
	verbose    bool

	svc      *settings.Service
	store    store.Store
	file     *store.FileStore // nil when backed by SQLite
	registry *prometheus.Registry
	closer   func() error
}

func main() {
	rootCmd, a := newRootCmd()
	if err := execute(rootCmd, a); err != nil {
		os.Exit(1)
	}
}

// execute runs the command tree and closes the store afterwards. Cobra skips
// post-run hooks when a command fails, so closing happens here.
func execute(rootCmd *cobra.Command, a *app) error {
	err := rootCmd.Execute()
	return errors.Join(err, a.close())
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "llmconf",
		Short: "Inspect and edit LLM provider settings",
		Long: `llmconf reads and writes the persisted settings of a multi-provider
LLM client: API keys, local endpoints, generation parameters, custom prompts,
and per-model cost and context window overrides.

Settings live in a single file (JSON, YAML or TOML, picked by extension) or
in a SQLite database when --sqlite is given.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", store.DefaultPath(), "settings file (.json, .yaml, .yml or .toml)")
	rootCmd.PersistentFlags().StringVar(&a.sqlitePath, "sqlite", "", "SQLite database to use instead of a settings file")
	rootCmd.PersistentFlags().BoolVar(&a.applyEnv, "env", false, "overlay "+settings.EnvPrefix+"* environment variables (never persisted)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		costCmd(a),
		windowCmd(a),
		promptsCmd(a),
		modelsCmd(a),
		paramsCmd(a),
		estimateCmd(a),
		fitCmd(a),
		schemaCmd(),
		watchCmd(a),
	)
	return rootCmd, a
}

// open selects the backend and restores the service from it.
func (a *app) open(ctx context.Context) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	a.registry = prometheus.NewRegistry()
	collector, err := metrics.NewCollector(a.registry)
	if err != nil {
		return err
	}

	a.svc = settings.New(
		settings.WithLogger(logger),
		settings.WithObserver(collector),
		settings.WithWindowRegistry(model.NewCatalogRegistry()),
	)

	if a.sqlitePath != "" {
		s, err := store.NewSQLiteStore(a.sqlitePath)
		if err != nil {
			return err
		}
		a.store = s
		a.closer = s.Close
	} else {
		fs, err := store.NewFileStore(a.configPath)
		if err != nil {
			return err
		}
		a.store = fs
		a.file = fs
	}

	if err := store.Restore(ctx, a.store, a.svc); err != nil {
		return err
	}
	if a.applyEnv {
		a.svc.Update(func(st *settings.State) { st.LoadFromEnv() })
	}
	return nil
}

// close releases the backend. It is safe to call more than once.
func (a *app) close() error {
	if a.closer == nil {
		return nil
	}
	closer := a.closer
	a.closer = nil
	return closer()
}

// save validates and persists the current settings.
func (a *app) save(ctx context.Context) error {
	if a.applyEnv {
		return fmt.Errorf("refusing to save with --env: environment values would be persisted")
	}
	if err := a.svc.State().Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return store.Persist(ctx, a.store, a.svc)
}
