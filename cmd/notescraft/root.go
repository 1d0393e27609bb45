package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/notes-craft/internal/catalog"
	"github.com/nguyentantai21042004/notes-craft/internal/config"
	"github.com/nguyentantai21042004/notes-craft/internal/generator"
	"github.com/nguyentantai21042004/notes-craft/internal/logger"
	"github.com/nguyentantai21042004/notes-craft/internal/notes"
	"github.com/nguyentantai21042004/notes-craft/internal/transcript"
	"github.com/nguyentantai21042004/notes-craft/internal/watcher"
)

const defaultConfigPath = "config.yaml"

var configPath string

var rootCmd = &cobra.Command{
	Use:          "notescraft",
	Short:        "Turn YouTube video transcripts into detailed study notes",
	SilenceUsage: true,
	Version:      version,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $NOTESCRAFT_CONFIG or config.yaml)")
	rootCmd.AddCommand(serveCmd, mcpCmd)
}

// app holds the wired dependencies shared by every subcommand.
type app struct {
	cfg     *config.Config
	log     logger.Logger
	catalog *catalog.Store
	notes   notes.NoteGenerator
	watcher watcher.Watcher
}

// newApp loads configuration and builds the note pipeline. Logs go to out.
func newApp(ctx context.Context, out io.Writer) (*app, error) {
	envErr := config.LoadDotEnv()

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log := logger.NewWithWriter(out, cfg.Logging.Level, cfg.Logging.Format)
	if envErr != nil {
		log.Error(ctx, "Environment variables not loaded.")
		log.Debug(ctx, "%v", envErr)
	} else {
		log.Info(ctx, "Environment variables loaded.")
	}

	keys := cfg.Gemini.APIKeys()
	if len(keys) == 0 {
		log.Error(ctx, "API key not found or empty.")
	}

	store, err := catalog.NewStore(cfg.Catalog.Path, log)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	provider := transcript.New(transcript.Options{
		Timeout:    cfg.Transcript.Timeout,
		MaxRetries: cfg.Transcript.MaxRetries,
		Languages:  cfg.Transcript.Languages,
	}, log)

	model := generator.New(generator.Options{
		APIKeys:           keys,
		Model:             cfg.Gemini.Model,
		Timeout:           cfg.Gemini.Timeout,
		RequestsPerMinute: cfg.Gemini.RequestsPerMinute,
		BaseURL:           cfg.Gemini.BaseURL,
	}, log)

	a := &app{
		cfg:     cfg,
		log:     log,
		catalog: store,
		notes:   notes.New(provider, model, store, log, cfg.Performance.MaxConcurrent),
	}

	if cfg.Catalog.Watch {
		w, err := watcher.New(cfg.Catalog.Path, func(ctx context.Context, _ string) error {
			return store.Reload(ctx)
		}, log, 0)
		if err != nil {
			log.Error(ctx, "Catalog watcher disabled: %v", err)
		} else {
			a.watcher = w
		}
	}

	log.Info(ctx, "App initialized.")
	return a, nil
}

// startWatcher runs the catalog watcher in the background when enabled.
func (a *app) startWatcher(ctx context.Context) {
	if a.watcher == nil {
		return
	}
	go func() {
		if err := a.watcher.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.log.Error(ctx, "Catalog watcher stopped: %v", err)
		}
	}()
}

func (a *app) close() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
}

// loadConfig resolves the config path from the flag, then the environment.
// A missing default file falls back to built-in defaults.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if explicit || !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg = config.Default()
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
