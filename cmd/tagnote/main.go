package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"tagnote/internal/config"
	"tagnote/internal/storage"
	"tagnote/internal/ui"
)

func main() {
	configPath := config.ResolveConfigPath()
	firstLaunch := false
	if _, err := os.Stat(configPath); err != nil {
		firstLaunch = errors.Is(err, os.ErrNotExist)
	}
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		fmt.Printf("failed to open log: %v\n", err)
		os.Exit(1)
	}

	repo, err := storage.Open(cfg.Backend, cfg.StorePath(), firstLaunch)
	if err != nil {
		fmt.Printf("failed to open notes: %v\n", err)
		os.Exit(1)
	}
	list, err := repo.Load()
	if err != nil {
		fmt.Printf("failed to load notes: %v\n", err)
		os.Exit(1)
	}
	logger.Info("notes loaded", slog.String("backend", cfg.Backend),
		slog.String("path", cfg.StorePath()), slog.Int("count", len(list)))

	// Errors from the running program are reported, not turned into an
	// exit status.
	runErr := ui.Run(repo, cfg, logger, list)
	if runErr != nil {
		logger.Error("exiting", slog.String("error", runErr.Error()))
	}
	repo.Close()
	closeLog()
	if runErr != nil {
		fmt.Printf("error: %v\n", runErr)
	}
}

// openLogger writes to the configured log file; the terminal belongs to the
// UI while it runs.
func openLogger(cfg config.Config) (*slog.Logger, func(), error) {
	if cfg.LogPath == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	return logger, func() { f.Close() }, nil
}
