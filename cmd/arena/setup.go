package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/storage"
)

// newLogger builds the process logger from --log-level and --log-file.
// The returned closer releases the log file.
func newLogger(prefix string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var (
		out    io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if flagLogFile != "" && flagLogFile != "-" {
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// loadArenaConfig loads the arena config and applies the --difficulty preset.
func loadArenaConfig() (config.ArenaConfig, error) {
	cfg, err := config.LoadArena(flagConfig)
	if err != nil {
		return config.ArenaConfig{}, err
	}
	if flagDifficulty != "" {
		config.ApplyArenaPreset(&cfg, config.ParsePreset(flagDifficulty))
	}
	return cfg, nil
}

// runtimeConfig sizes the run to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the runs database. Failures are logged and the game
// continues without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
