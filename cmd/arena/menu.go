package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arena/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arena with the main menu",
	Long: `Start the arena in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a run ends, B returns to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scores
  Q            - Quit

Examples:
  arena menu
  arena menu --fps 30
  arena menu --db ./arena.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger("arena")
	if err != nil {
		return err
	}
	defer closer.Close()

	arena, err := loadArenaConfig()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.MenuScores:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case tui.MenuPlay:
			run := cfg
			if flagSeed == 0 {
				run.Seed = time.Now().UnixNano()
			}
			err := tui.Run(tui.Options{
				Arena:   arena,
				Runtime: run,
				Store:   store,
				Logger:  logger,
			})
			if err != nil {
				logger.Error("run failed", "err", err)
			}

		default:
			return nil
		}
	}
}
