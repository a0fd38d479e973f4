package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arena/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a survival run directly.

Controls:
  W/A/S/D, arrows  - Move (forward/back along facing, strafe)
  Mouse            - Aim; the player faces the pointer
  P/Space          - Start, pause and resume
  I/+ O/-          - Zoom in / out
  1-5, Enter       - Pick an ability at a level up
  R                - Restart (after defeat)
  B/Esc            - Back (pauses a running game)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Smaller horde, difficulty ramps up from zero
  normal - Ramps up from 30%
  hard   - Larger, harder-hitting horde, ramps up from 70%
  fixed  - No ramp, base tuning throughout

Examples:
  arena play
  arena play --difficulty easy
  arena play --seed 42 --fps 30
  arena play --config ./my-arena.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
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

	logger.Info("starting run", "difficulty", flagDifficulty, "seed", flagSeed, "fps", flagFPS)
	return tui.Run(tui.Options{
		Arena:   arena,
		Runtime: runtimeConfig(),
		Store:   store,
		Logger:  logger,
	})
}
