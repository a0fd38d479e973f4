package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const arenaFile = "arena.yaml"

// LoadArena loads the arena configuration.
// Search order: customPath -> ~/.arena/configs/arena.yaml -> ./configs/arena.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func LoadArena(customPath string) (ArenaConfig, error) {
	cfg := DefaultArenaConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultArenaConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(arenaFile), filepath.Join("configs", arenaFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fromFile := DefaultArenaConfig()
		if err := yaml.Unmarshal(data, &fromFile); err == nil && fromFile.Validate() == nil {
			return fromFile, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultArenaYAML, &cfg); err != nil {
		return DefaultArenaConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Validate reports values the simulation cannot run with.
func (c ArenaConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world must have positive size, got %gx%g", c.World.Width, c.World.Height)
	case c.Player.MaxHealth <= 0:
		return fmt.Errorf("config: player max_health must be positive")
	case c.Enemies.MaxHealth <= 0:
		return fmt.Errorf("config: enemies max_health must be positive")
	case c.Enemies.SpawnAttempts <= 0:
		return fmt.Errorf("config: enemies spawn_attempts must be positive")
	case c.Elite.Milestone <= 0:
		return fmt.Errorf("config: elite milestone must be positive")
	case c.Camera.Zoom <= 0:
		return fmt.Errorf("config: camera zoom must be positive")
	}
	for i := 1; i < len(c.Progression.Milestones); i++ {
		if c.Progression.Milestones[i] <= c.Progression.Milestones[i-1] {
			return fmt.Errorf("config: milestones must be strictly increasing at index %d", i)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arena", "configs", filename)
}

// ApplyArenaPreset modifies the config based on a difficulty preset.
func ApplyArenaPreset(cfg *ArenaConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the population based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.Cap = 15
		cfg.World.InitialEnemies = 10
	case DifficultyHard:
		cfg.Enemies.Cap = 30
		cfg.Enemies.Damage *= 1.5
	}
}
