package config

import "math"

// DifficultyManager calculates dynamic arena parameters based on experience/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty scaling is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
// A disabled manager reports level 0 so base tuning applies unchanged.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	// Clamp progress to [0, 1]
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the enemy speed scaled by the difficulty level.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	// Speed increases from base to base * (1 + speedMultiplier)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// Interval returns a spawn interval shortened by the difficulty level,
// never below floor.
func (d *DifficultyManager) Interval(base, floor float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	reduction := clampF(level*d.cfg.Scaling.IntervalReduction, 0.0, 1.0)
	return math.Max(floor, base*(1.0-reduction))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
