package config

import (
	"math"
	"testing"
)

func TestDifficultyDisabledKeepsBaseTuning(t *testing.T) {
	d := NewDifficultyManager(DefaultArenaConfig().Difficulty)

	if got := d.Speed(1.5, 400, 10000); got != 1.5 {
		t.Errorf("Speed() = %f, expected unscaled 1.5", got)
	}
	if got := d.Interval(750, 100, 400, 10000); got != 750 {
		t.Errorf("Interval() = %f, expected unscaled 750", got)
	}
}

func TestDifficultyLevelInterpolates(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, IntervalReduction: 0.5},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.5},
		{50, 0.75},
		{100, 1.0},
		{1000, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %f, expected %f", tc.score, got, tc.expected)
		}
	}

	if got := d.Speed(2, 100, 0); got != 4 {
		t.Errorf("Speed() at max = %f, expected 4", got)
	}
	if got := d.Interval(800, 100, 100, 0); got != 400 {
		t.Errorf("Interval() at max = %f, expected 400", got)
	}
	if got := d.Interval(150, 100, 100, 0); got != 100 {
		t.Errorf("Interval() should respect the floor, got %f", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
	})

	if got := d.Level(9999, 300); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level() = %f, expected 0.5 from ticks only", got)
	}
}
