package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML ArenaConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded arena.yaml does not parse: %v", err)
	}

	if !reflect.DeepEqual(fromYAML, DefaultArenaConfig()) {
		t.Errorf("embedded defaults differ from DefaultArenaConfig()\nyaml: %+v\ncode: %+v", fromYAML, DefaultArenaConfig())
	}
}

func TestLoadArenaCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arena.yaml")
	data := []byte("enemies:\n  cap: 42\nprogression:\n  milestones: [5, 15]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadArena(path)
	if err != nil {
		t.Fatalf("LoadArena() error = %v", err)
	}
	if cfg.Enemies.Cap != 42 {
		t.Errorf("Enemies.Cap = %d, expected 42", cfg.Enemies.Cap)
	}
	if !reflect.DeepEqual(cfg.Progression.Milestones, []int{5, 15}) {
		t.Errorf("Milestones = %v, expected [5 15]", cfg.Progression.Milestones)
	}
	// Keys absent from the file keep their defaults
	if cfg.Player.Speed != 6 {
		t.Errorf("Player.Speed = %f, expected default 6", cfg.Player.Speed)
	}
}

func TestLoadArenaErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadArena(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadArena() with a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadArena(bad); err == nil {
		t.Error("LoadArena() with malformed YAML should fail")
	}

	unordered := filepath.Join(dir, "unordered.yaml")
	if err := os.WriteFile(unordered, []byte("progression:\n  milestones: [20, 10]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadArena(unordered); err == nil {
		t.Error("LoadArena() with decreasing milestones should fail validation")
	}
}

func TestApplyArenaPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		cap     int
	}{
		{DifficultyEasy, true, 0.0, 15},
		{DifficultyNormal, true, 0.3, 20},
		{DifficultyHard, true, 0.7, 30},
		{DifficultyFixed, false, 0.0, 20},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultArenaConfig()
			ApplyArenaPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %f, expected %f", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Enemies.Cap != tc.cap {
				t.Errorf("Enemies.Cap = %d, expected %d", cfg.Enemies.Cap, tc.cap)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := map[string]DifficultyPreset{
		"easy":   DifficultyEasy,
		"normal": DifficultyNormal,
		"hard":   DifficultyHard,
		"fixed":  DifficultyFixed,
		"insane": DifficultyFixed,
		"":       DifficultyFixed,
	}
	for in, want := range tests {
		if got := ParsePreset(in); got != want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", in, got, want)
		}
	}
}
