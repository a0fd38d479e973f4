package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the default arena configuration.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		World: ArenaWorld{
			Width:          4000,
			Height:         4000,
			InitialEnemies: 20,
			InitialClears:  5,
			InitialMagnets: 3,
		},
		Player: ArenaPlayer{
			Speed:     6,
			Radius:    20,
			MaxHealth: 100,
			Skins:     4,
		},
		Enemies: ArenaEnemies{
			Cap:              20,
			Speed:            1.5,
			Radius:           22,
			MaxHealth:        100,
			Damage:           2,
			BiteCooldown:     1000,
			AttackRefresh:    500,
			SpawnInterval:    750,
			MinSpawnInterval: 100,
			SafeRadius:       800,
			SpawnAttempts:    64,
		},
		Elite: ArenaElite{
			Health:      2000,
			Damage:      10,
			Scale:       2.5,
			SpeedFactor: 0.7,
			Milestone:   50,
			BonusGems:   10,
		},
		Weapon: ArenaWeapon{
			FireInterval:     400,
			FastFireInterval: 300,
			BulletSpeed:      25,
			BulletRadius:     10,
			MaxDistance:      1000,
			MuzzleOffset:     25,
			DamageFraction:   0.2,
			SpreadAngle:      0.1,
		},
		Pickups: ArenaPickups{
			Radius:        40,
			ChargeRadius:  65,
			ClearRespawn:  10000,
			MagnetRespawn: 30000,
			MagnetSpeed:   15,
			HealAmount:    10,
		},
		Progression: ArenaProgression{
			Milestones:    []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 120, 150, 200, 250, 300, 350, 400, 500},
			OfferSize:     3,
			PremiumCost:   2,
			XPPerCurrency: 25,
		},
		Camera: ArenaCamera{
			Zoom:     0.25,
			ZoomStep: 0.005,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.6,
				IntervalReduction: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default arena YAML.
func DefaultYAML() []byte {
	return defaultArenaYAML
}
