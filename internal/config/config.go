// Package config provides YAML-based arena configuration loading and
// difficulty management for the survival simulation.
package config

// ArenaConfig contains all tunables for the survival arena.
// Distances are world units, durations are milliseconds and speeds are
// world units per tick.
type ArenaConfig struct {
	World       ArenaWorld       `yaml:"world"`
	Player      ArenaPlayer      `yaml:"player"`
	Enemies     ArenaEnemies     `yaml:"enemies"`
	Elite       ArenaElite       `yaml:"elite"`
	Weapon      ArenaWeapon      `yaml:"weapon"`
	Pickups     ArenaPickups     `yaml:"pickups"`
	Progression ArenaProgression `yaml:"progression"`
	Camera      ArenaCamera      `yaml:"camera"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// ArenaWorld defines the world bounds and the starting population.
type ArenaWorld struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	InitialEnemies int     `yaml:"initial_enemies"`
	InitialClears  int     `yaml:"initial_clears"`
	InitialMagnets int     `yaml:"initial_magnets"`
}

// ArenaPlayer defines player parameters.
type ArenaPlayer struct {
	Speed     float64 `yaml:"speed"`
	Radius    float64 `yaml:"radius"`
	MaxHealth float64 `yaml:"max_health"`
	Skins     int     `yaml:"skins"`
}

// ArenaEnemies defines standard enemy and trickle spawn parameters.
type ArenaEnemies struct {
	Cap              int     `yaml:"cap"`
	Speed            float64 `yaml:"speed"`
	Radius           float64 `yaml:"radius"`
	MaxHealth        float64 `yaml:"max_health"`
	Damage           float64 `yaml:"damage"`
	BiteCooldown     float64 `yaml:"bite_cooldown_ms"`
	AttackRefresh    float64 `yaml:"attack_refresh_ms"`
	SpawnInterval    float64 `yaml:"spawn_interval_ms"`
	MinSpawnInterval float64 `yaml:"min_spawn_interval_ms"`
	SafeRadius       float64 `yaml:"safe_radius"`
	SpawnAttempts    int     `yaml:"spawn_attempts"`
}

// ArenaElite defines the reinforced enemy introduced at experience milestones.
type ArenaElite struct {
	Health      float64 `yaml:"health"`
	Damage      float64 `yaml:"damage"`
	Scale       float64 `yaml:"scale"`
	SpeedFactor float64 `yaml:"speed_factor"`
	Milestone   int     `yaml:"milestone"`
	BonusGems   int     `yaml:"bonus_gems"`
}

// ArenaWeapon defines the auto-aimed projectile weapon.
type ArenaWeapon struct {
	FireInterval     float64 `yaml:"fire_interval_ms"`
	FastFireInterval float64 `yaml:"fast_fire_interval_ms"`
	BulletSpeed      float64 `yaml:"bullet_speed"`
	BulletRadius     float64 `yaml:"bullet_radius"`
	MaxDistance      float64 `yaml:"max_distance"`
	MuzzleOffset     float64 `yaml:"muzzle_offset"`
	DamageFraction   float64 `yaml:"damage_fraction"`
	SpreadAngle      float64 `yaml:"spread_angle"`
}

// ArenaPickups defines pickup radii and respawn delays.
type ArenaPickups struct {
	Radius        float64 `yaml:"radius"`
	ChargeRadius  float64 `yaml:"charge_radius"`
	ClearRespawn  float64 `yaml:"clear_respawn_ms"`
	MagnetRespawn float64 `yaml:"magnet_respawn_ms"`
	MagnetSpeed   float64 `yaml:"magnet_speed"`
	HealAmount    float64 `yaml:"heal_amount"`
}

// ArenaProgression defines level-up milestones and currency rules.
type ArenaProgression struct {
	Milestones    []int `yaml:"milestones"`
	OfferSize     int   `yaml:"offer_size"`
	PremiumCost   int   `yaml:"premium_cost"`
	XPPerCurrency int   `yaml:"xp_per_currency"`
}

// ArenaCamera defines the zoom range and step.
type ArenaCamera struct {
	Zoom     float64 `yaml:"zoom"`
	ZoomStep float64 `yaml:"zoom_step"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Experience/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to enemy speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction cut from the spawn interval at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown names yield fixed.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return DifficultyFixed
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
