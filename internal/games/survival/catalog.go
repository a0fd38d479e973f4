package survival

import (
	"fmt"
	"strings"
)

// Ability identifies one entry of the ability catalog.
type Ability int

const (
	AbilityAutoHeal Ability = iota
	AbilitySpinningAxes
	AbilityLaser
	AbilityDefense
	AbilityMagnum
	AbilityFreezeNova
	AbilityShockwave
	AbilityChainLightning
	AbilityPoisonGas
	AbilityBlackHole
	AbilityMeteorShower
	AbilityGodMode
	AbilityApocalypse

	abilityCount
)

// Tier classifies how an ability may be offered.
type Tier int

const (
	TierStandard   Tier = iota // offered to everyone
	TierPremium                // offered separately, costs currency
	TierRestricted             // offered only to privileged players
)

// AbilityInfo is the static description of an ability.
type AbilityInfo struct {
	Name        string
	Description string
	Tier        Tier

	// Levels holds the per-level parameter; its length is the max level.
	Levels []float64

	// Cooldown is the activation interval in ms. Zero means the ability is
	// continuous or its interval comes from Levels.
	Cooldown float64
}

// MaxLevel returns the highest level the ability can reach.
func (i AbilityInfo) MaxLevel() int {
	return len(i.Levels)
}

// Param returns the parameter for the given level, or 0 when not owned.
func (i AbilityInfo) Param(level int) float64 {
	if level <= 0 {
		return 0
	}
	if level > len(i.Levels) {
		level = len(i.Levels)
	}
	return i.Levels[level-1]
}

var catalog = [abilityCount]AbilityInfo{
	AbilityAutoHeal: {
		Name:        "Auto Heal",
		Description: "Restore 10 HP periodically (20s/10s/5s)",
		Levels:      []float64{20000, 10000, 5000},
	},
	AbilitySpinningAxes: {
		Name:        "Spinning Axes",
		Description: "Axes orbit around you (1/3/5 axes, lethal from level 2)",
		Levels:      []float64{1, 3, 5},
	},
	AbilityLaser: {
		Name:        "Rotating Laser",
		Description: "Sweeping beams every 3s (1/3/5 beams, giant beam at level 3)",
		Levels:      []float64{1, 3, 5},
		Cooldown:    3000,
	},
	AbilityDefense: {
		Name:        "Defense Up",
		Description: "Reduce contact damage by 30%/60%/90%",
		Levels:      []float64{0.3, 0.6, 0.9},
	},
	AbilityMagnum: {
		Name:        "Magnum Upgrade",
		Description: "Faster fire, then piercing rounds, then triple shot",
		Levels:      []float64{1, 2, 3},
	},
	AbilityFreezeNova: {
		Name:        "Freeze Nova",
		Description: "Freeze every enemy for 2s/3s/4s every 10s",
		Levels:      []float64{2000, 3000, 4000},
		Cooldown:    10000,
	},
	AbilityShockwave: {
		Name:        "Shockwave",
		Description: "Push every enemy away by 150/250/400 every 5s",
		Levels:      []float64{150, 250, 400},
		Cooldown:    5000,
	},
	AbilityChainLightning: {
		Name:        "Chain Lightning",
		Description: "Lightning arcs between 3/5/7 enemies every 2s",
		Levels:      []float64{3, 5, 7},
		Cooldown:    2000,
	},
	AbilityPoisonGas: {
		Name:        "Poison Gas",
		Description: "Leave toxic clouds dealing 10/20/30 damage",
		Levels:      []float64{10, 20, 30},
		Cooldown:    600,
	},
	AbilityBlackHole: {
		Name:        "Black Hole",
		Description: "Open a vortex that drags enemies in (premium)",
		Tier:        TierPremium,
		Levels:      []float64{1},
		Cooldown:    8000,
	},
	AbilityMeteorShower: {
		Name:        "Meteor Shower",
		Description: "Meteors rain down around you every 4s (premium)",
		Tier:        TierPremium,
		Levels:      []float64{1},
		Cooldown:    4000,
	},
	AbilityGodMode: {
		Name:        "God Mode",
		Description: "Invulnerable, x10 damage, axes one-shot everything",
		Tier:        TierRestricted,
		Levels:      []float64{1},
	},
	AbilityApocalypse: {
		Name:        "Apocalypse",
		Description: "Slay every enemy on the map every 5s",
		Tier:        TierRestricted,
		Levels:      []float64{1},
		Cooldown:    5000,
	},
}

// Info returns the catalog entry for an ability.
func (a Ability) Info() AbilityInfo {
	if a < 0 || a >= abilityCount {
		return AbilityInfo{Name: "Unknown"}
	}
	return catalog[a]
}

// Valid reports whether a names a catalog entry.
func (a Ability) Valid() bool {
	return a >= 0 && a < abilityCount
}

// Interval returns the activation interval at the given level in ms.
func (a Ability) Interval(level int) float64 {
	switch a {
	case AbilityAutoHeal:
		return catalog[a].Param(level)
	default:
		return a.Info().Cooldown
	}
}

// String returns the machine name of an ability, as used on the command line.
func (a Ability) String() string {
	switch a {
	case AbilityAutoHeal:
		return "auto-heal"
	case AbilitySpinningAxes:
		return "spinning-axes"
	case AbilityLaser:
		return "laser"
	case AbilityDefense:
		return "defense"
	case AbilityMagnum:
		return "magnum"
	case AbilityFreezeNova:
		return "freeze-nova"
	case AbilityShockwave:
		return "shockwave"
	case AbilityChainLightning:
		return "chain-lightning"
	case AbilityPoisonGas:
		return "poison-gas"
	case AbilityBlackHole:
		return "black-hole"
	case AbilityMeteorShower:
		return "meteor-shower"
	case AbilityGodMode:
		return "god-mode"
	case AbilityApocalypse:
		return "apocalypse"
	default:
		return "unknown"
	}
}

// ParseAbility resolves a machine name back to an Ability.
func ParseAbility(name string) (Ability, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, a := range AllAbilities() {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("survival: unknown ability %q", name)
}

// AllAbilities returns every ability in catalog order.
func AllAbilities() []Ability {
	out := make([]Ability, 0, abilityCount)
	for a := Ability(0); a < abilityCount; a++ {
		out = append(out, a)
	}
	return out
}

// String returns a display label for a tier.
func (t Tier) String() string {
	switch t {
	case TierStandard:
		return "standard"
	case TierPremium:
		return "premium"
	case TierRestricted:
		return "admin"
	default:
		return "unknown"
	}
}
