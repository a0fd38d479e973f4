package survival

import (
	"math"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// SlainHealth marks an enemy already condemned by a screen-clearing effect.
// Cleanup converts it to loot exactly once.
const SlainHealth = -999

// never is the timestamp used for "has not happened yet".
var never = math.Inf(-1)

// Player is the single player-controlled character.
type Player struct {
	Pos        core.Vec2
	Facing     float64
	Skin       int
	Health     float64
	MaxHealth  float64
	LastHurtAt float64
}

// EnemyState is the behavioural state of an enemy this tick.
type EnemyState int

const (
	EnemyPursuing EnemyState = iota
	EnemyIncapacitated
	EnemyAttacking
	EnemyDefeated
)

// String returns a human-readable name for the state.
func (s EnemyState) String() string {
	switch s {
	case EnemyPursuing:
		return "pursuing"
	case EnemyIncapacitated:
		return "incapacitated"
	case EnemyAttacking:
		return "attacking"
	case EnemyDefeated:
		return "defeated"
	default:
		return "unknown"
	}
}

// Enemy is a pursuing hostile.
type Enemy struct {
	ID        Handle
	Pos       core.Vec2
	Facing    float64
	Health    float64
	MaxHealth float64
	Elite     bool
	Radius    float64
	Speed     float64
	Damage    float64

	Attacking  bool    // within contact range this tick
	AttackAt   float64 // attack-state timestamp
	LastHitAt  float64 // blade/beam/hazard re-hit gate
	LastBiteAt float64 // contact damage gate
	Frozen     float64 // remaining incapacitation in ms
}

// State derives the enemy's state machine position.
func (e *Enemy) State() EnemyState {
	switch {
	case e.Health <= 0:
		return EnemyDefeated
	case e.Frozen > 0:
		return EnemyIncapacitated
	case e.Attacking:
		return EnemyAttacking
	default:
		return EnemyPursuing
	}
}

// Projectile is an auto-fired bullet.
type Projectile struct {
	ID       Handle
	Pos      core.Vec2
	Dir      core.Vec2
	Traveled float64
	Pierce   int
	Struck   map[Handle]struct{}
}

// Gem is an experience pickup.
type Gem struct {
	Pos       core.Vec2
	Value     int
	Attracted bool
}

// ChargeKind distinguishes the two respawning pickups.
type ChargeKind int

const (
	ChargeClear  ChargeKind = iota // removes standard enemies on screen
	ChargeMagnet                   // pulls every gem to the player
)

// Charge is a respawning power pickup.
type Charge struct {
	Pos  core.Vec2
	Kind ChargeKind
}

// HazardKind distinguishes ability-spawned area effects.
type HazardKind int

const (
	HazardGas HazardKind = iota
	HazardVortex
	HazardMeteor
)

// Hazard is a short-lived area effect in the world.
type Hazard struct {
	Kind      HazardKind
	Pos       core.Vec2
	Radius    float64
	Damage    float64
	ExpiresAt float64
	Resolved  bool // one-shot hazards deal damage once
}

// Particle is a purely visual marker.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Life  float64 // 1 at birth, removed at 0
	Glyph rune
	Color core.Color
}

// Store holds the authoritative world state of one run.
type Store struct {
	Player      Player
	Enemies     Arena[Enemy]
	Projectiles Arena[Projectile]
	Gems        Arena[Gem]
	Charges     Arena[Charge]
	Hazards     Arena[Hazard]
	Particles   []Particle
}

// reset discards every entity.
func (s *Store) reset(p Player) {
	s.Player = p
	s.Enemies.Clear()
	s.Projectiles.Clear()
	s.Gems.Clear()
	s.Charges.Clear()
	s.Hazards.Clear()
	s.Particles = s.Particles[:0]
}

func (s *Store) addEnemy(e Enemy) Handle {
	h := s.Enemies.Insert(e)
	p, _ := s.Enemies.Get(h)
	p.ID = h
	return h
}

func (s *Store) addProjectile(pr Projectile) Handle {
	h := s.Projectiles.Insert(pr)
	p, _ := s.Projectiles.Get(h)
	p.ID = h
	return h
}

func (s *Store) burst(at core.Vec2, n int, glyph rune, color core.Color, speed float64, angle0 float64) {
	for i := 0; i < n; i++ {
		a := angle0 + float64(i)*2*math.Pi/float64(n)
		s.Particles = append(s.Particles, Particle{
			Pos:   at,
			Vel:   core.FromAngle(a, speed),
			Life:  1,
			Glyph: glyph,
			Color: color,
		})
	}
}
