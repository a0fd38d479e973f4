package survival

import (
	"math"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// Ability effect tuning. Damage fractions are relative to the standard
// enemy's max health.
const (
	BladeRehit  = 500.0
	BladeDamage = 0.5
	EliteBlade  = 200.0 // lethal blades against elites

	BeamRehit       = 200.0
	BeamDamage      = 0.3
	GiantBeamDamage = 0.5

	GodModeFactor = 10.0
	GodModeBlade  = 9999.0

	ChainRange  = 600.0
	ChainHop    = 300.0
	ChainDamage = 0.4

	HazardRehit  = 500.0
	GasRadius    = 60.0
	GasLifetime  = 3000.0
	VortexAhead  = 300.0
	VortexLife   = 3000.0
	VortexReach  = 500.0
	VortexPull   = 4.0
	VortexCore   = 40.0
	VortexDamage = 0.1
	MeteorCount  = 5
	MeteorSpread = 400.0
	MeteorRadius = 80.0
	MeteorDamage = 1.0
	MeteorLife   = 400.0
)

// abilityState is the explicit per-run ability record: levels plus the
// timestamps every cooldown compares against.
type abilityState struct {
	levels    [abilityCount]int
	lastFired [abilityCount]float64
	rotation  float64 // blade rotation accumulator
	beamUntil float64 // end of the current laser window
}

func newAbilityState() abilityState {
	var s abilityState
	for i := range s.lastFired {
		s.lastFired[i] = never
	}
	s.beamUntil = never
	return s
}

// Level returns the current level of a.
func (g *Game) Level(a Ability) int {
	if !a.Valid() {
		return 0
	}
	return g.skills.levels[a]
}

// ready reports whether a is owned and its interval elapsed, and if so
// records the activation.
func (g *Game) ready(a Ability) bool {
	lvl := g.skills.levels[a]
	if lvl == 0 {
		return false
	}
	if g.now-g.skills.lastFired[a] <= a.Interval(lvl) {
		return false
	}
	g.skills.lastFired[a] = g.now
	return true
}

// amplify applies God Mode to player-dealt damage.
func (g *Game) amplify(dmg float64) float64 {
	if g.skills.levels[AbilityGodMode] > 0 {
		return dmg * GodModeFactor
	}
	return dmg
}

// standardDamage converts a fraction of standard enemy health to damage.
func (g *Game) standardDamage(fraction float64) float64 {
	return fraction * g.cfg.Enemies.MaxHealth
}

// runAbilities fires every cooldown ability whose interval elapsed.
func (g *Game) runAbilities() {
	s := &g.skills
	s.rotation += BladeRotation
	p := &g.store.Player

	if g.ready(AbilityAutoHeal) {
		p.Health = math.Min(p.MaxHealth, p.Health+g.cfg.Pickups.HealAmount)
		g.store.burst(p.Pos, 6, '+', core.ColorBrightGreen, 3, 0)
	}

	if g.ready(AbilityLaser) {
		s.beamUntil = g.now + BeamWindow
	}

	if g.ready(AbilityFreezeNova) {
		dur := catalog[AbilityFreezeNova].Param(s.levels[AbilityFreezeNova])
		for _, e := range g.store.Enemies.All() {
			e.Frozen = math.Max(e.Frozen, dur)
			e.Attacking = false
		}
		g.store.burst(p.Pos, 12, '*', core.ColorBrightCyan, 12, 0)
	}

	if g.ready(AbilityShockwave) {
		g.shockwave(catalog[AbilityShockwave].Param(s.levels[AbilityShockwave]))
	}

	if g.ready(AbilityApocalypse) {
		for _, e := range g.store.Enemies.All() {
			if e.Health > 0 {
				e.Health = SlainHealth
			}
		}
	}

	if g.ready(AbilityChainLightning) {
		g.chainLightning(int(catalog[AbilityChainLightning].Param(s.levels[AbilityChainLightning])))
	}

	if g.ready(AbilityPoisonGas) {
		g.store.Hazards.Insert(Hazard{
			Kind:      HazardGas,
			Pos:       p.Pos,
			Radius:    GasRadius,
			Damage:    g.amplify(catalog[AbilityPoisonGas].Param(s.levels[AbilityPoisonGas])),
			ExpiresAt: g.now + GasLifetime,
		})
	}

	if g.ready(AbilityBlackHole) {
		g.store.Hazards.Insert(Hazard{
			Kind:      HazardVortex,
			Pos:       g.bounds.ClampInset(p.Pos.Add(core.FromAngle(p.Facing, VortexAhead)), VortexCore),
			Radius:    VortexReach,
			Damage:    g.amplify(g.standardDamage(VortexDamage)),
			ExpiresAt: g.now + VortexLife,
		})
	}

	if g.ready(AbilityMeteorShower) {
		for i := 0; i < MeteorCount; i++ {
			off := core.FromAngle(g.rng.Float64()*2*math.Pi, math.Sqrt(g.rng.Float64())*MeteorSpread)
			g.store.Hazards.Insert(Hazard{
				Kind:      HazardMeteor,
				Pos:       g.bounds.ClampInset(p.Pos.Add(off), 0),
				Radius:    MeteorRadius,
				Damage:    g.amplify(g.standardDamage(MeteorDamage)),
				ExpiresAt: g.now + MeteorLife,
			})
		}
	}
}

// beamsActive reports whether the laser window is open.
func (g *Game) beamsActive() bool {
	return g.skills.levels[AbilityLaser] > 0 && g.now < g.skills.beamUntil
}

// shockwave pushes every enemy radially away from the player.
func (g *Game) shockwave(force float64) {
	p := g.store.Player
	for _, e := range g.store.Enemies.All() {
		dir := e.Pos.Sub(p.Pos).Normalize()
		if dir == (core.Vec2{}) {
			dir = core.FromAngle(p.Facing, 1)
		}
		e.Pos = g.bounds.ClampInset(e.Pos.Add(dir.Scale(force)), e.Radius)
	}
	g.store.burst(p.Pos, 16, '~', core.ColorBrightYellow, 14, 0)
}

// chainLightning strikes the nearest enemy in range and arcs to up to
// targets-1 further enemies, each within hop range of the previous one.
func (g *Game) chainLightning(targets int) {
	struck := make(map[Handle]struct{}, targets)
	from, reach := g.store.Player.Pos, ChainRange
	dmg := g.amplify(g.standardDamage(ChainDamage))

	for i := 0; i < targets; i++ {
		h, e, ok := g.nearestEnemy(from, reach, struck)
		if !ok {
			return
		}
		struck[h] = struct{}{}
		damage(e, dmg)
		g.store.burst(e.Pos, 3, '×', core.ColorBrightYellow, 2, g.rng.Float64())
		from, reach = e.Pos, ChainHop
	}
}

// updateHazards expires old hazards and lets vortices drag enemies in.
func (g *Game) updateHazards() {
	for h, hz := range g.store.Hazards.All() {
		if g.now >= hz.ExpiresAt {
			g.store.Hazards.Remove(h)
			continue
		}
		if hz.Kind != HazardVortex {
			continue
		}
		for _, e := range g.store.Enemies.All() {
			d := core.Dist(e.Pos, hz.Pos)
			if d >= hz.Radius || d == 0 {
				continue
			}
			e.Pos = e.Pos.Add(core.FromAngle(core.AngleTo(e.Pos, hz.Pos), math.Min(VortexPull, d)))
		}
	}
}

// autoFire shoots at the nearest enemy when the fire interval elapsed.
func (g *Game) autoFire() {
	w := g.cfg.Weapon
	magnum := g.skills.levels[AbilityMagnum]

	interval := w.FireInterval
	if magnum >= 1 {
		interval = w.FastFireInterval
	}
	if g.now-g.lastShot <= interval {
		return
	}

	p := g.store.Player
	_, target, ok := g.nearestEnemy(p.Pos, math.Inf(1), nil)
	if !ok {
		return
	}
	g.lastShot = g.now

	origin := p.Pos.Add(core.FromAngle(p.Facing, w.MuzzleOffset))
	aim := core.AngleTo(origin, target.Pos)
	angles := []float64{aim}
	if magnum >= 3 {
		angles = append(angles, aim-w.SpreadAngle, aim+w.SpreadAngle)
	}

	pierce := 0
	if magnum >= 2 {
		pierce = 1
	}
	for _, a := range angles {
		g.store.addProjectile(Projectile{
			Pos:    origin,
			Dir:    core.FromAngle(a, 1),
			Pierce: pierce,
			Struck: make(map[Handle]struct{}),
		})
	}
}

// decayParticles ages and moves visual particles.
func (g *Game) decayParticles() {
	live := g.store.Particles[:0]
	for _, pt := range g.store.Particles {
		pt.Life -= 0.04
		if pt.Life <= 0 {
			continue
		}
		pt.Pos = pt.Pos.Add(pt.Vel)
		pt.Vel = pt.Vel.Scale(0.9)
		live = append(live, pt)
	}
	g.store.Particles = live
}
