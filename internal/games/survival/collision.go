package survival

import (
	"math"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// damage lowers an enemy's health, flooring at zero. Enemies already at or
// below zero are left alone so the slain sentinel survives until cleanup.
func damage(e *Enemy, amount float64) {
	if e.Health <= 0 || amount <= 0 {
		return
	}
	e.Health = math.Max(0, e.Health-amount)
}

// resolveProjectiles hits each enemy at most once per projectile.
// A projectile with pierce left survives the hit; otherwise it is removed.
func (g *Game) resolveProjectiles() {
	radius := g.cfg.Weapon.BulletRadius
	dmg := g.amplify(g.standardDamage(g.cfg.Weapon.DamageFraction))

	for ph, pr := range g.store.Projectiles.All() {
		for eh, e := range g.store.Enemies.All() {
			if e.Health <= 0 {
				continue
			}
			if _, hit := pr.Struck[eh]; hit {
				continue
			}
			if !core.CirclesOverlap(pr.Pos, radius, e.Pos, e.Radius) {
				continue
			}

			pr.Struck[eh] = struct{}{}
			damage(e, dmg)
			g.store.burst(e.Pos, 2, '·', core.ColorRed, 2, pr.Dir.Angle())

			if pr.Pierce > 0 {
				pr.Pierce--
				continue
			}
			g.store.Projectiles.Remove(ph)
			break
		}
	}
}

// resolveBlades applies orbiting blade hits behind the re-hit gate.
func (g *Game) resolveBlades() {
	level := g.skills.levels[AbilitySpinningAxes]
	if level == 0 {
		return
	}
	god := g.skills.levels[AbilityGodMode] > 0
	blades := BladesAt(g.store.Player.Pos, level, g.skills.rotation)

	for _, e := range g.store.Enemies.All() {
		if e.Health <= 0 || g.now-e.LastHitAt <= BladeRehit {
			continue
		}
		for _, b := range blades {
			if !core.CirclesOverlap(b.Pos, b.Radius, e.Pos, e.Radius) {
				continue
			}
			e.LastHitAt = g.now
			switch {
			case god:
				damage(e, GodModeBlade)
			case level >= 2 && e.Elite:
				damage(e, EliteBlade)
			case level >= 2:
				damage(e, e.Health)
			default:
				damage(e, g.standardDamage(BladeDamage))
			}
			break
		}
	}
}

// resolveBeams applies laser hits while the activation window is open.
func (g *Game) resolveBeams() {
	if !g.beamsActive() {
		return
	}
	beams := g.Beams()
	for _, e := range g.store.Enemies.All() {
		if e.Health <= 0 || g.now-e.LastHitAt <= BeamRehit {
			continue
		}
		for _, b := range beams {
			if core.SegmentDist(e.Pos, b.From, b.To) >= e.Radius+b.HalfWidth {
				continue
			}
			e.LastHitAt = g.now
			frac := BeamDamage
			if b.Giant {
				frac = GiantBeamDamage
			}
			damage(e, g.amplify(g.standardDamage(frac)))
			break
		}
	}
}

// resolveHazards applies gas, vortex and meteor damage.
// Meteors strike once; lingering hazards respect the re-hit gate.
func (g *Game) resolveHazards() {
	for _, hz := range g.store.Hazards.All() {
		if hz.Resolved {
			continue
		}
		reach := hz.Radius
		if hz.Kind == HazardVortex {
			reach = VortexCore
		}
		for _, e := range g.store.Enemies.All() {
			if e.Health <= 0 || !core.CirclesOverlap(hz.Pos, reach, e.Pos, e.Radius) {
				continue
			}
			if hz.Kind == HazardMeteor {
				damage(e, hz.Damage)
				continue
			}
			if g.now-e.LastHitAt <= HazardRehit {
				continue
			}
			e.LastHitAt = g.now
			damage(e, hz.Damage)
		}
		if hz.Kind == HazardMeteor {
			hz.Resolved = true
		}
	}
}

// resolveContact applies enemy bites to the player and reports defeat.
func (g *Game) resolveContact() bool {
	if g.skills.levels[AbilityGodMode] > 0 {
		return false
	}
	p := &g.store.Player
	reduction := catalog[AbilityDefense].Param(g.skills.levels[AbilityDefense])

	for _, e := range g.store.Enemies.All() {
		if e.Health <= 0 || e.Frozen > 0 {
			continue
		}
		if !core.CirclesOverlap(p.Pos, g.cfg.Player.Radius, e.Pos, e.Radius) {
			continue
		}
		if g.now-e.LastBiteAt <= g.cfg.Enemies.BiteCooldown {
			continue
		}

		e.LastBiteAt = g.now
		p.LastHurtAt = g.now
		p.Health = math.Max(0, p.Health-e.Damage*math.Max(0, 1-reduction))
		if p.Health <= 0 {
			return true
		}
	}
	return false
}

// resolvePickups collects gems and charges touching the player.
func (g *Game) resolvePickups() {
	p := g.store.Player
	pk := g.cfg.Pickups

	for h, gem := range g.store.Gems.All() {
		if core.Dist(gem.Pos, p.Pos) < pk.Radius {
			g.experience += gem.Value
			g.store.Gems.Remove(h)
		}
	}

	for h, c := range g.store.Charges.All() {
		if core.Dist(c.Pos, p.Pos) >= pk.ChargeRadius {
			continue
		}
		kind := c.Kind
		g.store.Charges.Remove(h)
		switch kind {
		case ChargeClear:
			g.clearViewport()
		case ChargeMagnet:
			for _, gem := range g.store.Gems.All() {
				gem.Attracted = true
			}
		}
		g.scheduleRespawn(kind)
	}
}

// clearViewport condemns every standard enemy inside the visible area.
func (g *Game) clearViewport() {
	p := g.store.Player.Pos
	halfW, halfH := g.viewW/g.zoom/2, g.viewH/g.zoom/2
	for _, e := range g.store.Enemies.All() {
		if e.Elite || e.Health <= 0 {
			continue
		}
		if math.Abs(e.Pos.X-p.X) <= halfW && math.Abs(e.Pos.Y-p.Y) <= halfH {
			e.Health = 0
		}
	}
	g.store.burst(p, 20, '░', core.ColorBrightWhite, 20, 0)
}

// cleanup converts defeated enemies into loot and returns how many died.
func (g *Game) cleanup() int {
	kills := 0
	for h, e := range g.store.Enemies.All() {
		if e.Health > 0 {
			continue
		}
		g.store.Gems.Insert(Gem{Pos: e.Pos, Value: 1})
		if e.Elite {
			for i := 0; i < g.cfg.Elite.BonusGems; i++ {
				off := core.FromAngle(g.rng.Float64()*2*math.Pi, g.rng.Float64()*e.Radius*2)
				g.store.Gems.Insert(Gem{Pos: g.bounds.ClampInset(e.Pos.Add(off), 0), Value: 1})
			}
		}
		g.store.burst(e.Pos, 4, '✶', core.ColorOrange, 3, g.rng.Float64())
		g.store.Enemies.Remove(h)
		kills++
	}
	return kills
}
