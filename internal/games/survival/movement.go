package survival

import (
	"math"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// movePlayer turns the player toward the pointer and applies held movement
// relative to that facing.
func (g *Game) movePlayer(in core.InputFrame) {
	p := &g.store.Player
	if in.Pointer != (core.Vec2{}) {
		p.Facing = in.Pointer.Angle()
	}

	forward := core.FromAngle(p.Facing, 1)
	strafe := core.FromAngle(p.Facing+math.Pi/2, 1)

	var move core.Vec2
	if in.Has(core.ActionUp) {
		move = move.Add(forward)
	}
	if in.Has(core.ActionDown) {
		move = move.Sub(forward)
	}
	if in.Has(core.ActionRight) {
		move = move.Add(strafe)
	}
	if in.Has(core.ActionLeft) {
		move = move.Sub(strafe)
	}

	move = move.Normalize().Scale(g.cfg.Player.Speed)
	p.Pos = g.bounds.ClampInset(p.Pos.Add(move), g.cfg.Player.Radius)
}

// moveEnemies advances every enemy toward the player. Frozen enemies only
// count down their incapacitation by the elapsed time.
func (g *Game) moveEnemies(dt float64) {
	player := g.store.Player
	speedScale := g.enemySpeedScale()

	for _, e := range g.store.Enemies.All() {
		if e.Frozen > 0 {
			e.Frozen = math.Max(0, e.Frozen-dt)
			e.Attacking = false
			continue
		}

		e.Facing = core.AngleTo(e.Pos, player.Pos)
		if core.Dist(e.Pos, player.Pos) < g.cfg.Player.Radius+e.Radius {
			e.Attacking = true
			if g.now-e.AttackAt > g.cfg.Enemies.AttackRefresh {
				e.AttackAt = g.now
			}
			continue
		}

		e.Attacking = false
		e.Pos = e.Pos.Add(core.FromAngle(e.Facing, e.Speed*speedScale))
	}
}

// enemySpeedScale is the difficulty multiplier on enemy speed.
func (g *Game) enemySpeedScale() float64 {
	return g.difficulty.Speed(1, g.experience, g.ticks)
}

// moveProjectiles advances bullets and drops those out of range or bounds.
func (g *Game) moveProjectiles() {
	speed := g.cfg.Weapon.BulletSpeed
	for h, pr := range g.store.Projectiles.All() {
		pr.Pos = pr.Pos.Add(pr.Dir.Scale(speed))
		pr.Traveled += speed
		if pr.Traveled > g.cfg.Weapon.MaxDistance || !g.bounds.Contains(pr.Pos) {
			g.store.Projectiles.Remove(h)
		}
	}
}

// moveGems homes attracted gems toward the player.
func (g *Game) moveGems() {
	target := g.store.Player.Pos
	step := g.cfg.Pickups.MagnetSpeed
	for _, gem := range g.store.Gems.All() {
		if !gem.Attracted {
			continue
		}
		if core.Dist(gem.Pos, target) <= step {
			gem.Pos = target
			continue
		}
		gem.Pos = gem.Pos.Add(core.FromAngle(core.AngleTo(gem.Pos, target), step))
	}
}

// nearestEnemy returns the closest live enemy to from within maxDist.
// Ties go to the first enemy in iteration order.
func (g *Game) nearestEnemy(from core.Vec2, maxDist float64, skip map[Handle]struct{}) (Handle, *Enemy, bool) {
	var (
		best     Handle
		bestE    *Enemy
		bestDist = maxDist
		found    bool
	)
	for h, e := range g.store.Enemies.All() {
		if e.Health <= 0 {
			continue
		}
		if _, ok := skip[h]; ok {
			continue
		}
		d := core.Dist(from, e.Pos)
		if d < bestDist || (!found && d <= bestDist) {
			best, bestE, bestDist, found = h, e, d, true
		}
	}
	return best, bestE, found
}
