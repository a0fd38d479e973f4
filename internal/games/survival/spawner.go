package survival

import (
	"math"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// respawn is a pickup waiting to re-enter the world.
type respawn struct {
	at   float64
	kind ChargeKind
}

// randomPosition draws a point uniformly inside the world.
func (g *Game) randomPosition() core.Vec2 {
	return core.V(g.rng.Float64()*g.bounds.W, g.rng.Float64()*g.bounds.H)
}

// spawnPosition draws positions until one is outside the safe radius around
// the player. After SpawnAttempts misses it settles for the farthest
// candidate seen, so a world smaller than the safe radius cannot stall a tick.
func (g *Game) spawnPosition() core.Vec2 {
	player := g.store.Player.Pos
	safe := g.cfg.Enemies.SafeRadius

	var (
		best     core.Vec2
		bestDist = -1.0
	)
	for i := 0; i < g.cfg.Enemies.SpawnAttempts; i++ {
		p := g.randomPosition()
		d := core.Dist(p, player)
		if d > safe {
			return p
		}
		if d > bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// trickleInterval shortens as experience grows, floored at the minimum.
func (g *Game) trickleInterval() float64 {
	e := g.cfg.Enemies
	base := math.Max(e.MinSpawnInterval, e.SpawnInterval-math.Floor(float64(g.experience)/10)*10)
	return g.difficulty.Interval(base, e.MinSpawnInterval, g.experience, g.ticks)
}

// spawnTrickle adds one enemy when below the cap and the interval elapsed.
func (g *Game) spawnTrickle() {
	if g.store.Enemies.Len() >= g.cfg.Enemies.Cap {
		return
	}
	if g.now-g.lastTrickle <= g.trickleInterval() {
		return
	}
	g.lastTrickle = g.now
	g.spawnEnemy(g.spawnPosition(), false)
}

// spawnElites introduces one elite per unused experience milestone multiple.
func (g *Game) spawnElites() {
	m := g.experience / g.cfg.Elite.Milestone
	if m <= g.lastElite {
		return
	}
	g.lastElite = m
	g.spawnEnemy(g.spawnPosition(), true)
}

func (g *Game) spawnEnemy(at core.Vec2, elite bool) Handle {
	e := Enemy{
		Pos:        at,
		Health:     g.cfg.Enemies.MaxHealth,
		MaxHealth:  g.cfg.Enemies.MaxHealth,
		Radius:     g.cfg.Enemies.Radius,
		Speed:      g.cfg.Enemies.Speed,
		Damage:     g.cfg.Enemies.Damage,
		AttackAt:   never,
		LastHitAt:  never,
		LastBiteAt: never,
	}
	if elite {
		e.Elite = true
		e.Health = g.cfg.Elite.Health
		e.MaxHealth = g.cfg.Elite.Health
		e.Radius *= g.cfg.Elite.Scale
		e.Speed *= g.cfg.Elite.SpeedFactor
		e.Damage = g.cfg.Elite.Damage
	}
	e.Facing = core.AngleTo(at, g.store.Player.Pos)
	return g.store.addEnemy(e)
}

// populate fills a fresh world with its starting enemies and charges.
func (g *Game) populate() {
	w := g.cfg.World
	for i := 0; i < w.InitialEnemies; i++ {
		g.spawnEnemy(g.spawnPosition(), false)
	}
	for i := 0; i < w.InitialClears; i++ {
		g.store.Charges.Insert(Charge{Pos: g.randomPosition(), Kind: ChargeClear})
	}
	for i := 0; i < w.InitialMagnets; i++ {
		g.store.Charges.Insert(Charge{Pos: g.randomPosition(), Kind: ChargeMagnet})
	}
}

// scheduleRespawn queues a consumed charge to reappear later.
func (g *Game) scheduleRespawn(kind ChargeKind) {
	delay := g.cfg.Pickups.ClearRespawn
	if kind == ChargeMagnet {
		delay = g.cfg.Pickups.MagnetRespawn
	}
	g.respawns = append(g.respawns, respawn{at: g.now + delay, kind: kind})
}

// runRespawns re-inserts charges whose delay elapsed.
func (g *Game) runRespawns() {
	pending := g.respawns[:0]
	for _, r := range g.respawns {
		if g.now >= r.at {
			g.store.Charges.Insert(Charge{Pos: g.randomPosition(), Kind: r.kind})
			continue
		}
		pending = append(pending, r)
	}
	g.respawns = pending
}
