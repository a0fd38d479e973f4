package survival

import (
	"fmt"
	"math"
	"testing"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// newFiringGame is a quiet world with the default weapon intervals.
func newFiringGame() *Game {
	cfg := quietConfig()
	cfg.Weapon.FireInterval = 400
	cfg.Weapon.FastFireInterval = 300
	return New(cfg, testRuntime)
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAutoFireTargetsNearestEnemy(t *testing.T) {
	tests := []struct {
		name    string
		offsets []core.Vec2
		target  int
	}{
		{"nearest wins", []core.Vec2{core.V(500, 0), core.V(0, 200), core.V(-300, 0)}, 1},
		{"first found wins a tie", []core.Vec2{core.V(300, 0), core.V(-300, 0)}, 0},
		{"tie order follows insertion", []core.Vec2{core.V(-300, 0), core.V(300, 0)}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newFiringGame()
			var enemies []*Enemy
			for _, off := range tc.offsets {
				enemies = append(enemies, placeEnemy(g, off))
			}

			g.autoFire()
			shots := g.Projectiles()
			if len(shots) != 1 {
				t.Fatalf("%d projectiles, expected 1", len(shots))
			}
			aim := core.AngleTo(shots[0].Pos, enemies[tc.target].Pos)
			if !closeTo(shots[0].Dir.Angle(), aim) {
				t.Errorf("shot angle = %f, expected %f toward enemy %d", shots[0].Dir.Angle(), aim, tc.target)
			}
		})
	}
}

func TestAutoFireSkipsWithoutEnemies(t *testing.T) {
	g := newFiringGame()
	g.autoFire()
	if len(g.Projectiles()) != 0 {
		t.Error("fired with no enemy on the map")
	}
	if !math.IsInf(g.lastShot, -1) {
		t.Errorf("lastShot = %f, a skipped shot should not start the interval", g.lastShot)
	}
}

func TestAutoFireInterval(t *testing.T) {
	tests := []struct {
		name     string
		magnum   int
		interval float64
	}{
		{"base weapon", 0, 400},
		{"magnum level 1", 1, 300},
		{"magnum level 3", 3, 300},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newFiringGame()
			g.skills.levels[AbilityMagnum] = tc.magnum
			placeEnemy(g, core.V(300, 0))

			g.autoFire()
			fired := len(g.Projectiles())

			g.now = tc.interval
			g.autoFire()
			if len(g.Projectiles()) != fired {
				t.Fatalf("fired again at exactly %fms", tc.interval)
			}

			g.now = tc.interval + 1
			g.autoFire()
			if len(g.Projectiles()) != 2*fired {
				t.Errorf("%d projectiles, expected a second volley after %fms", len(g.Projectiles()), tc.interval)
			}
		})
	}
}

func TestMagnumVolley(t *testing.T) {
	tests := []struct {
		level   int
		offsets []float64
		pierce  int
	}{
		{1, []float64{0}, 0},
		{2, []float64{0}, 1},
		{3, []float64{0, -0.1, 0.1}, 1},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("level %d", tc.level), func(t *testing.T) {
			g := newFiringGame()
			g.skills.levels[AbilityMagnum] = tc.level
			e := placeEnemy(g, core.V(300, 0))

			g.autoFire()
			shots := g.Projectiles()
			if len(shots) != len(tc.offsets) {
				t.Fatalf("level %d fired %d shots, expected %d", tc.level, len(shots), len(tc.offsets))
			}
			aim := core.AngleTo(shots[0].Pos, e.Pos)
			for i, off := range tc.offsets {
				if !closeTo(shots[i].Dir.Angle(), aim+off) {
					t.Errorf("level %d shot %d angle = %f, expected %f", tc.level, i, shots[i].Dir.Angle(), aim+off)
				}
				if shots[i].Pierce != tc.pierce {
					t.Errorf("level %d shot %d pierce = %d, expected %d", tc.level, i, shots[i].Pierce, tc.pierce)
				}
			}
		})
	}
}

func TestChainLightningTargets(t *testing.T) {
	for level := 1; level <= 3; level++ {
		targets := int(catalog[AbilityChainLightning].Param(level))
		g := newTestGame(t, quietConfig())

		// A line of enemies 100 apart, each within hop range of the next
		var enemies []*Enemy
		for i := 0; i < 8; i++ {
			enemies = append(enemies, placeEnemy(g, core.V(100*float64(i+1), 0)))
		}

		g.chainLightning(targets)
		for i, e := range enemies {
			expected := 100.0
			if i < targets {
				expected = 60
			}
			if e.Health != expected {
				t.Errorf("level %d enemy %d health = %f, expected %f", level, i, e.Health, expected)
			}
		}
	}
}

func TestChainLightningHopRange(t *testing.T) {
	g := newTestGame(t, quietConfig())
	first := placeEnemy(g, core.V(200, 0))
	second := placeEnemy(g, core.V(450, 0))
	// 350 past the second enemy, beyond the 300 hop
	third := placeEnemy(g, core.V(800, 0))

	g.chainLightning(3)
	if first.Health != 60 || second.Health != 60 {
		t.Fatalf("healths %f, %f, expected both struck", first.Health, second.Health)
	}
	if third.Health != 100 {
		t.Errorf("third enemy health = %f, chain hopped past its range", third.Health)
	}

	g = newTestGame(t, quietConfig())
	far := placeEnemy(g, core.V(ChainRange+50, 0))
	g.chainLightning(3)
	if far.Health != 100 {
		t.Errorf("enemy beyond the initial range was struck: health %f", far.Health)
	}
}

func TestPoisonGasDamageByLevel(t *testing.T) {
	tests := []struct {
		level    int
		expected float64
	}{
		{1, 90},
		{2, 80},
		{3, 70},
	}

	for _, tc := range tests {
		g := newTestGame(t, quietConfig())
		g.skills.levels[AbilityPoisonGas] = tc.level
		g.runAbilities()

		hz := g.Hazards()
		if len(hz) != 1 || hz[0].Kind != HazardGas {
			t.Fatalf("hazards = %+v, expected one gas cloud", hz)
		}
		e := placeEnemy(g, core.V(30, 0))

		g.resolveHazards()
		if e.Health != tc.expected {
			t.Fatalf("level %d health = %f, expected %f", tc.level, e.Health, tc.expected)
		}

		g.resolveHazards()
		if e.Health != tc.expected {
			t.Errorf("level %d gas hit again inside the re-hit window", tc.level)
		}

		g.now += HazardRehit + 1
		g.resolveHazards()
		if e.Health != 2*tc.expected-100 {
			t.Errorf("level %d health = %f after the re-hit window", tc.level, e.Health)
		}
	}
}

func TestBlackHolePullsAndDamagesCore(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.skills.levels[AbilityBlackHole] = 1
	g.runAbilities()

	hz := g.Hazards()
	if len(hz) != 1 || hz[0].Kind != HazardVortex {
		t.Fatalf("hazards = %+v, expected one vortex", hz)
	}
	center := hz[0].Pos
	if expected := g.Player().Pos.Add(core.V(0, -VortexAhead)); core.Dist(center, expected) > 1e-9 {
		t.Errorf("vortex at %v, expected %v ahead of the player", center, expected)
	}

	spawn := func(offset core.Vec2) *Enemy {
		e, _ := g.store.Enemies.Get(g.spawnEnemy(center.Add(offset), false))
		return e
	}
	inside := spawn(core.V(100, 0))
	outside := spawn(core.V(VortexReach+100, 0))
	coreEnemy := spawn(core.V(10, 0))

	g.updateHazards()
	if d := core.Dist(inside.Pos, center); !closeTo(d, 100-VortexPull) {
		t.Errorf("pulled enemy at %f from the center, expected %f", d, 100-VortexPull)
	}
	if d := core.Dist(outside.Pos, center); !closeTo(d, VortexReach+100) {
		t.Errorf("enemy outside the reach moved to %f", d)
	}

	g.resolveHazards()
	if coreEnemy.Health != 90 {
		t.Fatalf("core enemy health = %f, expected 90", coreEnemy.Health)
	}
	if inside.Health != 100 {
		t.Errorf("enemy outside the core took damage: %f", inside.Health)
	}

	g.resolveHazards()
	if coreEnemy.Health != 90 {
		t.Errorf("core damage ignored the re-hit window: %f", coreEnemy.Health)
	}
	g.now += HazardRehit + 1
	g.resolveHazards()
	if coreEnemy.Health != 80 {
		t.Errorf("core enemy health = %f after the re-hit window, expected 80", coreEnemy.Health)
	}
}

func TestMeteorStrikesOnce(t *testing.T) {
	g := newTestGame(t, quietConfig())
	at := g.Player().Pos.Add(core.V(500, 0))
	g.store.Hazards.Insert(Hazard{
		Kind:      HazardMeteor,
		Pos:       at,
		Radius:    MeteorRadius,
		Damage:    50,
		ExpiresAt: MeteorLife,
	})
	first := placeEnemy(g, core.V(500, 0))

	g.resolveHazards()
	if first.Health != 50 {
		t.Fatalf("health = %f, expected 50 after the strike", first.Health)
	}
	if !g.Hazards()[0].Resolved {
		t.Error("meteor should be resolved after its strike")
	}
	if !math.IsInf(first.LastHitAt, -1) {
		t.Error("meteor strikes should not touch the re-hit gate")
	}

	late := placeEnemy(g, core.V(510, 0))
	g.now += 1000
	g.resolveHazards()
	if first.Health != 50 || late.Health != 100 {
		t.Errorf("healths %f, %f: a resolved meteor struck again", first.Health, late.Health)
	}
}

func TestMeteorShowerDropsAroundPlayer(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.skills.levels[AbilityMeteorShower] = 1
	g.runAbilities()

	hz := g.Hazards()
	if len(hz) != MeteorCount {
		t.Fatalf("%d hazards, expected %d meteors", len(hz), MeteorCount)
	}
	for i, m := range hz {
		if m.Kind != HazardMeteor || m.Damage != 100 {
			t.Errorf("meteor %d = %+v, expected a full-health strike", i, m)
		}
		if d := core.Dist(m.Pos, g.Player().Pos); d > MeteorSpread+1e-9 {
			t.Errorf("meteor %d landed %f away, beyond the spread", i, d)
		}
	}
}
