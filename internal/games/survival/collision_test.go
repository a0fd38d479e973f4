package survival

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-arena/internal/core"
)

func TestProjectilePierce(t *testing.T) {
	tests := []struct {
		name   string
		pierce int
	}{
		{"no pierce removed after one hit", 0},
		{"pierce one survives one hit", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, quietConfig())
			first := placeEnemy(g, core.V(-800, -800))
			second := placeEnemy(g, core.V(-500, -800))

			ph := g.store.addProjectile(Projectile{
				Pos:    first.Pos,
				Dir:    core.V(1, 0),
				Pierce: tc.pierce,
				Struck: make(map[Handle]struct{}),
			})

			g.resolveProjectiles()
			if first.Health != 80 {
				t.Fatalf("first enemy health = %f, expected 80", first.Health)
			}
			pr, alive := g.store.Projectiles.Get(ph)
			if tc.pierce == 0 {
				if alive {
					t.Fatal("projectile without pierce should be removed after one hit")
				}
				return
			}
			if !alive || pr.Pierce != 0 {
				t.Fatalf("projectile should survive with pierce 0, alive=%v", alive)
			}

			// The struck set prevents a second hit on the same enemy
			g.resolveProjectiles()
			if first.Health != 80 {
				t.Errorf("same enemy hit twice: health %f", first.Health)
			}

			pr.Pos = second.Pos
			g.resolveProjectiles()
			if second.Health != 80 {
				t.Errorf("second enemy health = %f, expected 80", second.Health)
			}
			if _, alive := g.store.Projectiles.Get(ph); alive {
				t.Error("projectile should be removed after its second hit")
			}
		})
	}
}

func TestProjectileDamageIndependentOfTarget(t *testing.T) {
	g := newTestGame(t, quietConfig())
	h := g.spawnEnemy(core.V(300, 300), true)
	elite, _ := g.store.Enemies.Get(h)

	g.store.addProjectile(Projectile{Pos: elite.Pos, Dir: core.V(0, 1), Struck: make(map[Handle]struct{})})
	g.resolveProjectiles()

	if elite.Health != 1980 {
		t.Errorf("elite health = %f, expected a flat 20 damage", elite.Health)
	}
}

func TestContactDamageCooldown(t *testing.T) {
	g := newTestGame(t, quietConfig())
	e := placeEnemy(g, core.V(0, 0))
	e.Health, e.MaxHealth = 1e9, 1e9

	g.Step(16, idle())
	if g.Health() != 98 {
		t.Fatalf("Health() = %f after first bite, expected 98", g.Health())
	}

	// 62 more ticks keep the clock within the 1000ms window
	for i := 0; i < 62; i++ {
		g.Step(16, idle())
	}
	if g.Health() != 98 {
		t.Fatalf("Health() = %f, bitten twice within the cooldown", g.Health())
	}

	g.Step(16, idle())
	g.Step(16, idle())
	if g.Health() != 96 {
		t.Errorf("Health() = %f, expected a second bite after the cooldown", g.Health())
	}
	if g.Player().LastHurtAt != e.LastBiteAt {
		t.Errorf("LastHurtAt = %f, expected it to follow the bite at %f", g.Player().LastHurtAt, e.LastBiteAt)
	}
}

func TestDefenseReducesContactDamage(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.skills.levels[AbilityDefense] = 3
	e := placeEnemy(g, core.V(0, 0))
	e.Health, e.MaxHealth = 1e9, 1e9

	g.Step(16, idle())
	if math.Abs(g.Health()-99.8) > 1e-9 {
		t.Errorf("Health() = %f, expected 99.8 with 90%% defense", g.Health())
	}
}

func TestGodModeBlocksContactDamage(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.skills.levels[AbilityGodMode] = 1

	for i := 0; i < 5; i++ {
		e := placeEnemy(g, core.V(float64(i), 0))
		e.Health, e.MaxHealth = 1e9, 1e9
	}
	elite, _ := g.store.Enemies.Get(g.spawnEnemy(g.Player().Pos, true))
	elite.Health, elite.MaxHealth = 1e9, 1e9

	for i := 0; i < 300; i++ {
		g.Step(16, idle())
	}
	if g.Health() != 100 {
		t.Errorf("Health() = %f under God Mode, expected 100", g.Health())
	}
}

func TestDefeatFreezesSimulation(t *testing.T) {
	cfg := quietConfig()
	cfg.Progression.Milestones = []int{10}
	g := newTestGame(t, cfg)

	e := placeEnemy(g, core.V(0, 0))
	e.Damage = 500
	g.store.Gems.Insert(Gem{Pos: g.Player().Pos, Value: 10})

	res := g.Step(16, idle())
	if len(eventsOf[DefeatedEvent](res.Events)) != 1 {
		t.Fatalf("expected one DefeatedEvent, got %+v", res.Events)
	}
	if !res.State.GameOver || g.Phase() != PhaseDefeated {
		t.Fatalf("Phase() = %v, expected defeated", g.Phase())
	}
	if g.Health() != 0 {
		t.Errorf("Health() = %f, expected floor at 0", g.Health())
	}
	// Damage resolution precedes progression: no pickup, no selection
	if g.Experience() != 0 || len(eventsOf[SelectionEvent](res.Events)) != 0 {
		t.Error("pickups and progression must be skipped on the defeat tick")
	}

	clock := g.Clock()
	res = g.Step(16, idle())
	if g.Clock() != clock || len(res.Events) != 0 {
		t.Error("defeated simulation should not advance or emit events")
	}

	restart := idle()
	restart.Set(core.ActionRestart)
	g.Step(16, restart)
	if g.Phase() != PhaseRunning || g.Health() != 100 {
		t.Errorf("after restart: phase %v health %f", g.Phase(), g.Health())
	}
}

func TestBladeDamage(t *testing.T) {
	tests := []struct {
		name     string
		level    int
		elite    bool
		expected float64
	}{
		{"level 1 deals half", 1, false, 50},
		{"level 2 is lethal", 2, false, 0},
		{"level 3 is lethal", 3, false, 0},
		{"elites take 200", 2, true, 1800},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, quietConfig())
			g.skills.levels[AbilitySpinningAxes] = tc.level

			// First blade sits at the rotation after one tick
			at := g.Player().Pos.Add(core.FromAngle(BladeRotation, BladeOrbit))
			h := g.spawnEnemy(at, tc.elite)
			e, _ := g.store.Enemies.Get(h)

			var health float64
			g.Step(16, idle())
			if got, ok := g.store.Enemies.Get(h); ok {
				health = got.Health
			}
			if health != tc.expected {
				t.Fatalf("health after blade hit = %f, expected %f", health, tc.expected)
			}
			if tc.expected == 0 {
				if g.Kills() != 1 {
					t.Errorf("Kills() = %d, expected the lethal hit to be counted", g.Kills())
				}
				return
			}

			// The re-hit gate blocks a second hit on the next tick
			g.Step(16, idle())
			if e.Health != tc.expected {
				t.Errorf("health = %f, blade hit again inside the re-hit window", e.Health)
			}
		})
	}
}

func TestBeamsHitDuringWindow(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.skills.levels[AbilityLaser] = 1

	// At clock 16 the sweep angle is 0.016 rad; put an enemy on the beam
	e := placeEnemy(g, core.FromAngle(0.016, 400))

	g.Step(16, idle())
	if e.Health != 70 {
		t.Fatalf("health after beam hit = %f, expected 70", e.Health)
	}
	if len(g.Beams()) != 1 {
		t.Errorf("Beams() = %d, expected one visible beam", len(g.Beams()))
	}

	// After the 500ms window the beam is gone
	for i := 0; i < 40; i++ {
		g.Step(16, idle())
	}
	if g.Beams() != nil {
		t.Error("beams should disappear after the activation window")
	}
}

func TestApocalypseConvertsOnce(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.skills.levels[AbilityApocalypse] = 1

	for i := 0; i < 3; i++ {
		placeEnemy(g, core.V(600+float64(i)*100, 0))
	}
	g.spawnEnemy(g.Player().Pos.Add(core.V(-900, 0)), true)

	res := g.Step(16, idle())
	kills := eventsOf[KillsEvent](res.Events)
	if len(kills) != 1 || kills[0].Delta != 4 {
		t.Fatalf("kill events = %+v, expected one with delta 4", kills)
	}
	// One gem per enemy plus the elite bonus
	if got := len(g.Gems()); got != 4+10 {
		t.Errorf("gems = %d, expected 14", got)
	}
	if len(g.Enemies()) != 0 {
		t.Errorf("%d enemies survived Apocalypse", len(g.Enemies()))
	}

	g.Step(16, idle())
	if g.Kills() != 4 {
		t.Errorf("Kills() = %d, enemies rewarded twice", g.Kills())
	}
}

func TestClearChargeRemovesVisibleStandardEnemies(t *testing.T) {
	g := newTestGame(t, quietConfig())
	placeEnemy(g, core.V(200, 0))
	placeEnemy(g, core.V(0, -300))
	outside := placeEnemy(g, core.V(1500, 0)) // beyond the 1280 half-width
	h := g.spawnEnemy(g.Player().Pos.Add(core.V(1000, 0)), true)
	g.store.Charges.Insert(Charge{Pos: g.Player().Pos, Kind: ChargeClear})

	res := g.Step(16, idle())
	kills := eventsOf[KillsEvent](res.Events)
	if len(kills) != 1 || kills[0].Delta != 2 {
		t.Fatalf("kill events = %+v, expected delta 2", kills)
	}
	if _, ok := g.store.Enemies.Get(h); !ok {
		t.Error("elite should survive a clear charge")
	}
	if _, ok := g.store.Enemies.Get(outside.ID); !ok {
		t.Error("enemy outside the viewport should survive")
	}
	if len(g.Charges()) != 0 || len(g.respawns) != 1 {
		t.Fatalf("charge should be consumed and queued, charges=%d queued=%d", len(g.Charges()), len(g.respawns))
	}

	g.now = 16 + 10000
	g.runRespawns()
	if len(g.Charges()) != 1 || len(g.respawns) != 0 {
		t.Errorf("charge should respawn after 10s, charges=%d queued=%d", len(g.Charges()), len(g.respawns))
	}
}

func TestMagnetAttractsGems(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.store.Gems.Insert(Gem{Pos: g.Player().Pos.Add(core.V(300, 0)), Value: 1})
	g.store.Gems.Insert(Gem{Pos: g.Player().Pos.Add(core.V(0, 600)), Value: 2})
	g.store.Charges.Insert(Charge{Pos: g.Player().Pos, Kind: ChargeMagnet})

	g.Step(16, idle())
	for _, gem := range g.Gems() {
		if !gem.Attracted {
			t.Fatal("every gem should be attracted after a magnet pickup")
		}
	}

	for i := 0; i < 60; i++ {
		g.Step(16, idle())
	}
	if g.Experience() != 3 || len(g.Gems()) != 0 {
		t.Errorf("Experience() = %d with %d gems left, expected 3 and none", g.Experience(), len(g.Gems()))
	}
}

func TestFreezeNovaIncapacitates(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.skills.levels[AbilityFreezeNova] = 1
	far := placeEnemy(g, core.V(300, 0))
	near := placeEnemy(g, core.V(0, 0))
	near.Health, near.MaxHealth = 1e9, 1e9

	g.Step(16, idle())
	if far.Frozen != 2000 || far.State() != EnemyIncapacitated {
		t.Fatalf("Frozen = %f state %v, expected 2000 incapacitated", far.Frozen, far.State())
	}
	pos := far.Pos

	g.Step(16, idle())
	if far.Pos != pos {
		t.Error("frozen enemy moved")
	}
	if far.Frozen != 1984 {
		t.Errorf("Frozen = %f, expected the timer to drop by dt", far.Frozen)
	}

	// The frozen enemy in contact never bites
	for i := 0; i < 100; i++ {
		g.Step(16, idle())
	}
	if g.Health() != 100 {
		t.Errorf("Health() = %f, frozen enemy dealt contact damage", g.Health())
	}
}

func TestShockwaveClampsToBounds(t *testing.T) {
	g := newTestGame(t, quietConfig())
	g.skills.levels[AbilityShockwave] = 3
	g.store.Player.Pos = core.V(100, 2000)
	e := placeEnemy(g, core.V(-50, 0))

	g.Step(16, idle())
	if e.Pos.X != e.Radius {
		t.Errorf("enemy pushed to %v, expected clamp at x=%f", e.Pos, e.Radius)
	}
}

func TestEnemyStates(t *testing.T) {
	g := newTestGame(t, quietConfig())
	chasing := placeEnemy(g, core.V(500, 0))
	biting := placeEnemy(g, core.V(10, 0))
	biting.Health, biting.MaxHealth = 1e9, 1e9

	g.Step(16, idle())
	if chasing.State() != EnemyPursuing {
		t.Errorf("far enemy state %v, expected pursuing", chasing.State())
	}
	if biting.State() != EnemyAttacking || biting.AttackAt != 16 {
		t.Errorf("close enemy state %v attackAt %f, expected attacking at 16", biting.State(), biting.AttackAt)
	}
	if d := core.Dist(chasing.Pos, g.Player().Pos); math.Abs(d-498.5) > 1e-9 {
		t.Errorf("pursuer at distance %f, expected 498.5", d)
	}
}
