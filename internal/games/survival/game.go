// Package survival implements the arena-survival simulation: a player fends
// off waves of pursuing enemies, collects experience and picks abilities at
// experience milestones.
//
// The package is pure simulation. It never blocks or touches the terminal;
// the platform layer drives Step once per frame and reads the views.
package survival

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
)

// Phase is the run's suspension state.
type Phase int

const (
	PhaseIdle     Phase = iota // not started
	PhaseRunning               // world advances every Step
	PhasePaused                // suspended by the player or a menu
	PhaseChoosing              // waiting for an ability choice
	PhaseDefeated              // terminal until Restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseChoosing:
		return "choosing"
	case PhaseDefeated:
		return "defeated"
	default:
		return "unknown"
	}
}

// StepResult contains the outcome of a single simulation tick.
type StepResult struct {
	State  core.GameState
	Events []Event
}

// Game is one arena simulation. It is not safe for concurrent use; each
// session owns its own Game.
type Game struct {
	cfg        config.ArenaConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	bounds core.Bounds
	store  Store
	skills abilityState

	now   float64 // simulation clock in ms
	ticks int

	kills      int
	experience int
	milestone  int // index of the next unconsumed milestone
	lastElite  int // highest elite milestone multiple already spawned

	lastTrickle float64
	lastShot    float64
	respawns    []respawn

	offer      []Ability
	phase      Phase
	currency   int
	privileged bool

	zoom  float64
	viewW float64
	viewH float64

	events []Event
}

// New creates a simulation with a freshly populated world in the idle phase.
func New(cfg config.ArenaConfig, rt core.RuntimeConfig) *Game {
	g := &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(rt.Seed)),
		bounds:     core.Bounds{W: cfg.World.Width, H: cfg.World.Height},
		privileged: rt.Privileged,
		zoom:       cfg.Camera.Zoom,
	}
	g.viewW, g.viewH = rt.ViewportPixels()
	g.reset()
	return g
}

// reset reinitializes every entity, timer and run total. The wallet,
// privilege, zoom and viewport belong to the session and survive.
func (g *Game) reset() {
	skins := max(1, g.cfg.Player.Skins)
	g.store.reset(Player{
		Pos:        g.bounds.Center(),
		Facing:     -math.Pi / 2,
		Skin:       g.rng.Intn(skins),
		Health:     g.cfg.Player.MaxHealth,
		MaxHealth:  g.cfg.Player.MaxHealth,
		LastHurtAt: never,
	})
	g.skills = newAbilityState()
	g.now = 0
	g.ticks = 0
	g.kills = 0
	g.experience = 0
	g.milestone = 0
	g.lastElite = 0
	g.lastTrickle = 0
	g.lastShot = never
	g.respawns = nil
	g.offer = nil
	g.populate()
}

// Restart discards the current run and starts a new one immediately.
func (g *Game) Restart() {
	g.reset()
	g.phase = PhaseRunning
}

// Pause suspends a running simulation.
func (g *Game) Pause() {
	if g.phase == PhaseRunning {
		g.phase = PhasePaused
	}
}

// Resume continues a paused run or starts an idle one.
func (g *Game) Resume() {
	if g.phase == PhasePaused || g.phase == PhaseIdle {
		g.phase = PhaseRunning
	}
}

// Step advances the simulation by dt milliseconds. Outside the running phase
// the world is frozen but pending events are still delivered.
func (g *Game) Step(dt float64, in core.InputFrame) StepResult {
	g.handleActions(in)
	if g.phase == PhaseRunning {
		g.tick(math.Max(0, dt), in)
	}

	res := StepResult{State: g.State(), Events: g.events}
	g.events = nil
	return res
}

// handleActions applies the edge-triggered commands carried by the input.
func (g *Game) handleActions(in core.InputFrame) {
	switch {
	case in.Has(core.ActionRestart) && g.phase == PhaseDefeated:
		g.Restart()
	case in.Has(core.ActionPause) && g.phase == PhaseRunning:
		g.Pause()
	case in.Has(core.ActionPause):
		g.Resume()
	}

	if g.phase == PhaseRunning || g.phase == PhasePaused {
		if in.Has(core.ActionZoomIn) {
			g.setZoom(g.zoom + g.cfg.Camera.ZoomStep)
		}
		if in.Has(core.ActionZoomOut) {
			g.setZoom(g.zoom - g.cfg.Camera.ZoomStep)
		}
	}
}

// tick runs one full simulation pass: spawn and movement, abilities,
// collision, then progression.
func (g *Game) tick(dt float64, in core.InputFrame) {
	g.now += dt
	g.ticks++

	g.movePlayer(in)
	g.spawnTrickle()
	g.spawnElites()
	g.runRespawns()
	g.moveEnemies(dt)
	g.moveProjectiles()
	g.moveGems()

	g.runAbilities()
	g.autoFire()
	g.updateHazards()
	g.decayParticles()

	g.resolveProjectiles()
	g.resolveBlades()
	g.resolveBeams()
	g.resolveHazards()

	if g.resolveContact() {
		g.phase = PhaseDefeated
		g.collect(g.cleanup())
		g.emit(DefeatedEvent{Kills: g.kills, Experience: g.experience})
		return
	}

	before := g.experience
	g.resolvePickups()
	g.collect(g.cleanup())
	if gained := g.experience - before; gained > 0 {
		g.emit(ExperienceEvent{Delta: gained, Total: g.experience})
	}

	g.checkMilestone()
}

func (g *Game) collect(kills int) {
	if kills == 0 {
		return
	}
	g.kills += kills
	g.emit(KillsEvent{Delta: kills, Total: g.kills})
}

func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
}

// GrantCurrency adds to the wallet.
func (g *Game) GrantCurrency(n int) {
	if n <= 0 {
		return
	}
	g.currency += n
	g.emit(CurrencyEvent{Delta: n, Balance: g.currency})
}

// SetCurrency loads a persisted balance without emitting an event.
func (g *Game) SetCurrency(n int) {
	g.currency = max(0, n)
}

// SetPrivileged toggles access to restricted-tier abilities.
func (g *Game) SetPrivileged(b bool) {
	g.privileged = b
}

// SetViewport updates the visible screen size in screen units.
func (g *Game) SetViewport(w, h float64) {
	g.viewW, g.viewH = w, h
	g.setZoom(g.zoom)
}

func (g *Game) setZoom(z float64) {
	lo := g.cfg.Camera.Zoom / 4
	hi := math.Max(lo, g.viewW/(10*2*g.cfg.Player.Radius))
	g.zoom = core.ClampF(z, lo, hi)
}

// State returns the coarse run state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.kills,
		GameOver: g.phase == PhaseDefeated,
		Paused:   g.phase == PhasePaused || g.phase == PhaseIdle,
	}
}

// Phase returns the current suspension state.
func (g *Game) Phase() Phase { return g.phase }

// Player returns a copy of the player.
func (g *Game) Player() Player { return g.store.Player }

// Health returns the player's health.
func (g *Game) Health() float64 { return g.store.Player.Health }

// Enemies returns a snapshot of live enemies.
func (g *Game) Enemies() []Enemy { return g.store.Enemies.Values() }

// Projectiles returns a snapshot of live projectiles.
func (g *Game) Projectiles() []Projectile { return g.store.Projectiles.Values() }

// Gems returns a snapshot of experience gems.
func (g *Game) Gems() []Gem { return g.store.Gems.Values() }

// Charges returns a snapshot of clear and magnet charges.
func (g *Game) Charges() []Charge { return g.store.Charges.Values() }

// Hazards returns a snapshot of active area effects.
func (g *Game) Hazards() []Hazard { return g.store.Hazards.Values() }

// Particles returns a snapshot of visual particles.
func (g *Game) Particles() []Particle { return append([]Particle(nil), g.store.Particles...) }

// Blades returns this tick's orbiting blades.
func (g *Game) Blades() []Blade {
	return BladesAt(g.store.Player.Pos, g.skills.levels[AbilitySpinningAxes], g.skills.rotation)
}

// Beams returns this tick's laser beams, or nil outside an active window.
func (g *Game) Beams() []Beam {
	if !g.beamsActive() {
		return nil
	}
	return BeamsAt(g.store.Player.Pos, g.skills.levels[AbilityLaser], g.now)
}

// Kills returns the kills of the current run.
func (g *Game) Kills() int { return g.kills }

// Experience returns the experience of the current run.
func (g *Game) Experience() int { return g.experience }

// Currency returns the wallet balance.
func (g *Game) Currency() int { return g.currency }

// Zoom returns the camera zoom (screen units per world unit).
func (g *Game) Zoom() float64 { return g.zoom }

// Ticks returns the number of simulation ticks in the current run.
func (g *Game) Ticks() int { return g.ticks }

// Clock returns the simulation clock in ms.
func (g *Game) Clock() float64 { return g.now }

// Bounds returns the world bounds.
func (g *Game) Bounds() core.Bounds { return g.bounds }

// NextMilestone returns the next experience threshold, or -1 when all are consumed.
func (g *Game) NextMilestone() int {
	if g.milestone >= len(g.cfg.Progression.Milestones) {
		return -1
	}
	return g.cfg.Progression.Milestones[g.milestone]
}
