package survival

import (
	"math"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// Orbiting blade and beam geometry. Neither is stored: both are recomputed
// every tick from the player position, the ability level and a clock.
const (
	BladeOrbit    = 100.0
	BladeRadius   = 35.0
	BladeRotation = 0.05 // radians per tick

	BeamLength      = 600.0
	BeamHalfWidth   = 5.0
	GiantBeamLength = 1200.0
	GiantHalfWidth  = 20.0
	BeamWindow      = 500.0 // ms a beam activation stays visible
)

// Blade is one orbiting weapon for the current tick.
type Blade struct {
	Pos    core.Vec2
	Radius float64
}

// Beam is one rotating laser segment for the current tick.
type Beam struct {
	From      core.Vec2
	To        core.Vec2
	HalfWidth float64
	Giant     bool
}

// BladesAt returns the blades orbiting center at the given level and rotation.
func BladesAt(center core.Vec2, level int, rotation float64) []Blade {
	n := int(catalog[AbilitySpinningAxes].Param(level))
	if n == 0 {
		return nil
	}
	out := make([]Blade, n)
	for i := range out {
		a := rotation + float64(i)*2*math.Pi/float64(n)
		out[i] = Blade{Pos: center.Add(core.FromAngle(a, BladeOrbit)), Radius: BladeRadius}
	}
	return out
}

// BeamsAt returns the beams emitted from center at the given level and
// simulation clock (ms). The sweep angle is the clock in seconds mod 2π.
func BeamsAt(center core.Vec2, level int, clock float64) []Beam {
	n := int(catalog[AbilityLaser].Param(level))
	if n == 0 {
		return nil
	}
	giant := level >= catalog[AbilityLaser].MaxLevel()
	length, half := BeamLength, BeamHalfWidth
	if giant {
		length, half = GiantBeamLength, GiantHalfWidth
	}

	base := math.Mod(clock/1000, 2*math.Pi)
	out := make([]Beam, n)
	for i := range out {
		a := base + float64(i)*2*math.Pi/float64(n)
		out[i] = Beam{
			From:      center,
			To:        center.Add(core.FromAngle(a, length)),
			HalfWidth: half,
			Giant:     giant,
		}
	}
	return out
}
