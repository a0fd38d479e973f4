package survival

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-arena/internal/core"
)

func TestCatalogEntriesAreComplete(t *testing.T) {
	for _, a := range AllAbilities() {
		info := a.Info()
		if info.Name == "" || info.Description == "" {
			t.Errorf("%v: missing display metadata", a)
		}
		if info.MaxLevel() < 1 {
			t.Errorf("%v: max level %d, expected at least 1", a, info.MaxLevel())
		}
		if a.String() == "unknown" {
			t.Errorf("ability %d has no machine name", int(a))
		}

		parsed, err := ParseAbility(a.String())
		if err != nil || parsed != a {
			t.Errorf("ParseAbility(%q) = %v, %v", a.String(), parsed, err)
		}
	}

	if _, err := ParseAbility("laser-cannon"); err == nil {
		t.Error("ParseAbility() should reject unknown names")
	}
}

func TestCatalogTiers(t *testing.T) {
	tests := map[Ability]Tier{
		AbilityAutoHeal:     TierStandard,
		AbilityBlackHole:    TierPremium,
		AbilityMeteorShower: TierPremium,
		AbilityGodMode:      TierRestricted,
		AbilityApocalypse:   TierRestricted,
	}
	for a, want := range tests {
		if got := a.Info().Tier; got != want {
			t.Errorf("%v tier = %v, expected %v", a, got, want)
		}
	}
}

func TestAbilityInterval(t *testing.T) {
	tests := []struct {
		a        Ability
		level    int
		expected float64
	}{
		{AbilityAutoHeal, 1, 20000},
		{AbilityAutoHeal, 3, 5000},
		{AbilityFreezeNova, 2, 10000},
		{AbilityShockwave, 1, 5000},
		{AbilityLaser, 3, 3000},
		{AbilityApocalypse, 1, 5000},
	}
	for _, tc := range tests {
		if got := tc.a.Interval(tc.level); got != tc.expected {
			t.Errorf("%v.Interval(%d) = %f, expected %f", tc.a, tc.level, got, tc.expected)
		}
	}

	if got := catalog[AbilityDefense].Param(0); got != 0 {
		t.Errorf("Param(0) = %f, expected 0 for unowned", got)
	}
	if got := catalog[AbilityDefense].Param(9); got != 0.9 {
		t.Errorf("Param() above max should clamp to the last row, got %f", got)
	}
}

func TestBladesAt(t *testing.T) {
	center := core.V(500, 500)

	if BladesAt(center, 0, 0) != nil {
		t.Error("no blades expected at level 0")
	}

	for level, count := range map[int]int{1: 1, 2: 3, 3: 5} {
		blades := BladesAt(center, level, 1.2)
		if len(blades) != count {
			t.Errorf("level %d: %d blades, expected %d", level, len(blades), count)
		}
		for _, b := range blades {
			if d := core.Dist(b.Pos, center); math.Abs(d-BladeOrbit) > 1e-9 {
				t.Errorf("blade at distance %f, expected orbit %f", d, BladeOrbit)
			}
		}
	}
}

func TestBeamsAt(t *testing.T) {
	center := core.V(0, 0)

	beams := BeamsAt(center, 1, 0)
	if len(beams) != 1 || beams[0].Giant {
		t.Fatalf("level 1 should produce one normal beam, got %+v", beams)
	}
	if d := core.Dist(beams[0].From, beams[0].To); math.Abs(d-BeamLength) > 1e-9 {
		t.Errorf("beam length %f, expected %f", d, BeamLength)
	}
	// Sweep angle at clock 0 points along +x
	if math.Abs(beams[0].To.Y) > 1e-9 {
		t.Errorf("beam at clock 0 should point along +x, got %v", beams[0].To)
	}

	giant := BeamsAt(center, 3, 1500)
	if len(giant) != 5 {
		t.Fatalf("level 3 should produce 5 beams, got %d", len(giant))
	}
	for _, b := range giant {
		if !b.Giant || b.HalfWidth != GiantHalfWidth {
			t.Errorf("level 3 beam should be giant, got %+v", b)
		}
	}
}
