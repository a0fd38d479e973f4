package survival

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '@'
	EnemyChar  = 'z'
	EliteChar  = 'Z'
	BulletChar = '•'
	GemChar    = '◆'
	ClearChar  = '✚'
	MagnetChar = '⊕'
	BladeChar  = '✦'
	BeamChar   = '═'
	GasChar    = '░'
	VortexChar = '◎'
	MeteorChar = '▓'
	BorderChar = '█'
	FacingChar = '·'
	hudRows    = 1
	footerRows = 1
)

var skinColors = []core.Color{core.ColorBrightCyan, core.ColorBrightGreen, core.ColorBrightMagenta, core.ColorBrightBlue}

// camera maps world coordinates to screen cells around the player.
type camera struct {
	center core.Vec2
	zoom   float64
	w, h   int
}

func (c camera) cell(p core.Vec2) (int, int) {
	x := (p.X-c.center.X)*c.zoom/core.CellPixelsW + float64(c.w)/2
	y := (p.Y-c.center.Y)*c.zoom/core.CellPixelsH + float64(c.h)/2
	return int(math.Floor(x)), int(math.Floor(y))
}

// Render draws the arena, the HUD and any phase overlay to the screen.
// The ability chooser is drawn by the platform, which owns its key bindings.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	cam := camera{center: g.store.Player.Pos, zoom: g.zoom, w: dst.Width(), h: dst.Height()}

	g.drawBorder(dst, cam)

	for _, hz := range g.store.Hazards.All() {
		switch hz.Kind {
		case HazardGas:
			g.drawDisc(dst, cam, hz.Pos, hz.Radius, GasChar, core.ColorGreen)
		case HazardVortex:
			g.drawDisc(dst, cam, hz.Pos, VortexCore*2, VortexChar, core.ColorMagenta)
		case HazardMeteor:
			g.drawDisc(dst, cam, hz.Pos, hz.Radius, MeteorChar, core.ColorOrange)
		}
	}

	for _, gem := range g.store.Gems.All() {
		x, y := cam.cell(gem.Pos)
		dst.SetColored(x, y, GemChar, core.ColorBrightGreen)
	}
	for _, c := range g.store.Charges.All() {
		x, y := cam.cell(c.Pos)
		if c.Kind == ChargeClear {
			dst.SetColored(x, y, ClearChar, core.ColorBrightRed)
		} else {
			dst.SetColored(x, y, MagnetChar, core.ColorBrightBlue)
		}
	}

	for _, b := range g.Beams() {
		color := core.ColorBrightYellow
		if b.Giant {
			color = core.ColorBrightRed
		}
		g.drawSegment(dst, cam, b.From, b.To, BeamChar, color)
	}

	for _, e := range g.store.Enemies.All() {
		glyph, color := EnemyChar, core.ColorRed
		if e.Elite {
			glyph, color = EliteChar, core.ColorBrightMagenta
		}
		if e.Frozen > 0 {
			color = core.ColorBrightCyan
		}
		g.drawDisc(dst, cam, e.Pos, e.Radius, glyph, color)
	}

	for _, pr := range g.store.Projectiles.All() {
		x, y := cam.cell(pr.Pos)
		dst.SetColored(x, y, BulletChar, core.ColorBrightYellow)
	}

	for _, b := range g.Blades() {
		x, y := cam.cell(b.Pos)
		dst.SetColored(x, y, BladeChar, core.ColorBrightWhite)
	}

	for _, pt := range g.store.Particles {
		x, y := cam.cell(pt.Pos)
		dst.SetColored(x, y, pt.Glyph, pt.Color)
	}

	p := g.store.Player
	fx, fy := cam.cell(p.Pos.Add(core.FromAngle(p.Facing, g.cfg.Player.Radius*3)))
	dst.SetColored(fx, fy, FacingChar, core.ColorGray)
	px, py := cam.cell(p.Pos)
	color := skinColors[p.Skin%len(skinColors)]
	if g.now-p.LastHurtAt < 200 {
		color = core.ColorBrightRed
	}
	dst.SetColored(px, py, PlayerChar, color)

	g.drawHUD(dst)

	switch g.phase {
	case PhaseIdle:
		drawMessage(dst, "ARENA SURVIVAL", "Press P to start")
	case PhasePaused:
		drawMessage(dst, "PAUSED", "Press P to resume")
	case PhaseDefeated:
		drawMessage(dst, "DEFEATED", fmt.Sprintf("Kills: %d  XP: %d  |  Press R to restart", g.kills, g.experience))
	}
}

// drawBorder marks the world edge where it is on screen.
func (g *Game) drawBorder(dst *core.Screen, cam camera) {
	left, top := cam.cell(core.V(0, 0))
	right, bottom := cam.cell(core.V(g.bounds.W, g.bounds.H))
	for y := max(top, 0); y <= min(bottom, dst.Height()-1); y++ {
		dst.SetColored(left, y, BorderChar, core.ColorGray)
		dst.SetColored(right, y, BorderChar, core.ColorGray)
	}
	for x := max(left, 0); x <= min(right, dst.Width()-1); x++ {
		dst.SetColored(x, top, BorderChar, core.ColorGray)
		dst.SetColored(x, bottom, BorderChar, core.ColorGray)
	}
}

// drawDisc fills every cell whose centre lies within r world units of center.
// Small discs still occupy one cell.
func (g *Game) drawDisc(dst *core.Screen, cam camera, center core.Vec2, r float64, glyph rune, color core.Color) {
	cx, cy := cam.cell(center)
	rx := int(math.Ceil(r * cam.zoom / core.CellPixelsW))
	ry := int(math.Ceil(r * cam.zoom / core.CellPixelsH))
	dst.SetColored(cx, cy, glyph, color)
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			wx := float64(dx) * core.CellPixelsW / cam.zoom
			wy := float64(dy) * core.CellPixelsH / cam.zoom
			if wx*wx+wy*wy <= r*r {
				dst.SetColored(cx+dx, cy+dy, glyph, color)
			}
		}
	}
}

// drawSegment samples a world segment at cell resolution.
func (g *Game) drawSegment(dst *core.Screen, cam camera, from, to core.Vec2, glyph rune, color core.Color) {
	steps := int(core.Dist(from, to)*cam.zoom/core.CellPixelsW) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x, y := cam.cell(from.Add(to.Sub(from).Scale(t)))
		dst.SetColored(x, y, glyph, color)
	}
}

// drawHUD writes the status line and the owned-ability footer.
func (g *Game) drawHUD(dst *core.Screen) {
	p := g.store.Player
	next := "max"
	if m := g.NextMilestone(); m >= 0 {
		next = fmt.Sprint(m)
	}

	hpColor := core.HealthColor(p.Health, p.MaxHealth)

	hp := fmt.Sprintf(" HP %3.0f/%.0f ", p.Health, p.MaxHealth)
	dst.FillRect(core.NewRect(0, 0, dst.Width(), hudRows), ' ', core.ColorDefault)
	dst.DrawText(0, 0, hp, hpColor)
	status := fmt.Sprintf("Kills %d  XP %d/%s  Coins %d  Zoom %.3f", g.kills, g.experience, next, g.currency, g.zoom)
	dst.DrawText(len(hp)+1, 0, status, core.ColorBrightWhite)

	var owned []string
	for _, a := range AllAbilities() {
		if lvl := g.skills.levels[a]; lvl > 0 {
			owned = append(owned, fmt.Sprintf("%s %d", a.Info().Name, lvl))
		}
	}
	if len(owned) == 0 {
		return
	}
	y := dst.Height() - footerRows
	dst.FillRect(core.NewRect(0, y, dst.Width(), footerRows), ' ', core.ColorDefault)
	dst.DrawText(1, y, strings.Join(owned, " · "), core.ColorCyan)
}

// drawMessage draws a centered boxed message.
func drawMessage(dst *core.Screen, title, subtitle string) {
	w := max(len(title), len(subtitle)) + 6
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorWhite)
}
