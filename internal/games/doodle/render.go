package doodle

import (
	"fmt"
	"math"

	"github.com/vovakirdan/doodle-arcade/internal/core"
	"github.com/vovakirdan/doodle-arcade/internal/sim"
)

// Visual characters for rendering
const (
	PlatformChar  = '▀'
	BreakableChar = '╌'
	MovingChar    = '═'
	CoinChar      = '$'
	BonusChar     = '★'
	TrapChar      = '▲'
	PlayerChar    = '█'
	HoleChar      = '░'
)

var holeSpin = []rune{'◐', '◓', '◑', '◒'}

// Render draws the latest frame into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.session == nil {
		g.drawMessage(dst, "Window too small", "Resize to continue")
		return
	}

	f := g.frame
	cellH := g.cfg.Render.CellHeight
	if g.sky != nil {
		g.sky.Draw(dst, HUDHeight, dst.Height(), f.ScrollOffset/cellH)
	}

	for _, h := range f.BlackHoles {
		g.drawBlackHole(dst, h)
	}
	for _, p := range f.Platforms {
		g.fill(dst, p.Rect, platformGlyph(p.Type))
	}
	for _, c := range f.Coins {
		g.fill(dst, c.Rect, glyph{CoinChar, core.ColorBrightYellow})
	}
	for _, b := range f.Bonuses {
		g.fill(dst, b.Rect, glyph{BonusChar, core.ColorBrightMagenta})
	}
	for _, t := range f.Traps {
		g.fill(dst, t.Rect, glyph{TrapChar, core.ColorRed})
	}
	g.drawPlayer(dst, f.Player)

	g.drawHUD(dst, f)

	if f.GameOver() {
		g.drawMessage(dst, "GAME OVER", fmt.Sprintf("%s  |  Score: %d  |  Press R to restart", reasonText(f.Reason), f.Score))
	}
}

type glyph struct {
	r rune
	c core.Color
}

func platformGlyph(t sim.PlatformType) glyph {
	switch t {
	case sim.PlatformBreakable:
		return glyph{BreakableChar, core.ColorOrange}
	case sim.PlatformMoving:
		return glyph{MovingChar, core.ColorCyan}
	default:
		return glyph{PlatformChar, core.ColorGreen}
	}
}

// cells maps a world rectangle to a cell rectangle below the HUD.
// Every visible entity covers at least one cell.
func (g *Game) cells(r core.Rect) (x, y, w, h int) {
	cw, ch := g.cfg.Render.CellWidth, g.cfg.Render.CellHeight
	x = int(math.Floor(r.X / cw))
	y = int(math.Floor(r.Y/ch)) + HUDHeight
	w = max(int(math.Round(r.W/cw)), 1)
	h = max(int(math.Round(r.H/ch)), 1)
	return x, y, w, h
}

func (g *Game) fill(dst *core.Screen, r core.Rect, gl glyph) {
	x, y, w, h := g.cells(r)
	for cy := max(y, HUDHeight); cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			dst.SetColored(cx, cy, gl.r, gl.c)
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, p sim.Player) {
	g.fill(dst, p.Rect, glyph{PlayerChar, core.ColorBrightGreen})

	x, y, w, _ := g.cells(p.Rect)
	if y < HUDHeight || w < 2 {
		return
	}
	// Eyes look where the player is heading.
	eye := x + w/2 - 1
	switch {
	case p.VX < 0:
		eye = x
	case p.VX > 0:
		eye = x + w - 2
	}
	dst.SetColored(eye, y, '•', core.ColorDefault)
	dst.SetColored(eye+1, y, '•', core.ColorDefault)
}

func (g *Game) drawBlackHole(dst *core.Screen, h sim.BlackHole) {
	g.fill(dst, h.Rect, glyph{HoleChar, core.ColorMagenta})

	x, y, w, hh := g.cells(h.Rect)
	cy := y + hh/2
	if cy < HUDHeight {
		return
	}
	spin := holeSpin[int(h.Rotation/(math.Pi/2))%len(holeSpin)]
	dst.SetColored(x+w/2, cy, spin, core.ColorWhite)
}

func (g *Game) drawHUD(dst *core.Screen, f sim.Frame) {
	altitude := int(f.ScrollOffset / g.cfg.Render.CellHeight)
	hud := fmt.Sprintf(" Score: %d   Best: %d   Altitude: %d ", f.Score, f.HighScore, altitude)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightYellow)
	if g.pilot != nil {
		label := "AUTOPILOT"
		dst.DrawTextColored(dst.Width()-len(label)-2, 0, label, core.ColorCyan)
	}
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// drawMessage draws a boxed message in the center of the screen.
func (g *Game) drawMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)
	dst.DrawTextCentered(boxY+1, title, core.ColorRed)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorDefault)
}

func reasonText(r sim.Reason) string {
	switch r {
	case sim.ReasonTrap:
		return "Caught by a trap"
	case sim.ReasonBlackHole:
		return "Swallowed by a black hole"
	case sim.ReasonFell:
		return "Fell off the screen"
	default:
		return "Run ended"
	}
}
