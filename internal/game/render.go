package game

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/slidemaze/internal/core"
	"github.com/vovakirdan/slidemaze/internal/maze"
)

// CellWidth is the number of terminal columns one maze cell occupies.
const CellWidth = 2

// hudHeight is the status line plus its separator.
const hudHeight = 2

// portalHueStep spreads portal ids around the color wheel.
const portalHueStep = 110

// Indicator labels for the sound toggle.
const (
	soundOn  = "[♪ on ]"
	soundOff = "[♪ off]"
)

// Origin returns the screen position of maze cell (0,0) for a w×h screen,
// and whether the maze fits.
func (g *Game) Origin(w, h int) (x, y int, ok bool) {
	mw := g.maze.Width() * CellWidth
	mh := g.maze.Height()
	areaH := h - hudHeight
	if w < mw || areaH < mh {
		return 0, 0, false
	}
	return (w - mw) / 2, hudHeight + (areaH-mh)/2, true
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() != g.screenW || dst.Height() != g.screenH {
		g.Resize(dst.Width(), dst.Height())
	}

	g.renderHUD(dst)

	ox, oy, ok := g.Origin(dst.Width(), dst.Height())
	if !ok {
		g.renderOverlay(dst, "Window too small", "Resize to continue", core.ColorYellow)
		return
	}

	g.renderMaze(dst, ox, oy)
	g.renderPlayer(dst, ox, oy)
	g.confetti.Render(dst)

	if g.maze.Won() {
		g.renderOverlay(dst, "You win!", "Press R to play again", core.ColorBrightGreen)
	}
}

// renderHUD draws the status bar with the clickable sound indicator on the right.
func (g *Game) renderHUD(dst *core.Screen) {
	st := g.State()
	hud := fmt.Sprintf(" Slide Maze  Covered: %d/%d", st.Covered, st.Total)
	dst.DrawText(0, 0, hud)

	label := soundOn
	color := core.ColorBrightGreen
	if st.Muted {
		label = soundOff
		color = core.ColorGray
	}
	n := utf8.RuneCountInString(label)
	x := dst.Width() - n - 1
	g.muteHit = core.NewRect(x, 0, n, 1)
	dst.DrawTextColored(x, 0, label, color)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMaze draws every cell two columns wide.
func (g *Game) renderMaze(dst *core.Screen, ox, oy int) {
	g.maze.Grid().Each(func(p maze.Pos, c maze.Cell) {
		x := ox + p.C*CellWidth
		y := oy + p.R
		switch c.Kind {
		case maze.KindOpen:
			dst.SetColored(x, y, '░', core.ColorOpen)
			dst.SetColored(x+1, y, '░', core.ColorOpen)
		case maze.KindCovered:
			dst.SetColored(x, y, '█', core.ColorCovered)
			dst.SetColored(x+1, y, '█', core.ColorCovered)
		case maze.KindPortal:
			color := portalColor(c.Portal)
			dst.SetColored(x, y, c.Portal, color)
			dst.SetColored(x+1, y, c.Portal, color)
		}
	})
}

// portalColor tints a portal by its id. Digit ids step around the wheel by
// their value; other runes use their code point.
func portalColor(id rune) core.Color {
	n := int(id)
	if id >= '0' && id <= '9' {
		n = int(id - '0')
	}
	return core.ColorHue(n * portalHueStep)
}

// renderPlayer draws the token at its continuous position, at half-cell
// horizontal resolution.
func (g *Game) renderPlayer(dst *core.Screen, ox, oy int) {
	pos := g.maze.Player().Pos()
	x := ox + int(math.Round(pos.C*CellWidth))
	y := oy + int(math.Round(pos.R))
	dst.SetColored(x, y, '(', core.ColorBrightYellow)
	dst.SetColored(x+1, y, ')', core.ColorBrightYellow)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string, c core.Color) {
	w := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2)) + 4
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(box, ' ')
	dst.StrokeRect(box, c)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
