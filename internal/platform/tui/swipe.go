package tui

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/slidemaze/internal/core"
)

// SwipeDirection classifies a pointer drag from (x0, y0) to (x1, y1) in
// terminal cells. Horizontal distance is divided by cellWidth so both axes
// are measured in maze cells. The dominant axis wins; a drag shorter than
// threshold cells on it is not a swipe.
func SwipeDirection(x0, y0, x1, y1, threshold, cellWidth int) (core.Action, bool) {
	if cellWidth < 1 {
		cellWidth = 1
	}
	dx := float64(x1-x0) / float64(cellWidth)
	dy := float64(y1 - y0)
	t := float64(threshold)

	if math.Abs(dx) >= math.Abs(dy) {
		switch {
		case dx >= t:
			return core.ActionRight, true
		case dx <= -t:
			return core.ActionLeft, true
		}
		return core.ActionNone, false
	}
	switch {
	case dy >= t:
		return core.ActionDown, true
	case dy <= -t:
		return core.ActionUp, true
	}
	return core.ActionNone, false
}

// gesture tracks a left-button press until its release.
type gesture struct {
	active bool
	x, y   int
}

// mouseResult is what a mouse event means to the model.
type mouseResult struct {
	action core.Action
	click  bool // left press and release without a swipe
	x, y   int
}

// handle feeds one mouse event to the tracker.
func (g *gesture) handle(msg tea.MouseMsg, threshold, cellWidth int) mouseResult {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight:
		g.active = false
		return mouseResult{action: core.ActionReset}

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		g.active = true
		g.x, g.y = msg.X, msg.Y

	case msg.Action == tea.MouseActionRelease && g.active:
		g.active = false
		if a, ok := SwipeDirection(g.x, g.y, msg.X, msg.Y, threshold, cellWidth); ok {
			return mouseResult{action: a}
		}
		return mouseResult{click: true, x: g.x, y: g.y}
	}
	return mouseResult{}
}
