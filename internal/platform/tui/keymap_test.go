package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/slidemaze/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runes("w"), core.ActionUp, false},
		{"k", runes("k"), core.ActionUp, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runes("d"), core.ActionRight, false},
		{"l", runes("l"), core.ActionRight, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"s", runes("s"), core.ActionDown, false},
		{"j", runes("j"), core.ActionDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runes("a"), core.ActionLeft, false},
		{"h", runes("h"), core.ActionLeft, false},
		{"r", runes("r"), core.ActionReset, false},
		{"m", runes("m"), core.ActionToggleMute, false},
		{"?", runes("?"), core.ActionHelp, false},
		{"q", runes("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runes("x"), core.ActionNone, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want {
				t.Errorf("MapKey() action = %v, want %v", got, tt.want)
			}
			if quit != tt.wantQuit {
				t.Errorf("MapKey() quit = %v, want %v", quit, tt.wantQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runes("d"), &frame) {
		t.Error("d is not a quit key")
	}
	km.MapKeyToFrame(runes("?"), &frame)
	km.MapKeyToFrame(runes("x"), &frame)

	if got := frame.Ordered(); len(got) != 1 || got[0] != core.ActionRight {
		t.Errorf("frame = %v, want only Right (help is handled by the platform)", got)
	}

	if !km.MapKeyToFrame(runes("q"), &frame) {
		t.Error("q should report quit")
	}
	if frame.Actions[core.ActionQuit] {
		t.Error("quit never reaches the frame")
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if n := len(keys.ShortHelp()); n != 7 {
		t.Errorf("ShortHelp has %d bindings, want 7", n)
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 8 {
		t.Errorf("FullHelp has %d bindings, want 8", total)
	}
}

func TestSwipeDirection(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		threshold      int
		cellWidth      int
		want           core.Action
		wantOK         bool
	}{
		{"right", 0, 0, 4, 0, 2, 2, core.ActionRight, true},
		{"left", 10, 3, 2, 4, 2, 2, core.ActionLeft, true},
		{"down", 5, 1, 6, 4, 2, 2, core.ActionDown, true},
		{"up", 5, 9, 5, 2, 2, 2, core.ActionUp, true},
		{"too short horizontal", 0, 0, 3, 0, 2, 2, core.ActionNone, false},
		{"too short vertical", 0, 0, 0, 1, 2, 2, core.ActionNone, false},
		{"no movement", 7, 7, 7, 7, 2, 2, core.ActionNone, false},
		{"cell width scales x", 0, 0, 4, 3, 2, 2, core.ActionDown, true},
		{"zero cell width treated as one", 0, 0, 2, 0, 2, 0, core.ActionRight, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SwipeDirection(tt.x0, tt.y0, tt.x1, tt.y1, tt.threshold, tt.cellWidth)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("SwipeDirection() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestGestureRightClickResets(t *testing.T) {
	var g gesture
	res := g.handle(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, 2, 2)
	if res.action != core.ActionReset {
		t.Errorf("right click action = %v, want Reset", res.action)
	}

	// A release with no tracked press is ignored.
	res = g.handle(tea.MouseMsg{X: 9, Y: 1, Action: tea.MouseActionRelease}, 2, 2)
	if res.action != core.ActionNone || res.click {
		t.Errorf("untracked release = %+v, want nothing", res)
	}
}
