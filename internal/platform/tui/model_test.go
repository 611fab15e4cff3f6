package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/slidemaze/internal/core"
)

// fakeGame stays dirty for a fixed number of frames after each input.
type fakeGame struct {
	steps      int
	inputs     [][]core.Action
	dirtyFor   int
	w, h       int
	resizes    int
	muteX      int
	muteY      int
	lastStepAt time.Time
}

func (g *fakeGame) Resize(w, h int) {
	g.w, g.h = w, h
	g.resizes++
}

func (g *fakeGame) Step(now time.Time, in core.InputFrame) core.StepResult {
	g.steps++
	g.lastStepAt = now
	g.inputs = append(g.inputs, append([]core.Action(nil), in.Ordered()...))
	if !in.Empty() {
		g.dirtyFor = 2
	}
	dirty := g.dirtyFor > 0
	if g.dirtyFor > 0 {
		g.dirtyFor--
	}
	return core.StepResult{State: g.State(), Dirty: dirty}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "maze")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Covered: g.steps, Total: 10}
}

func (g *fakeGame) MuteHit(x, y int) bool {
	return x == g.muteX && y == g.muteY
}

func newTestModel(g *fakeGame) Model {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60}
	return NewModel(g, cfg, Options{SwipeThreshold: 2, CellWidth: 2})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

// frame delivers the currently scheduled frame.
func frame(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, FrameMsg{Gen: m.gen, At: time.Now()})
}

func TestModelInitSchedulesFrame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should schedule the first frame")
	}
	if !m.Pending() {
		t.Error("first frame should be pending")
	}
	if g.w != 40 || g.h != 11 {
		t.Errorf("game sized %dx%d, want 40x11 (one help line)", g.w, g.h)
	}
}

func TestModelIdleLoopStops(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, cmd := frame(t, m)
	if cmd != nil {
		t.Error("an idle game should not schedule another frame")
	}
	if m.Pending() {
		t.Error("no frame should be pending")
	}
	if g.steps != 1 {
		t.Errorf("steps = %d, want 1", g.steps)
	}
}

func TestModelKeyKicksOneFrame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	m, _ = frame(t, m)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if cmd == nil {
		t.Fatal("input should restart the loop")
	}
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if cmd != nil {
		t.Error("a second input should reuse the pending frame")
	}

	m, cmd = frame(t, m)
	want := []core.Action{core.ActionRight, core.ActionReset}
	got := g.inputs[len(g.inputs)-1]
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("frame input = %v, want %v", got, want)
	}
	if cmd == nil {
		t.Error("a dirty game should keep the loop running")
	}

	// Runs until the fake settles, then stops.
	for i := 0; i < 5 && cmd != nil; i++ {
		m, cmd = frame(t, m)
	}
	if cmd != nil || m.Pending() {
		t.Error("loop should stop once the game is clean")
	}
	if last := g.inputs[len(g.inputs)-1]; len(last) != 0 {
		t.Errorf("input not cleared after frame: %v", last)
	}
}

func TestModelDropsStaleFrames(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	stale := m.gen

	m, _ = frame(t, m)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})

	m, cmd := update(t, m, FrameMsg{Gen: stale, At: time.Now()})
	if cmd != nil {
		t.Error("stale frame should be ignored")
	}
	if g.steps != 1 {
		t.Errorf("steps = %d, want 1", g.steps)
	}
	if !m.Pending() {
		t.Error("the fresh frame should still be pending")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	m, _ = frame(t, m)

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if cmd == nil {
		t.Error("resize should kick a frame")
	}
	if g.w != 100 || g.h != 29 {
		t.Errorf("game sized %dx%d, want 100x29", g.w, g.h)
	}

	_, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 0})
	if g.h != 0 {
		t.Errorf("height = %d, want clamped to 0", g.h)
	}
}

func TestModelHelpToggle(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	short := g.h

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if cmd != nil {
		t.Error("help should not kick a frame")
	}
	if g.h >= short {
		t.Errorf("full help should shrink the game area, got %d (was %d)", g.h, short)
	}
	if len(g.inputs) != 0 {
		t.Error("help must not reach the game")
	}
}

func TestModelQuit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(&fakeGame{})
			m, cmd := update(t, m, tt.msg)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if v := m.View(); v != "" {
				t.Errorf("View after quit = %q, want empty", v)
			}
		})
	}
}

func TestModelSwipe(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	m, _ = frame(t, m)

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, cmd := update(t, m, tea.MouseMsg{X: 4, Y: 6, Action: tea.MouseActionRelease})
	if cmd == nil {
		t.Fatal("swipe should kick a frame")
	}
	_, _ = frame(t, m)

	got := g.inputs[len(g.inputs)-1]
	if len(got) != 1 || got[0] != core.ActionLeft {
		t.Errorf("swipe input = %v, want [Left]", got)
	}
}

func TestModelClickMute(t *testing.T) {
	g := &fakeGame{muteX: 30, muteY: 0}
	m := newTestModel(g)
	m, _ = frame(t, m)

	// Click elsewhere does nothing.
	m, _ = update(t, m, tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, cmd := update(t, m, tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionRelease})
	if cmd != nil {
		t.Error("click off the indicator should be ignored")
	}

	m, _ = update(t, m, tea.MouseMsg{X: 30, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, cmd = update(t, m, tea.MouseMsg{X: 30, Y: 0, Action: tea.MouseActionRelease})
	if cmd == nil {
		t.Fatal("click on the indicator should kick a frame")
	}
	_, _ = frame(t, m)

	got := g.inputs[len(g.inputs)-1]
	if len(got) != 1 || got[0] != core.ActionToggleMute {
		t.Errorf("click input = %v, want [ToggleMute]", got)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&fakeGame{})
	view := ansi.Strip(m.View())

	if len(view) < 4 || view[:4] != "maze" {
		t.Errorf("view should start with the game screen, got %q", view)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "░░", core.ColorOpen)
	s.DrawTextColored(2, 0, "██", core.ColorCovered)
	s.DrawTextColored(4, 0, "33", core.ColorHue(330))
	s.DrawText(0, 1, "ab")

	if got, want := ansi.Strip(RenderScreen(s)), s.String(); got != want {
		t.Errorf("RenderScreen text = %q, want %q", got, want)
	}
}
