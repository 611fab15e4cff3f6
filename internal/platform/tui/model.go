package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/slidemaze/internal/core"
)

// Game is what the model drives. Games contain pure logic with no Bubble Tea
// dependency; the platform handles input mapping, timing and display.
type Game interface {
	// Resize tells the game the size of the screen it renders into.
	Resize(w, h int)

	// Step applies one frame of input and advances the game to now.
	// StepResult.Dirty asks for another frame.
	Step(now time.Time, in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState

	// MuteHit reports whether a screen position is on the sound toggle.
	MuteHit(x, y int) bool
}

// Options tunes pointer input.
type Options struct {
	SwipeThreshold int // Maze cells a drag must cover
	CellWidth      int // Terminal columns per maze cell
}

// Model is the Bubble Tea model running one maze.
//
// Frames are self-scheduling: a frame schedules the next one only while the
// game reports dirty, so an idle maze costs nothing. Input and resizes kick a
// single frame, which restarts the loop if it had stopped. At most one frame
// is pending at any time.
type Model struct {
	game     Game
	screen   *core.Screen
	config   core.RuntimeConfig
	opts     Options
	keys     *KeyMapper
	help     help.Model
	input    core.InputFrame
	mouse    gesture
	state    core.GameState
	gen      uint64
	pending  bool
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.SwipeThreshold < 1 {
		opts.SwipeThreshold = 2
	}
	if opts.CellWidth < 1 {
		opts.CellWidth = 1
	}

	m := Model{
		game:    game,
		config:  cfg,
		opts:    opts,
		keys:    NewKeyMapper(),
		help:    help.New(),
		input:   core.NewInputFrame(),
		state:   game.State(),
		gen:     1,
		pending: true,
	}
	m.screen = core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-m.helpHeight(), 0))
	m.help.Width = cfg.ScreenW
	game.Resize(m.screen.Width(), m.screen.Height())
	return m
}

// Init schedules the first frame.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.gen, m.interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}

	action, _ := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}
	return m, m.kick()
}

// handleMouse turns swipes, right clicks and indicator clicks into actions.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	res := m.mouse.handle(msg, m.opts.SwipeThreshold, m.opts.CellWidth)
	switch {
	case res.action != core.ActionNone:
		m.input.Set(res.action)
	case res.click && m.game.MuteHit(res.x, res.y):
		m.input.Set(core.ActionToggleMute)
	default:
		return m, nil
	}
	return m, m.kick()
}

// handleResize processes window resize events. The maze keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, m.kick()
}

// handleFrame runs one game frame and schedules the next while the game is dirty.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if !m.pending || msg.Gen != m.gen {
		return m, nil
	}
	m.pending = false

	result := m.game.Step(msg.At, m.input)
	m.state = result.State
	m.input.Clear()

	if result.Dirty {
		return m, m.kick()
	}
	return m, nil
}

// kick schedules a frame unless one is already pending.
func (m *Model) kick() tea.Cmd {
	if m.pending {
		return nil
	}
	m.pending = true
	m.gen++
	return frameCmd(m.gen, m.interval())
}

func (m Model) interval() time.Duration {
	return time.Second / time.Duration(m.config.TickRate)
}

// layout fits the game screen above the help line.
func (m *Model) layout() {
	h := max(m.config.ScreenH-m.helpHeight(), 0)
	m.screen.Resize(max(m.config.ScreenW, 0), h)
	m.game.Resize(m.screen.Width(), m.screen.Height())
}

func (m Model) helpHeight() int {
	return lipgloss.Height(m.help.View(m.keys.Keys()))
}

// Pending reports whether a frame is scheduled.
func (m Model) Pending() bool {
	return m.pending
}

// State returns the game state seen by the last frame.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Swipes and clicks
	)

	_, err := p.Run()
	return err
}
