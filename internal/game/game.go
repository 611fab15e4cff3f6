// Package game wires the maze to its collaborators: sound effects, the
// confetti celebration and the screen renderer. It has no terminal
// dependencies; the platform drives it with timestamps and input frames.
package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slidemaze/internal/audio"
	"github.com/vovakirdan/slidemaze/internal/core"
	"github.com/vovakirdan/slidemaze/internal/maze"
)

// maxFrameStep caps the confetti step after an idle stretch.
const maxFrameStep = 100 * time.Millisecond

// Options configures a Game.
type Options struct {
	Maze      maze.Options
	Particles int   // Confetti particles per win burst
	Seed      int64 // Confetti seed, 0 picks one from the clock
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{
		Maze:      maze.DefaultOptions(),
		Particles: 40,
	}
}

// Game is one playable maze with its sound and celebration.
type Game struct {
	maze     *maze.Maze
	audio    audio.Player
	confetti *Confetti
	logger   *log.Logger
	opts     Options

	screenW  int
	screenH  int
	lastStep time.Time
	muteHit  core.Rect
}

// New builds a game for a layout text. A nil player or logger is replaced by
// a silent one.
func New(layout string, opts Options, player audio.Player, logger *log.Logger) *Game {
	if player == nil {
		player = audio.NewNopPlayer()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Particles < 0 {
		opts.Particles = 0
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		maze:     maze.New(layout, opts.Maze),
		audio:    player,
		confetti: NewConfetti(seed, max(opts.Particles*4, 1)),
		logger:   logger,
		opts:     opts,
	}
	for _, w := range g.maze.Warnings() {
		logger.Warn("layout", "warning", w)
	}
	logger.Debug("maze loaded",
		"width", g.maze.Width(),
		"height", g.maze.Height(),
		"open", g.maze.OpenCount(),
		"portals", len(g.maze.Portals().IDs()),
	)
	return g
}

// Maze returns the underlying maze.
func (g *Game) Maze() *maze.Maze {
	return g.maze
}

// Reset restores the pristine layout and stops the celebration.
func (g *Game) Reset() {
	g.maze.Reset()
	g.confetti.Clear()
	g.logger.Info("maze reset")
}

// Slide forwards a slide request to the maze.
func (g *Game) Slide(dir core.Vec) bool {
	return g.maze.Slide(dir)
}

// ToggleMute flips the sound state.
func (g *Game) ToggleMute() {
	g.audio.SetMuted(!g.audio.Muted())
	g.logger.Debug("mute toggled", "muted", g.audio.Muted())
}

// Resize records the screen size the game renders into.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.confetti.Resize(w, h)
}

// Step applies the frame's input, advances the maze to now and dispatches
// the resulting events.
func (g *Game) Step(now time.Time, in core.InputFrame) core.StepResult {
	if !in.Empty() {
		g.logger.Debug("input", "actions", in.Ordered())
	}
	for _, a := range in.Ordered() {
		switch a {
		case core.ActionReset:
			g.Reset()
		case core.ActionToggleMute:
			g.ToggleMute()
		default:
			if dir, ok := a.Direction(); ok {
				g.Slide(dir)
			}
		}
	}

	for _, ev := range g.maze.Update(now) {
		g.dispatch(ev)
	}

	dt := maxFrameStep
	if !g.lastStep.IsZero() {
		dt = min(now.Sub(g.lastStep), maxFrameStep)
	}
	g.lastStep = now
	g.confetti.Update(dt.Seconds())

	return core.StepResult{State: g.State(), Dirty: g.Dirty()}
}

func (g *Game) dispatch(ev maze.Event) {
	switch ev.Kind {
	case maze.EventMoveStart:
		g.audio.Play(audio.ClipSwoosh, nil)
	case maze.EventStop:
		g.audio.Play(audio.ClipBump, nil)
	case maze.EventTeleport:
		g.audio.Play(audio.ClipGun, nil)
		g.logger.Debug("teleport", "from", ev.At, "to", ev.To)
	case maze.EventChainBroken:
		g.logger.Info("portal chain stopped on a repeat", "at", ev.At)
	case maze.EventWon:
		g.logger.Info("maze completed", "covered", g.maze.CoveredCount())
		g.confetti.Burst(g.opts.Particles)
		logger := g.logger
		g.audio.Play(audio.ClipWeWon, func() {
			logger.Debug("win jingle finished")
		})
	case maze.EventConfetti:
		g.confetti.Burst(g.opts.Particles / 8)
	}
}

// Dirty reports whether more frames are needed.
func (g *Game) Dirty() bool {
	return g.maze.Dirty() || g.confetti.Active()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	covered := g.maze.CoveredCount()
	return core.GameState{
		Covered: covered,
		Total:   covered + g.maze.OpenCount(),
		Won:     g.maze.Won(),
		Muted:   g.audio.Muted(),
	}
}

// MuteHit reports whether a screen position lies on the sound indicator
// drawn by the last Render.
func (g *Game) MuteHit(x, y int) bool {
	return g.muteHit.Contains(x, y)
}
