package maze

import (
	"math"
	"time"

	"github.com/vovakirdan/slidemaze/internal/core"
)

// DefaultCelebration is how long confetti keeps firing after a win.
const DefaultCelebration = 2500 * time.Millisecond

// Options tunes a maze.
type Options struct {
	Speed       float64       // Player speed in cells per second
	Celebration time.Duration // Confetti window after a win
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{
		Speed:       DefaultSpeed,
		Celebration: DefaultCelebration,
	}
}

// Maze owns the grid, the portal registry and the player.
type Maze struct {
	text string
	opts Options

	grid     *Grid
	portals  *Portals
	player   *Player
	start    Pos
	warnings []string

	// chain holds portals left during the current user slide.
	chain map[Pos]bool

	won            bool
	celebrating    bool
	celebrateUntil time.Time
}

// New parses text and builds a maze.
func New(text string, opts Options) *Maze {
	if !(opts.Speed > 0) || math.IsInf(opts.Speed, 0) {
		opts.Speed = DefaultSpeed
	}
	if opts.Celebration < 0 {
		opts.Celebration = 0
	}
	m := &Maze{
		text: text,
		opts: opts,
	}
	m.Reset()
	return m
}

// Reset rebuilds the maze from its layout text. Any in-flight animation,
// covered cells and the win latch are discarded.
func (m *Maze) Reset() {
	l := Parse(m.text)
	m.grid = l.Grid
	m.portals = l.Portals
	m.start = l.Start
	m.warnings = l.Warnings
	m.player = newPlayer(l.Start, m.opts.Speed)
	m.chain = make(map[Pos]bool)
	m.won = false
	m.celebrating = false
	m.celebrateUntil = time.Time{}
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.grid.Width()
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.grid.Height()
}

// Grid returns the cell board.
func (m *Maze) Grid() *Grid {
	return m.grid
}

// Cell returns the cell at p; ok is false outside the grid.
func (m *Maze) Cell(p Pos) (Cell, bool) {
	return m.grid.At(p)
}

// Portals returns the portal registry.
func (m *Maze) Portals() *Portals {
	return m.portals
}

// Player returns the player.
func (m *Maze) Player() *Player {
	return m.player
}

// Start returns the declared start cell.
func (m *Maze) Start() Pos {
	return m.start
}

// Warnings returns what the parser flagged about the layout.
func (m *Maze) Warnings() []string {
	return m.warnings
}

// Won reports whether the win latch is set.
func (m *Maze) Won() bool {
	return m.won
}

// Celebrating reports whether the confetti window is open.
func (m *Maze) Celebrating() bool {
	return m.celebrating
}

// Dirty reports whether more frames are needed.
func (m *Maze) Dirty() bool {
	return m.player.Dirty() || m.celebrating
}

// OpenCount returns the number of cells still to cover.
func (m *Maze) OpenCount() int {
	return m.grid.Count(KindOpen)
}

// CoveredCount returns the number of covered cells.
func (m *Maze) CoveredCount() int {
	return m.grid.Count(KindCovered)
}

// Next resolves where a slide in dir from the player's cell comes to rest.
// Stepping stops before a wall or the grid edge, or on a portal cell.
// If the first step is blocked the current cell is returned.
func (m *Maze) Next(dir core.Vec) Pos {
	return m.next(m.player.Cell(), dir)
}

func (m *Maze) next(from Pos, dir core.Vec) Pos {
	cur := from
	step := cur.Add(dir)
	for m.grid.Movable(step) {
		cur = step
		if cell, _ := m.grid.At(cur); cell.Kind == KindPortal {
			return cur
		}
		step = cur.Add(dir)
	}
	return cur
}

// Slide asks the player to slide in dir. It returns false when the player is
// busy, either moving or holding a slide that has not started yet. An
// accepted slide starts a new portal chain.
func (m *Maze) Slide(dir core.Vec) bool {
	if m.player.Moving() || m.player.Dirty() {
		return false
	}
	target := m.Next(dir)
	if !m.player.slide(dir, target) {
		return false
	}
	clear(m.chain)
	return true
}

// Update advances the maze to now and returns what happened.
func (m *Maze) Update(now time.Time) []Event {
	var events []Event

	from := m.player.Cell()
	prev := m.player.Pos()
	started, arrived := m.player.update(now)
	if started {
		events = append(events, Event{Kind: EventMoveStart, At: from, To: m.player.Target()})
	}
	m.sweep(prev, m.player.Pos())
	if arrived {
		events = append(events, m.arrive()...)
	}

	m.cover(m.player.Pos())
	events = append(events, m.checkWin(now)...)
	return events
}

// arrive handles the player snapping onto its target.
func (m *Maze) arrive() []Event {
	at := m.player.Cell()
	cell, _ := m.grid.At(at)
	if cell.Kind != KindPortal {
		m.player.stop()
		return []Event{{Kind: EventStop, At: at}}
	}

	partner, ok := m.portals.Partner(cell.Portal, at)
	if !ok {
		m.player.stop()
		return []Event{{Kind: EventStop, At: at}}
	}

	if m.chain[at] {
		m.player.stop()
		return []Event{{Kind: EventChainBroken, At: at}, {Kind: EventStop, At: at}}
	}
	m.chain[at] = true

	m.player.teleport(partner)
	events := []Event{{Kind: EventTeleport, At: at, To: partner}}

	dir := m.player.Dir()
	target := m.next(partner, dir)
	if target == partner {
		m.player.stop()
		return append(events, Event{Kind: EventStop, At: partner})
	}
	m.player.slide(dir, target)
	return events
}

// cover marks the cells under a possibly fractional position.
func (m *Maze) cover(v core.Vec) {
	m.grid.Cover(PosOf(v.Floor()))
	m.grid.Cover(PosOf(v.Ceil()))
}

// sweep covers every cell between two positions on the same row or column.
// A fast slide can cross more than one cell between frames.
func (m *Maze) sweep(a, b core.Vec) {
	switch {
	case a.R == b.R:
		r := int(math.Round(a.R))
		lo, hi := int(math.Floor(math.Min(a.C, b.C))), int(math.Ceil(math.Max(a.C, b.C)))
		for c := lo; c <= hi; c++ {
			m.grid.Cover(Pos{R: r, C: c})
		}
	case a.C == b.C:
		c := int(math.Round(a.C))
		lo, hi := int(math.Floor(math.Min(a.R, b.R))), int(math.Ceil(math.Max(a.R, b.R)))
		for r := lo; r <= hi; r++ {
			m.grid.Cover(Pos{R: r, C: c})
		}
	default:
		m.cover(a)
		m.cover(b)
	}
}

// checkWin latches the win the first time no open cell is left and keeps the
// celebration going until its window closes.
func (m *Maze) checkWin(now time.Time) []Event {
	if m.won {
		m.celebrating = now.Before(m.celebrateUntil)
		if m.celebrating {
			return []Event{{Kind: EventConfetti, At: m.player.Cell()}}
		}
		return nil
	}

	if m.grid.HasOpen() {
		return nil
	}

	m.won = true
	m.celebrateUntil = now.Add(m.opts.Celebration)
	m.celebrating = m.opts.Celebration > 0
	at := m.player.Cell()
	events := []Event{{Kind: EventWon, At: at}}
	if m.celebrating {
		events = append(events, Event{Kind: EventConfetti, At: at})
	}
	return events
}
