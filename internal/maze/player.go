package maze

import (
	"time"

	"github.com/vovakirdan/slidemaze/internal/core"
)

// DefaultSpeed is the slide speed in cells per second.
const DefaultSpeed = 50.0

// State is the animation state of the player.
type State int

const (
	StateIdle State = iota
	StateMoving
)

// String returns the string representation of a state.
func (s State) String() string {
	if s == StateMoving {
		return "moving"
	}
	return "idle"
}

// Player is the sliding token. It moves along a single axis toward a target
// cell with an ease-in curve and reports when it arrives.
type Player struct {
	pos   core.Vec // Continuous position, fractional while moving
	next  core.Vec // Target cell
	dir   core.Vec
	state State
	dirty bool

	moveStart time.Time
	startPos  core.Vec
	diff      core.Vec
	duration  time.Duration
	speed     float64
}

func newPlayer(start Pos, speed float64) *Player {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	p := start.Vec()
	return &Player{
		pos:      p,
		next:     p,
		startPos: p,
		dir:      core.Up,
		speed:    speed,
	}
}

// Pos returns the continuous position.
func (p *Player) Pos() core.Vec {
	return p.pos
}

// Cell returns the nearest grid cell.
func (p *Player) Cell() Pos {
	return PosOf(p.pos)
}

// Target returns the cell the player is heading to.
func (p *Player) Target() Pos {
	return PosOf(p.next)
}

// Dir returns the direction of the last accepted slide.
func (p *Player) Dir() core.Vec {
	return p.dir
}

// State returns the animation state.
func (p *Player) State() State {
	return p.state
}

// Moving reports whether an animation is in flight.
func (p *Player) Moving() bool {
	return p.state == StateMoving
}

// Dirty reports whether the player still needs frames.
func (p *Player) Dirty() bool {
	return p.dirty
}

// Duration returns the length of the current or last move.
func (p *Player) Duration() time.Duration {
	return p.duration
}

// slide sets a new target while idle. Requests while moving are dropped.
func (p *Player) slide(dir core.Vec, target Pos) bool {
	if p.state != StateIdle {
		return false
	}
	p.dir = dir
	p.next = target.Vec()
	if !p.next.Sub(p.pos).IsZero() {
		p.dirty = true
	}
	return true
}

// update advances the animation to now. started is true on the frame a move
// begins, arrived on the frame the player snaps onto its target.
func (p *Player) update(now time.Time) (started, arrived bool) {
	if p.state == StateIdle {
		diff := p.next.Sub(p.pos)
		if diff.IsZero() {
			p.dirty = false
			return false, false
		}

		p.moveStart = now
		p.startPos = p.pos
		p.diff = diff
		p.state = StateMoving
		p.dirty = true
		p.duration = time.Duration(diff.Len() / p.speed * float64(time.Second))
		started = true
	}

	elapsed := now.Sub(p.moveStart)
	if elapsed >= p.duration {
		p.pos = p.next
		p.state = StateIdle
		return started, true
	}

	p.pos = p.startPos.Ease(elapsed.Seconds(), p.diff, p.duration.Seconds())
	return started, false
}

// teleport places the player on a cell without animation.
func (p *Player) teleport(to Pos) {
	p.pos = to.Vec()
	p.next = p.pos
	p.state = StateIdle
}

// stop ends the current run of frames.
func (p *Player) stop() {
	p.dirty = false
}
