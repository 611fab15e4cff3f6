package maze

import "fmt"

// EventKind identifies something that happened during an update.
type EventKind int

const (
	EventMoveStart   EventKind = iota + 1 // Player began sliding
	EventStop                             // Player came to rest against a wall or a dead-end portal
	EventTeleport                         // Player jumped from a portal to its partner
	EventChainBroken                      // Teleport refused, the chain already left this portal
	EventWon                              // Last open cell covered
	EventConfetti                         // Celebration frame
)

// String returns the string representation of an event kind.
func (k EventKind) String() string {
	switch k {
	case EventMoveStart:
		return "move_start"
	case EventStop:
		return "stop"
	case EventTeleport:
		return "teleport"
	case EventChainBroken:
		return "chain_broken"
	case EventWon:
		return "won"
	case EventConfetti:
		return "confetti"
	default:
		return "unknown"
	}
}

// Event is emitted by Maze.Update. At is where it happened; To is set for
// moves and teleports.
type Event struct {
	Kind EventKind
	At   Pos
	To   Pos
}

// String returns a short description of the event.
func (e Event) String() string {
	switch e.Kind {
	case EventMoveStart, EventTeleport:
		return fmt.Sprintf("%s %v->%v", e.Kind, e.At, e.To)
	default:
		return fmt.Sprintf("%s %v", e.Kind, e.At)
	}
}
