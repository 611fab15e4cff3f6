// Package maze implements the sliding maze: layout parsing, slide resolution,
// portal teleports, covering and win detection. It is UI-agnostic and
// deterministic for a given sequence of timestamps.
package maze

import (
	"fmt"

	"github.com/vovakirdan/slidemaze/internal/core"
)

// Layout markers.
const (
	MarkWall    = '#'
	MarkOpen    = '.'
	MarkCovered = '='
	MarkPlayer  = '1'
	MarkEmpty   = ' '
)

// Kind is the kind of a grid cell.
type Kind uint8

const (
	KindWall Kind = iota
	KindOpen
	KindCovered
	KindPortal
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "Wall"
	case KindOpen:
		return "Open"
	case KindCovered:
		return "Covered"
	case KindPortal:
		return "Portal"
	default:
		return "Unknown"
	}
}

// Cell is a single grid cell. Portal is set only for KindPortal.
type Cell struct {
	Kind   Kind
	Portal rune
}

// Movable reports whether the player may enter the cell.
func (c Cell) Movable() bool {
	return c.Kind != KindWall
}

// Rune returns the layout marker for the cell.
func (c Cell) Rune() rune {
	switch c.Kind {
	case KindOpen:
		return MarkOpen
	case KindCovered:
		return MarkCovered
	case KindPortal:
		return c.Portal
	default:
		return MarkWall
	}
}

// cellFor maps a layout rune to a cell. The player marker is handled by the parser.
func cellFor(r rune) Cell {
	switch r {
	case MarkWall, MarkEmpty:
		return Cell{Kind: KindWall}
	case MarkOpen:
		return Cell{Kind: KindOpen}
	case MarkCovered:
		return Cell{Kind: KindCovered}
	default:
		return Cell{Kind: KindPortal, Portal: r}
	}
}

// Pos is a discrete grid position.
type Pos struct {
	R int
	C int
}

// P is a convenience constructor for Pos.
func P(r, c int) Pos {
	return Pos{R: r, C: c}
}

// Vec converts the position to a continuous vector.
func (p Pos) Vec() core.Vec {
	return core.V(p.R, p.C)
}

// Add returns the position offset by a unit direction.
func (p Pos) Add(dir core.Vec) Pos {
	return Pos{R: p.R + int(dir.R), C: p.C + int(dir.C)}
}

// String returns "(r,c)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.R, p.C)
}

// PosOf converts an integral vector to a position. Fractional input is rounded.
func PosOf(v core.Vec) Pos {
	r, c := v.Round().Key()
	return Pos{R: r, C: c}
}
