package maze

import "strings"

// Grid is the rectangular cell board. Cells are stored in row-major order.
type Grid struct {
	w     int
	h     int
	cells []Cell
}

// NewGrid creates a grid with every cell set to wall.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{
		w:     w,
		h:     h,
		cells: make([]Cell, w*h),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.h
}

func (g *Grid) index(p Pos) int {
	return p.R*g.w + p.C
}

// InBounds returns true if the position is inside the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.R >= 0 && p.R < g.h && p.C >= 0 && p.C < g.w
}

// At returns the cell at p. ok is false outside the grid.
func (g *Grid) At(p Pos) (cell Cell, ok bool) {
	if !g.InBounds(p) {
		return Cell{}, false
	}
	return g.cells[g.index(p)], true
}

// Set replaces the cell at p. Out-of-bounds writes are ignored.
func (g *Grid) Set(p Pos, c Cell) {
	if g.InBounds(p) {
		g.cells[g.index(p)] = c
	}
}

// Movable reports whether p is inside the grid and not a wall.
func (g *Grid) Movable(p Pos) bool {
	cell, ok := g.At(p)
	return ok && cell.Movable()
}

// Cover marks an open cell as covered. It returns true if the cell changed.
// Walls, portals and covered cells are left alone.
func (g *Grid) Cover(p Pos) bool {
	if !g.InBounds(p) {
		return false
	}
	i := g.index(p)
	if g.cells[i].Kind != KindOpen {
		return false
	}
	g.cells[i].Kind = KindCovered
	return true
}

// Count returns the number of cells of the given kind.
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, c := range g.cells {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// HasOpen reports whether any open cell remains.
func (g *Grid) HasOpen() bool {
	for _, c := range g.cells {
		if c.Kind == KindOpen {
			return true
		}
	}
	return false
}

// Each calls fn for every cell in reading order.
func (g *Grid) Each(fn func(p Pos, c Cell)) {
	for r := 0; r < g.h; r++ {
		for c := 0; c < g.w; c++ {
			p := Pos{R: r, C: c}
			fn(p, g.cells[g.index(p)])
		}
	}
}

// String renders the grid with layout markers, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.w*g.h + g.h)
	for r := 0; r < g.h; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.w; c++ {
			sb.WriteRune(g.cells[g.index(Pos{R: r, C: c})].Rune())
		}
	}
	return sb.String()
}
