package maze

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Layout is the result of parsing a maze text block.
type Layout struct {
	Grid     *Grid
	Portals  *Portals
	Start    Pos
	HasStart bool
	Warnings []string
}

// Parse builds a grid from a text block. It never fails: odd layouts simply
// produce an odd, possibly unwinnable, maze and a warning.
//
// Leading and trailing blank lines are dropped. Rows shorter than the widest
// row are padded with walls. The first player marker sets the start, which is
// covered from the outset since the player stands on it.
func Parse(text string) Layout {
	rows := splitRows(text)

	width := 0
	for _, row := range rows {
		if n := utf8.RuneCountInString(row); n > width {
			width = n
		}
	}

	l := Layout{
		Grid:    NewGrid(width, len(rows)),
		Portals: NewPortals(),
	}

	for r, row := range rows {
		c := 0
		for _, ch := range row {
			pos := Pos{R: r, C: c}
			c++

			if ch == MarkPlayer {
				if l.HasStart {
					l.Warnings = append(l.Warnings, fmt.Sprintf("extra player marker at %v treated as open", pos))
					l.Grid.Set(pos, Cell{Kind: KindOpen})
					continue
				}
				l.Start = pos
				l.HasStart = true
				l.Grid.Set(pos, Cell{Kind: KindCovered})
				continue
			}

			cell := cellFor(ch)
			l.Grid.Set(pos, cell)
			if cell.Kind == KindPortal {
				l.Portals.add(ch, pos)
			}
		}
	}

	if !l.HasStart {
		l.Warnings = append(l.Warnings, "no player marker, starting at (0,0)")
	}

	for _, id := range l.Portals.IDs() {
		switch n := len(l.Portals.Group(id)); {
		case n == 1:
			l.Warnings = append(l.Warnings, fmt.Sprintf("portal %q has no partner", id))
		case n > 2:
			l.Warnings = append(l.Warnings, fmt.Sprintf("portal %q is shared by %d cells, linking them as a ring", id, n))
		}
	}

	return l
}

// splitRows splits text into rows, dropping blank lines at both ends.
func splitRows(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	rows := strings.Split(text, "\n")

	start, end := 0, len(rows)
	for start < end && strings.TrimSpace(rows[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(rows[end-1]) == "" {
		end--
	}
	return rows[start:end]
}
