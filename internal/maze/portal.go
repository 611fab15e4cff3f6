package maze

import "sort"

// Portals indexes portal cells by their id rune.
// Cells are kept in reading order; the registry only stores positions.
type Portals struct {
	groups map[rune][]Pos
}

// NewPortals creates an empty registry.
func NewPortals() *Portals {
	return &Portals{groups: make(map[rune][]Pos)}
}

func (p *Portals) add(id rune, pos Pos) {
	p.groups[id] = append(p.groups[id], pos)
}

// Group returns the positions sharing id, in reading order.
func (p *Portals) Group(id rune) []Pos {
	return p.groups[id]
}

// IDs returns all portal ids in ascending order.
func (p *Portals) IDs() []rune {
	ids := make([]rune, 0, len(p.groups))
	for id := range p.groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Partner returns the cell a traveller entering pos is sent to.
// A pair maps each end to the other. A lone portal has no partner.
// Larger groups form a ring in reading order: each cell sends to the next one.
func (p *Portals) Partner(id rune, pos Pos) (Pos, bool) {
	group := p.groups[id]
	if len(group) < 2 {
		return Pos{}, false
	}
	for i, g := range group {
		if g == pos {
			return group[(i+1)%len(group)], true
		}
	}
	return Pos{}, false
}
