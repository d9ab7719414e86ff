package life

import (
	"fmt"
	"sort"

	"torus-life/pkg/core"
)

// Pattern is a set of live cells relative to an anchor, as (row, col) pairs.
type Pattern struct {
	Name  string
	Cells [][2]int
}

var patterns = map[string]Pattern{
	"block":   {Name: "block", Cells: [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	"blinker": {Name: "blinker", Cells: [][2]int{{0, 0}, {0, 1}, {0, 2}}},
	"glider":  {Name: "glider", Cells: [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}},
	"beacon": {Name: "beacon", Cells: [][2]int{
		{0, 0}, {0, 1}, {1, 0},
		{2, 3}, {3, 2}, {3, 3},
	}},
	"r-pentomino": {Name: "r-pentomino", Cells: [][2]int{{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 1}}},
}

// PatternByName looks up a built-in pattern.
func PatternByName(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("life: pattern %q: %w", name, core.ErrUnknownPattern)
	}
	return p, nil
}

// PatternNames lists the built-in patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bounds returns the pattern's height and width.
func (p Pattern) Bounds() (height, width int) {
	for _, c := range p.Cells {
		if c[0]+1 > height {
			height = c[0] + 1
		}
		if c[1]+1 > width {
			width = c[1] + 1
		}
	}
	return height, width
}

// Stamp sets the pattern's cells alive with its anchor at (row, col).
// Cells that fall off an edge wrap around the torus. The anchor itself must
// be inside the grid.
func (g *Grid) Stamp(p Pattern, row, col int) error {
	if _, err := g.index(row, col); err != nil {
		return err
	}
	for _, c := range p.Cells {
		r := core.Wrap(row+c[0], g.h)
		cc := core.Wrap(col+c[1], g.w)
		g.cur[r*g.w+cc] = true
	}
	return nil
}

// StampCentered stamps the pattern so that it sits in the middle of the grid.
func (g *Grid) StampCentered(p Pattern) error {
	ph, pw := p.Bounds()
	row := core.Wrap((g.h-ph)/2, g.h)
	col := core.Wrap((g.w-pw)/2, g.w)
	return g.Stamp(p, row, col)
}
