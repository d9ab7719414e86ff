package life

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"torus-life/pkg/core"
)

// Glyph marks a live cell in the text rendering.
const Glyph = '█'

// String renders the grid as text: a border of dashes, one line per row with
// Glyph for live cells and spaces for dead ones, and a closing border.
func (g *Grid) String() string {
	var b strings.Builder
	border := strings.Repeat("-", g.w)
	b.Grow((g.h + 2) * (g.w*utf8.RuneLen(Glyph) + 1))
	b.WriteString(border)
	b.WriteByte('\n')
	for row := 0; row < g.h; row++ {
		for _, alive := range g.cur[row*g.w : (row+1)*g.w] {
			if alive {
				b.WriteRune(Glyph)
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString(border)
	b.WriteByte('\n')
	return b.String()
}

// ParseText reads a grid from text. Lines made only of dashes are treated as
// borders and skipped, alive marks a live cell and any other rune is dead.
// Every remaining line must have the same rune count.
func ParseText(s string, alive rune) (*Grid, error) {
	var rows [][]bool
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line != "" && strings.Trim(line, "-") == "" {
			continue
		}
		row := make([]bool, 0, utf8.RuneCountInString(line))
		for _, r := range line {
			row = append(row, r == alive)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("life: no cells in text: %w", core.ErrInvalidDimensions)
	}
	return FromMatrix(rows)
}
