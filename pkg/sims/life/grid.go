package life

import (
	"fmt"

	"torus-life/pkg/core"
)

// Grid is a toroidal Game of Life board stored row-major.
//
// A Grid has a single owner. It does no locking: callers that render from
// another goroutine must not read while Step is running and should hand
// readers a Clone or Matrix snapshot instead.
type Grid struct {
	h, w int
	cur  []bool
	nxt  []bool
	gen  int
}

func newGrid(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("life: %dx%d grid: %w", height, width, core.ErrInvalidDimensions)
	}
	total := height * width
	return &Grid{h: height, w: width, cur: make([]bool, total), nxt: make([]bool, total)}, nil
}

// NewEmpty returns a grid with every cell dead.
func NewEmpty(height, width int) (*Grid, error) {
	return newGrid(height, width)
}

// FromMatrix builds a grid from explicit rows. Every row must have the same
// non-zero length; ragged input is rejected rather than padded.
func FromMatrix(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("life: empty matrix: %w", core.ErrInvalidDimensions)
	}
	width := len(rows[0])
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("life: row %d has %d cells, want %d: %w", r, len(row), width, core.ErrInvalidDimensions)
		}
	}
	g, err := newGrid(len(rows), width)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		copy(g.cur[r*width:(r+1)*width], row)
	}
	return g, nil
}

// NewRandom returns a grid where each cell is alive with probability 0.5,
// drawn from src.
func NewRandom(height, width int, src core.BoolSource) (*Grid, error) {
	if src == nil {
		return nil, fmt.Errorf("life: random grid: %w", core.ErrNilSource)
	}
	g, err := newGrid(height, width)
	if err != nil {
		return nil, err
	}
	core.FillBinary(src, g.cur)
	return g, nil
}

// Dimensions returns the grid height (rows) and width (columns).
func (g *Grid) Dimensions() (height, width int) { return g.h, g.w }

// Generation reports how many steps have been committed.
func (g *Grid) Generation() int { return g.gen }

func (g *Grid) index(row, col int) (int, error) {
	if row < 0 || row >= g.h || col < 0 || col >= g.w {
		return 0, fmt.Errorf("life: cell (%d,%d) outside %dx%d grid: %w", row, col, g.h, g.w, core.ErrIndexOutOfBounds)
	}
	return row*g.w + col, nil
}

// Get reports whether the cell at (row, col) is alive.
func (g *Grid) Get(row, col int) (bool, error) {
	idx, err := g.index(row, col)
	if err != nil {
		return false, err
	}
	return g.cur[idx], nil
}

// Set overwrites a single cell. It is meant for seeding patterns between
// generations.
func (g *Grid) Set(row, col int, alive bool) error {
	idx, err := g.index(row, col)
	if err != nil {
		return err
	}
	g.cur[idx] = alive
	return nil
}

// Clear kills every cell without touching the generation counter.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = false
	}
}

// Matrix returns a deep copy of the current generation as rows.
func (g *Grid) Matrix() [][]bool {
	rows := make([][]bool, g.h)
	for r := range rows {
		rows[r] = append([]bool(nil), g.cur[r*g.w:(r+1)*g.w]...)
	}
	return rows
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cur {
		if alive {
			n++
		}
	}
	return n
}

// Clone returns an independent copy, including the generation counter.
func (g *Grid) Clone() *Grid {
	return &Grid{
		h:   g.h,
		w:   g.w,
		cur: append([]bool(nil), g.cur...),
		nxt: make([]bool, len(g.nxt)),
		gen: g.gen,
	}
}

// Equal reports whether both grids have the same shape and cell states.
// Generation counters are ignored.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.h != other.h || g.w != other.w {
		return false
	}
	for i, alive := range g.cur {
		if other.cur[i] != alive {
			return false
		}
	}
	return true
}
