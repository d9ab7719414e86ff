package life

import "torus-life/pkg/core"

// NeighborOffsets lists the Moore neighborhood as (row delta, column delta).
var NeighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// neighborIndex resolves (row+dr, col+dc) on the torus. Offsets are at most
// one step, so a single wrap per axis is enough.
func (g *Grid) neighborIndex(row, col, dr, dc int) (int, int) {
	return core.WrapStep(row+dr, g.h), core.WrapStep(col+dc, g.w)
}

// neighborValues returns the states of the 8 neighbors in NeighborOffsets order.
func (g *Grid) neighborValues(row, col int) [8]bool {
	var out [8]bool
	for i, off := range NeighborOffsets {
		nr, nc := g.neighborIndex(row, col, off[0], off[1])
		out[i] = g.cur[nr*g.w+nc]
	}
	return out
}

// LiveNeighbors counts the live cells in the Moore neighborhood of
// (row, col). The coordinate must be inside the grid.
func (g *Grid) LiveNeighbors(row, col int) int {
	n := 0
	for _, alive := range g.neighborValues(row, col) {
		if alive {
			n++
		}
	}
	return n
}

// nextState applies Conway's thresholds to a cell's current state.
func nextState(alive bool, live int) bool {
	if alive {
		if live >= 4 || live <= 1 {
			return false
		}
		return true
	}
	return live == 3
}

// Step advances the grid by exactly one generation. Neighbor counts always
// come from the previous generation; the result is committed by swapping
// buffers, so no caller sees a half-written board.
func (g *Grid) Step() {
	if len(g.nxt) != len(g.cur) {
		panic("life: generation buffers differ in size")
	}
	copy(g.nxt, g.cur)
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			idx := row*g.w + col
			g.nxt[idx] = nextState(g.cur[idx], g.LiveNeighbors(row, col))
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.gen++
}

// StepN advances n generations. Non-positive n is a no-op.
func (g *Grid) StepN(n int) {
	for i := 0; i < n; i++ {
		g.Step()
	}
}
