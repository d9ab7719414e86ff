package life

import (
	"fmt"
	"slices"
	"testing"
)

func TestNeighborIndexWraps(t *testing.T) {
	g, err := NewEmpty(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		row, col, dr, dc int
		wantR, wantC     int
	}{
		{0, 0, -1, -1, 9, 9},
		{9, 9, 1, 1, 0, 0},
		{2, 1, -1, -1, 1, 0},
		{5, 3, 1, 0, 6, 3},
		{0, 5, -1, 0, 9, 5},
		{4, 9, 0, 1, 4, 0},
	}
	for _, tc := range cases {
		r, c := g.neighborIndex(tc.row, tc.col, tc.dr, tc.dc)
		if r != tc.wantR || c != tc.wantC {
			t.Fatalf("neighborIndex(%d,%d,%d,%d) = (%d,%d), want (%d,%d)",
				tc.row, tc.col, tc.dr, tc.dc, r, c, tc.wantR, tc.wantC)
		}
	}
}

func TestNeighborValuesAtCorner(t *testing.T) {
	g, err := FromMatrix([][]bool{
		{false, false, false, false},
		{true, true, false, false},
		{true, false, false, false},
		{true, false, false, false},
	})
	if err != nil {
		t.Fatal(err)
	}
	got := g.neighborValues(0, 0)
	want := [8]bool{false, true, false, false, false, false, true, true}
	if got != want {
		t.Fatalf("neighborValues(0,0) = %v, want %v", got, want)
	}
	if n := g.LiveNeighbors(0, 0); n != 3 {
		t.Fatalf("LiveNeighbors(0,0) = %d, want 3", n)
	}
}

// centerWithNeighbors builds a 5x5 grid whose center has the first n
// neighbors (in NeighborOffsets order) alive.
func centerWithNeighbors(t *testing.T, centerAlive bool, n int) *Grid {
	t.Helper()
	g, err := NewEmpty(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Set(2, 2, centerAlive); err != nil {
		t.Fatal(err)
	}
	for _, off := range NeighborOffsets[:n] {
		if err := g.Set(2+off[0], 2+off[1], true); err != nil {
			t.Fatal(err)
		}
	}
	if got := g.LiveNeighbors(2, 2); got != n {
		t.Fatalf("setup: LiveNeighbors = %d, want %d", got, n)
	}
	return g
}

func TestAliveCellRule(t *testing.T) {
	survives := map[int]bool{2: true, 3: true}
	for n := 0; n <= 8; n++ {
		t.Run(fmt.Sprintf("neighbors=%d", n), func(t *testing.T) {
			g := centerWithNeighbors(t, true, n)
			g.Step()
			alive, err := g.Get(2, 2)
			if err != nil {
				t.Fatal(err)
			}
			if alive != survives[n] {
				t.Fatalf("alive cell with %d neighbors: alive=%v, want %v", n, alive, survives[n])
			}
		})
	}
}

func TestDeadCellRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		t.Run(fmt.Sprintf("neighbors=%d", n), func(t *testing.T) {
			g := centerWithNeighbors(t, false, n)
			g.Step()
			alive, err := g.Get(2, 2)
			if err != nil {
				t.Fatal(err)
			}
			if alive != (n == 3) {
				t.Fatalf("dead cell with %d neighbors: alive=%v, want %v", n, alive, n == 3)
			}
		})
	}
}

func TestBlockIsStillLife(t *testing.T) {
	g, err := NewEmpty(6, 6)
	if err != nil {
		t.Fatal(err)
	}
	block, err := PatternByName("block")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Stamp(block, 2, 2); err != nil {
		t.Fatal(err)
	}
	want := g.Matrix()
	for i := 0; i < 50; i++ {
		g.Step()
		got := g.Matrix()
		for r := range want {
			if !slices.Equal(got[r], want[r]) {
				t.Fatalf("block changed at generation %d row %d: %v", g.Generation(), r, got[r])
			}
		}
	}
}

func TestGliderCrossesSeam(t *testing.T) {
	glider, err := PatternByName("glider")
	if err != nil {
		t.Fatal(err)
	}
	g, err := NewEmpty(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Stamp(glider, 6, 6); err != nil {
		t.Fatal(err)
	}
	start := g.Clone()

	g.StepN(4)
	want, err := NewEmpty(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	if err := want.Stamp(glider, 7, 7); err != nil {
		t.Fatal(err)
	}
	if !g.Equal(want) {
		t.Fatalf("glider after 4 generations:\n%s\nwant:\n%s", g, want)
	}

	// 8 diagonal moves bring it back around the torus.
	g.StepN(28)
	if !g.Equal(start) {
		t.Fatalf("glider did not return after 32 generations:\n%s", g)
	}
	if got := g.Population(); got != 5 {
		t.Fatalf("population = %d, want 5", got)
	}
}

func TestStepPreservesDimensions(t *testing.T) {
	g, err := NewEmpty(7, 13)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.StampCentered(patterns["r-pentomino"]); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 25; i++ {
		g.Step()
		if h, w := g.Dimensions(); h != 7 || w != 13 {
			t.Fatalf("dimensions changed to (%d,%d) at generation %d", h, w, g.Generation())
		}
	}
	if g.Generation() != 25 {
		t.Fatalf("generation = %d, want 25", g.Generation())
	}
}

func TestStepDeterministic(t *testing.T) {
	m := [][]bool{
		{false, true, false, false, true, false},
		{true, true, false, true, false, false},
		{false, false, true, true, false, true},
		{true, false, false, false, true, true},
		{false, true, true, false, false, false},
	}
	a, err := FromMatrix(m)
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromMatrix(m)
	if err != nil {
		t.Fatal(err)
	}
	a.StepN(17)
	b.StepN(17)
	if !a.Equal(b) {
		t.Fatalf("identical grids diverged:\n%s\n%s", a, b)
	}
}

func TestStepUsesPreviousGeneration(t *testing.T) {
	// A row-major in-place update would let (1,1)'s birth feed into (1,2).
	g, err := FromMatrix([][]bool{
		{false, false, false, false, false},
		{true, false, false, false, false},
		{true, false, false, false, false},
		{true, false, false, false, false},
		{false, false, false, false, false},
	})
	if err != nil {
		t.Fatal(err)
	}
	g.Step()
	want := [][]bool{
		{false, false, false, false, false},
		{false, false, false, false, false},
		{true, true, false, false, true},
		{false, false, false, false, false},
		{false, false, false, false, false},
	}
	got := g.Matrix()
	for r := range want {
		if !slices.Equal(got[r], want[r]) {
			t.Fatalf("row %d = %v, want %v", r, got[r], want[r])
		}
	}
}

func BenchmarkStep(b *testing.B) {
	for _, size := range []int{64, 256, 512} {
		g, err := NewEmpty(size, size)
		if err != nil {
			b.Fatal(err)
		}
		for r := 0; r < size; r += 3 {
			for c := 0; c < size; c += 2 {
				_ = g.Set(r, c, true)
			}
		}
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				g.Step()
			}
		})
	}
}
