package life

import (
	"torus-life/pkg/core"
)

// Life adapts a Grid to the core.Sim interface used by the front ends.
type Life struct {
	cfg     Config
	grid    *Grid
	pattern Pattern
	seed    int64
	display []uint8
}

// New returns a Life simulation seeded from cfg.
func New(cfg Config) (*Life, error) {
	grid, err := NewEmpty(cfg.Height, cfg.Width)
	if err != nil {
		return nil, err
	}
	l := &Life{cfg: cfg, grid: grid, display: make([]uint8, cfg.Width*cfg.Height)}
	if cfg.Pattern != PatternRandom {
		if l.pattern, err = PatternByName(cfg.Pattern); err != nil {
			return nil, err
		}
	}
	l.Reset(cfg.Seed)
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Width, H: l.cfg.Height} }

// Cells exposes the current generation as 0/1 values, row-major.
func (l *Life) Cells() []uint8 { return l.display }

// Grid exposes the underlying board.
func (l *Life) Grid() *Grid { return l.grid }

// Reset reseeds the board. A zero seed falls back to the configured seed.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	l.seed = seed
	l.grid.Clear()
	l.grid.gen = 0
	if l.cfg.Pattern == PatternRandom {
		core.FillBinary(core.NewRNG(seed), l.grid.cur)
	} else {
		// The anchor is always inside the grid.
		_ = l.grid.StampCentered(l.pattern)
	}
	l.rebuildDisplay()
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.grid.Step()
	l.rebuildDisplay()
}

// Toggle flips the cell at column x, row y.
func (l *Life) Toggle(x, y int) error {
	alive, err := l.grid.Get(y, x)
	if err != nil {
		return err
	}
	if err := l.grid.Set(y, x, !alive); err != nil {
		return err
	}
	l.rebuildDisplay()
	return nil
}

// Clear kills every cell.
func (l *Life) Clear() {
	l.grid.Clear()
	l.rebuildDisplay()
}

// Parameters reports the board setup and live statistics.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", l.cfg.Width),
				core.IntParam("h", "Height", l.cfg.Height),
				core.Int64Param("seed", "Seed", l.seed),
				core.StringParam("pattern", "Pattern", l.cfg.Pattern),
			},
		},
		{
			Name: "Stats",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", l.grid.Generation()),
				core.IntParam("population", "Population", l.grid.Population()),
			},
		},
	}}
}

func (l *Life) rebuildDisplay() {
	for i, alive := range l.grid.cur {
		if alive {
			l.display[i] = 1
		} else {
			l.display[i] = 0
		}
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
