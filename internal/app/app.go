//go:build ebiten

package app

import (
	"image/color"
	"time"

	"torus-life/internal/render"
	"torus-life/internal/tick"
	"torus-life/internal/ui"
	"torus-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type toggler interface {
	Toggle(x, y int) error
}

type clearer interface {
	Clear()
}

// Game adapts a core simulation to the ebiten.Game interface.
//
// ebiten calls Update and Draw from the same goroutine, so the sim is never
// read while a generation is being committed.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	pace    *tick.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		pace:     tick.NewFixedInterval(cfg.Interval),
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
		seed:     cfg.Seed,
	}
	if cfg.HUD {
		g.hud = ui.NewHUD(sim)
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if c, ok := g.sim.(clearer); ok {
			c.Clear()
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.toggleUnderCursor()
	}

	if g.tickOnce || (!g.paused && g.pace.ShouldStep()) {
		g.sim.Step()
		g.tickOnce = false
	}
	g.hud.Update(g.paused)
	return nil
}

func (g *Game) toggleUnderCursor() {
	t, ok := g.sim.(toggler)
	if !ok {
		return
	}
	size := g.sim.Size()
	mx, my := ebiten.CursorPosition()
	x, y, ok := render.CellAt(mx, my, g.scale, size.W, size.H)
	if !ok {
		return
	}
	// CellAt only returns in-bounds cells.
	_ = t.Toggle(x, y)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
