//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"torus-life/internal/app"
	"torus-life/pkg/core"
	_ "torus-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.SimNames())
	}

	sim, err := factory(cfg.SimOptions())
	if err != nil {
		log.Fatalf("create %s: %v", cfg.Sim, err)
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("torus-life — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
