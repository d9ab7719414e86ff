package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"torus-life/pkg/sims/life"
)

const clearScreen = "\x1b[2J\x1b[H"

func main() {
	cfg := life.DefaultConfig()
	flag.IntVar(&cfg.Width, "w", 60, "grid width in cells")
	flag.IntVar(&cfg.Height, "h", 24, "grid height in cells")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the random pattern")
	flag.StringVar(&cfg.Pattern, "pattern", cfg.Pattern, fmt.Sprintf("initial pattern: random or one of %v", life.PatternNames()))
	steps := flag.Int("steps", 0, "generations to run (0 runs until interrupted)")
	interval := flag.Duration("interval", 100*time.Millisecond, "delay between generations")
	noClear := flag.Bool("no-clear", false, "append frames instead of redrawing in place")
	flag.Parse()

	sim, err := life.New(cfg)
	if err != nil {
		log.Fatalf("create board: %v", err)
	}
	grid := sim.Grid()

	out := bufio.NewWriter(os.Stdout)
	for gen := 0; *steps == 0 || gen <= *steps; gen++ {
		if gen > 0 {
			grid.Step()
		}
		if !*noClear {
			out.WriteString(clearScreen)
		}
		fmt.Fprintf(out, "generation %d  population %d\n", grid.Generation(), grid.Population())
		out.WriteString(grid.String())
		if err := out.Flush(); err != nil {
			log.Fatalf("write frame: %v", err)
		}
		if *interval > 0 && (*steps == 0 || gen < *steps) {
			time.Sleep(*interval)
		}
	}
}
