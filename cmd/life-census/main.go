package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"torus-life/pkg/core"
	"torus-life/pkg/sims/life"
)

type seedResult struct {
	seed       int64
	initial    int
	final      int
	peak       int
	settledAt  int
	period     int
	generation int
}

func (r seedResult) String() string {
	settled := "running"
	if r.period > 0 {
		settled = fmt.Sprintf("period %d from gen %d", r.period, r.settledAt)
	}
	return fmt.Sprintf("seed=%d gen=%d pop %d -> %d (peak %d) %s",
		r.seed, r.generation, r.initial, r.final, r.peak, settled)
}

func main() {
	width := flag.Int("w", 64, "grid width in cells")
	height := flag.Int("h", 64, "grid height in cells")
	seeds := flag.Int("seeds", 64, "number of random boards to run")
	first := flag.Int64("first-seed", 1, "seed of the first board")
	steps := flag.Int("steps", 1000, "maximum generations per board")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "longest-lived boards to print")
	flag.Parse()

	if *seeds <= 0 {
		log.Fatalf("-seeds must be positive, got %d", *seeds)
	}
	if _, err := life.NewEmpty(*height, *width); err != nil {
		log.Fatalf("board: %v", err)
	}

	fmt.Printf("Running %d boards of %dx%d (%d workers, up to %d generations)\n", *seeds, *width, *height, *workers, *steps)

	results := make([]seedResult, *seeds)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(*workers, 1))

	start := time.Now()
	for i := range results {
		seed := *first + int64(i)
		g.Go(func() error {
			res, err := runSeed(ctx, *height, *width, seed, *steps)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("census: %v", err)
	}
	elapsed := time.Since(start)

	sort.Slice(results, func(i, j int) bool {
		return lifetime(results[i], *steps) > lifetime(results[j], *steps)
	})

	settled := 0
	totalFinal := 0
	for _, r := range results {
		if r.period > 0 {
			settled++
		}
		totalFinal += r.final
	}

	fmt.Printf("\nTop %d longest-lived boards (elapsed %s):\n", min(*top, len(results)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, results[i])
	}
	fmt.Printf("\n%d/%d boards settled, mean final population %.1f\n",
		settled, len(results), float64(totalFinal)/float64(len(results)))
}

// lifetime ranks a result: boards still changing at the cutoff rank highest.
func lifetime(r seedResult, steps int) int {
	if r.period == 0 {
		return steps + 1
	}
	return r.settledAt
}

// runSeed steps one random board until it repeats a state with period 1 or 2,
// or until steps generations have run.
func runSeed(ctx context.Context, height, width int, seed int64, steps int) (seedResult, error) {
	grid, err := life.NewRandom(height, width, core.NewRNG(seed))
	if err != nil {
		return seedResult{}, err
	}
	res := seedResult{seed: seed, initial: grid.Population()}
	res.peak = res.initial

	older := grid.Clone()
	prev := grid.Clone()
	for step := 1; step <= steps; step++ {
		if err := ctx.Err(); err != nil {
			return seedResult{}, err
		}
		grid.Step()
		if pop := grid.Population(); pop > res.peak {
			res.peak = pop
		}
		switch {
		case grid.Equal(prev):
			res.period = 1
			res.settledAt = step - 1
		case step > 1 && grid.Equal(older):
			res.period = 2
			res.settledAt = step - 2
		}
		if res.period > 0 {
			break
		}
		older, prev = prev, grid.Clone()
	}
	res.final = grid.Population()
	res.generation = grid.Generation()
	return res, nil
}
