// dicestat rolls the dice headlessly many times and prints the distribution.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/guptarohit/asciigraph"

	"github.com/olivierh59500/dice-roll-go/dice"
	"github.com/olivierh59500/dice-roll-go/internal/batch"
	"github.com/olivierh59500/dice-roll-go/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("dicestat: %v", err)
	}

	episodes := flag.Int("n", 1000, "number of rolls to simulate")
	workers := flag.Int("workers", 0, "parallel simulations (0 = GOMAXPROCS)")
	seed := flag.Int64("seed", cfg.Seed, "base seed (0 = time based)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	logger := cfg.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	rep, err := batch.Run(ctx, batch.Options{
		Episodes:     *episodes,
		Workers:      *workers,
		Seed:         *seed,
		Arena:        cfg.Arena(),
		RollDuration: cfg.RollDuration,
		Tick:         cfg.Tick(),
		Logger:       logger,
	})
	if err != nil {
		config.Exitf("dicestat: %v", err)
	}
	logger.Debug("simulation finished", "elapsed", time.Since(start), "ticks", rep.Ticks)

	fmt.Printf("%d rolls of %d dice (seed %d)\n\n", rep.Episodes, dice.Count, *seed)
	for f := 1; f <= 6; f++ {
		share := float64(rep.Faces[f]) / float64(rep.Episodes*dice.Count) * 100
		fmt.Printf("  face %d: %6d  %5.1f%%\n", f, rep.Faces[f], share)
	}
	fmt.Printf("\n  mean total: %.2f\n", rep.Mean())
	if rep.Unsettled > 0 {
		fmt.Printf("  rolls left overlapping: %d\n", rep.Unsettled)
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(rep.SumSeries(),
		asciigraph.Height(12),
		asciigraph.Caption(fmt.Sprintf("totals %d..%d", dice.Count, batch.MaxSum)),
	))
}
