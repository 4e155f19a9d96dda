// Package batch runs many independent dice episodes headlessly and tallies them.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/olivierh59500/dice-roll-go/dice"
)

// MaxSum is the highest total a roll can show
const MaxSum = 6 * dice.Count

// ErrNoEpisodes is returned when a batch asks for no rolls
var ErrNoEpisodes = errors.New("no episodes requested")

// Options configures a batch run
type Options struct {
	Episodes     int
	Workers      int   // 0 uses GOMAXPROCS
	Seed         int64 // Episode i is seeded with Seed+i
	Arena        dice.Arena
	RollDuration time.Duration
	Tick         time.Duration
	Logger       *slog.Logger
}

// Report tallies the outcome of a batch
type Report struct {
	Episodes  int
	Faces     [7]int          // Faces[f] counts dice that showed f
	Sums      [MaxSum + 1]int // Sums[s] counts rolls totalling s
	Unsettled int             // Rolls whose relaxation hit the pass cap
	Ticks     int
}

type episode struct {
	outcome dice.Outcome
	ticks   int
}

// Run simulates opts.Episodes rolls across a bounded pool of workers.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Episodes <= 0 {
		return Report{}, ErrNoEpisodes
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Tick <= 0 {
		opts.Tick = dice.ReferenceFrame
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	results := make([]episode, opts.Episodes)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i := range results {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ep, err := simulate(opts, opts.Seed+int64(i))
			if err != nil {
				return fmt.Errorf("episode %d: %w", i, err)
			}
			results[i] = ep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	var rep Report
	for _, ep := range results {
		rep.add(ep)
	}
	opts.Logger.Info("batch complete", "episodes", rep.Episodes, "unsettled", rep.Unsettled, "mean", rep.Mean())
	return rep, nil
}

// simulate runs a single episode to completion
func simulate(opts Options, seed int64) (episode, error) {
	r, err := dice.NewRoller(opts.Arena, dice.NewSource(seed), dice.WithRollDuration(opts.RollDuration))
	if err != nil {
		return episode{}, err
	}
	defer r.Close()

	r.Trigger()
	ticks := 0
	for !r.Step(opts.Tick) {
		ticks++
	}
	return episode{outcome: r.Last(), ticks: ticks + 1}, nil
}

func (rep *Report) add(ep episode) {
	rep.Episodes++
	rep.Ticks += ep.ticks
	rep.Sums[ep.outcome.Sum]++
	for _, f := range ep.outcome.Faces {
		rep.Faces[f]++
	}
	if !ep.outcome.Relaxation.Converged {
		rep.Unsettled++
	}
}

// Mean returns the average roll total
func (rep Report) Mean() float64 {
	if rep.Episodes == 0 {
		return 0
	}
	total := 0
	for s, n := range rep.Sums {
		total += s * n
	}
	return float64(total) / float64(rep.Episodes)
}

// SumSeries returns the sum histogram from the lowest possible total upwards.
func (rep Report) SumSeries() []float64 {
	series := make([]float64, 0, MaxSum-dice.Count+1)
	for s := dice.Count; s <= MaxSum; s++ {
		series = append(series, float64(rep.Sums[s]))
	}
	return series
}
