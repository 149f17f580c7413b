package engine

import (
	"context"
	"errors"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/mandarini/astra-arcana/internal/data"
)

// SimulationConfig controls a batch of repeated casts.
type SimulationConfig struct {
	Trials  int
	Workers int
	// Seed makes a run reproducible. Zero picks a random seed.
	Seed uint64
	// OnTrial, if set, is called after every cast from the worker goroutines.
	OnTrial func()
}

// SimulationReport summarizes a batch of casts of the same selection.
type SimulationReport struct {
	Trials         int            `json:"trials"`
	Successes      int            `json:"successes"`
	ObservedRate   float64        `json:"observedRate"`
	SuccessRate    float64        `json:"successRate"`
	Seed           uint64         `json:"seed"`
	SpecialEffects map[string]int `json:"specialEffects"`
}

type workerTally struct {
	successes int
	specials  map[string]int
}

// Simulate casts the same selection cfg.Trials times across cfg.Workers goroutines.
// Each worker draws from its own generator seeded from cfg.Seed and its index.
func (e *Engine) Simulate(ctx context.Context, ingredients []data.Ingredient, incantations []data.Incantation, cfg SimulationConfig) (SimulationReport, error) {
	if cfg.Trials <= 0 {
		return SimulationReport{}, errors.New("trials must be positive")
	}
	workers := max(1, min(cfg.Workers, cfg.Trials))
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	tallies := make([]workerTally, workers)
	g, gCtx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		share := cfg.Trials / workers
		if w < cfg.Trials%workers {
			share++
		}
		g.Go(func() error {
			src := rand.New(rand.NewPCG(seed, uint64(w)))
			worker := e.withRoll(src.Float64)
			tally := workerTally{specials: map[string]int{}}
			for range share {
				if err := gCtx.Err(); err != nil {
					return err
				}
				res := worker.CalculateComplete(ingredients, incantations)
				if res.Success {
					tally.successes++
				}
				if res.SpecialEffect != nil {
					tally.specials[res.SpecialEffect.Name]++
				}
				if cfg.OnTrial != nil {
					cfg.OnTrial()
				}
			}
			tallies[w] = tally
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SimulationReport{}, err
	}

	report := SimulationReport{
		Trials:         cfg.Trials,
		SuccessRate:    e.Visualize(ingredients, incantations).SuccessRate,
		Seed:           seed,
		SpecialEffects: map[string]int{},
	}
	for _, t := range tallies {
		report.Successes += t.successes
		for name, n := range t.specials {
			report.SpecialEffects[name] += n
		}
	}
	report.ObservedRate = 100 * float64(report.Successes) / float64(report.Trials)

	e.log.Debug("simulation finished", "trials", report.Trials, "workers", workers, "observed_rate", report.ObservedRate)
	return report, nil
}
