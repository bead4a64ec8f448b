// internal/evaluator/evaluator.go

// Package evaluator runs Monte-Carlo batches of games per strategy and
// aggregates the loss metrics for comparison.
package evaluator

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/louisrli/destroy98cards/internal/game"
	"github.com/louisrli/destroy98cards/internal/strategy"
)

// NearWinThreshold is the score under which a loss counts as a near win.
const NearWinThreshold = 10

// Result holds every per-seed score for one strategy. Scores[i] is the
// terminal score of the game seeded with i.
type Result struct {
	Name   string
	Scores []int
}

// Summary aggregates one strategy's batch into the reported metrics.
type Summary struct {
	Name      string
	BestScore int
	Below10   float64
	Mean      float64
	Std       float64
}

// Evaluate plays `games` independent games per strategy over the seed
// sequence 0..games−1 and returns the full score sequences, in the order the
// names were given. Strategy names are resolved up front so a configuration
// error surfaces before any simulation starts.
//
// Games within a batch are embarrassingly parallel: each owns its seed, its
// strategy instance, and its result slot, so workers never contend.
func Evaluate(names []string, games, parallelism int, logger *logrus.Logger) ([]Result, error) {
	for _, name := range names {
		if _, err := strategy.Get(name); err != nil {
			return nil, err
		}
	}
	if games <= 0 {
		return nil, fmt.Errorf("evaluation needs at least 1 game, got %d", games)
	}
	if parallelism <= 0 {
		parallelism = 1
	}

	results := make([]Result, 0, len(names))
	for _, name := range names {
		logger.WithFields(logrus.Fields{
			"strategy": name,
			"games":    games,
		}).Info("evaluating")

		scores := make([]int, games)
		var eg errgroup.Group
		eg.SetLimit(parallelism)
		for seed := 0; seed < games; seed++ {
			seed := seed
			eg.Go(func() error {
				strat, err := strategy.Get(name)
				if err != nil {
					return err
				}
				score, err := game.Play(strat, int64(seed))
				if err != nil {
					return err
				}
				scores[seed] = score
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, fmt.Errorf("evaluating %s: %w", name, err)
		}
		results = append(results, Result{Name: name, Scores: scores})
	}
	return results, nil
}

// Summarize reduces one strategy's score sequence to its report row: the best
// (lowest) score, the fraction of games under NearWinThreshold, the mean, and
// the sample standard deviation.
func Summarize(r Result) Summary {
	s := Summary{Name: r.Name, BestScore: r.Scores[0]}

	var sum float64
	var below int
	for _, score := range r.Scores {
		if score < s.BestScore {
			s.BestScore = score
		}
		if score < NearWinThreshold {
			below++
		}
		sum += float64(score)
	}
	n := float64(len(r.Scores))
	s.Below10 = float64(below) / n
	s.Mean = sum / n

	if len(r.Scores) > 1 {
		var sq float64
		for _, score := range r.Scores {
			d := float64(score) - s.Mean
			sq += d * d
		}
		s.Std = math.Sqrt(sq / (n - 1))
	}
	return s
}
