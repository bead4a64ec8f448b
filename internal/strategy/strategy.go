// Package strategy holds the move-selection heuristics the simulator
// compares. A strategy instance lives for exactly one game.
package strategy

import (
	"fmt"

	"github.com/louisrli/destroy98cards/internal/models"
)

// Strategy picks exactly one move from a non-empty set of legal moves. The
// engine passes moves sorted by card value then stack index; ties on equal
// score are broken by taking the first maximal move in that order, so every
// strategy is deterministic for a given deal.
//
// Each strategy is single-ply greedy: it scores the immediate moves only and
// never looks ahead.
type Strategy interface {
	Name() string
	Choose(moves []models.Move, hand []models.Card, stacks []*models.Stack, deck []models.Card) (models.Move, error)
}

// Get maps a strategy name to a fresh instance. Unknown names are a
// configuration error, surfaced before any game starts.
func Get(name string) (Strategy, error) {
	switch name {
	case "dumb":
		return &Dumb{}, nil
	case "greedydiff":
		return &GreedyDifference{}, nil
	case "widest":
		return &WidestRange{}, nil
	}
	return nil, fmt.Errorf("unknown strategy: %q", name)
}

// Names lists every known strategy, in the default evaluation order.
func Names() []string {
	return []string{"dumb", "greedydiff", "widest"}
}

// chooseBest returns the first move of maximal score.
func chooseBest(moves []models.Move, score func(models.Move) int) models.Move {
	best := moves[0]
	bestScore := score(best)
	for _, m := range moves[1:] {
		if s := score(m); s > bestScore {
			best = m
			bestScore = s
		}
	}
	return best
}
