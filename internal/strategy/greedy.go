// internal/strategy/greedy.go
package strategy

import (
	"github.com/louisrli/destroy98cards/constants"
	"github.com/louisrli/destroy98cards/internal/models"
)

// GreedyDifference picks the move with the smallest resulting gap between the
// stack's top and the candidate. Placing 95 on a 98 down-stack is a gap of 3.
//
// It does not account for cards remaining or for keeping one stack low,
// although in practice it sometimes does the latter by accident.
type GreedyDifference struct{}

func (*GreedyDifference) Name() string { return "greedydiff" }

func (*GreedyDifference) Choose(moves []models.Move, _ []models.Card, stacks []*models.Stack, _ []models.Card) (models.Move, error) {
	return chooseBest(moves, func(m models.Move) int {
		return scoreDifference(m, stacks)
	}), nil
}

// scoreDifference scores a move by its signed gap from the stack's effective
// top, oriented so that smaller progressions score higher. An empty stack's
// top is treated as the lowest card (ascending) or the highest (descending),
// so opening a down-stack with 99 scores 0 and beats any gap on a populated
// stack except an exact rule-of-ten hit.
func scoreDifference(m models.Move, stacks []*models.Stack) int {
	stack := stacks[m.StackIdx]
	top, ok := stack.Top()
	if !ok {
		if stack.Direction == models.Ascending {
			top = constants.LowestCard
		} else {
			top = constants.HighestCard
		}
	}

	// Down-stack orientation; flipped for up-stacks so that higher is better
	// in both directions.
	score := int(m.Card - top)
	if stack.Direction == models.Ascending {
		score = -score
	}
	return score
}
