// internal/game/moves.go
package game

import (
	"github.com/louisrli/destroy98cards/constants"
	"github.com/louisrli/destroy98cards/internal/models"
)

// IsValidMove reports whether candidate may be placed on stack.
//
// An empty stack accepts any card. Otherwise the candidate is legal when it
// differs from the top by exactly the rule-of-tens amount (in either
// direction, regardless of the stack's ordering), or when it continues the
// stack's ordering: greater than the top on an up-stack, less on a down-stack.
func IsValidMove(candidate models.Card, stack *models.Stack) bool {
	top, ok := stack.Top()
	if !ok {
		return true
	}
	diff := int(candidate - top)
	if diff < 0 {
		diff = -diff
	}
	if diff == constants.DifferenceRule {
		return true
	}
	if stack.Direction == models.Ascending {
		return candidate > top
	}
	return candidate < top
}

// LegalMoves enumerates every legal (card, stack) placement for the given
// hand. A card playable on two stacks yields two distinct moves. The hand
// must be sorted; the result is then ordered by card value, then stack index,
// which is the tie-break order strategies rely on.
func LegalMoves(hand []models.Card, stacks []*models.Stack) []models.Move {
	var moves []models.Move
	for _, card := range hand {
		for i, s := range stacks {
			if IsValidMove(card, s) {
				moves = append(moves, models.Move{Card: card, StackIdx: i})
			}
		}
	}
	return moves
}
