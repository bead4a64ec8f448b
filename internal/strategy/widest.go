// internal/strategy/widest.go
package strategy

import (
	"fmt"

	"github.com/louisrli/destroy98cards/constants"
	"github.com/louisrli/destroy98cards/internal/models"
)

// Interval is an inclusive span of card values [Lo, Hi].
type Interval struct {
	Lo models.Card
	Hi models.Card
}

// Len is the interval's width under the Hi−Lo convention used throughout the
// range math (not Hi−Lo+1).
func (iv Interval) Len() int {
	return int(iv.Hi - iv.Lo)
}

// Overlap returns the shared width of two intervals under the same length
// convention, or 0 when they are disjoint.
func Overlap(a, b Interval) int {
	if a.Lo > b.Hi || b.Lo > a.Hi {
		return 0
	}
	return int(min(a.Hi, b.Hi) - max(a.Lo, b.Lo))
}

// RangeInterval is the span of cards a stack could still accept under the
// plain ordering rule, ignoring rule-of-ten jumps. An empty stack accepts the
// full card range.
func RangeInterval(s *models.Stack) Interval {
	if s.Direction == models.Ascending {
		top, ok := s.Top()
		if !ok {
			top = constants.LowestCard - 1
		}
		return Interval{Lo: top + 1, Hi: constants.HighestCard}
	}
	top, ok := s.Top()
	if !ok {
		top = constants.HighestCard + 1
	}
	return Interval{Lo: constants.LowestCard, Hi: top - 1}
}

// WidestRange picks the move that best preserves the remaining playable range
// across the stacks sharing the target's direction. Still greedy: it only
// looks one move ahead.
//
// The heuristic is defined only for boards with exactly two stacks per
// direction; any other peer count is an invariant violation and returns an
// error rather than a move.
type WidestRange struct{}

func (*WidestRange) Name() string { return "widest" }

func (w *WidestRange) Choose(moves []models.Move, _ []models.Card, stacks []*models.Stack, _ []models.Card) (models.Move, error) {
	best := moves[0]
	bestScore, err := w.scoreMove(best, stacks)
	if err != nil {
		return models.Move{}, err
	}
	for _, m := range moves[1:] {
		score, err := w.scoreMove(m, stacks)
		if err != nil {
			return models.Move{}, err
		}
		if score > bestScore {
			best = m
			bestScore = score
		}
	}
	return best, nil
}

// scoreMove projects the candidate as a fresh one-card stack (never mutating
// real state), recomputes that stack's range, and scores the pair of
// same-direction ranges as (sum of lengths)² + |difference of lengths|. The
// square term rewards total remaining flexibility; the difference term keeps
// play concentrated on one stack of the pair for as long as possible instead
// of grinding both down symmetrically.
func (*WidestRange) scoreMove(m models.Move, stacks []*models.Stack) (int, error) {
	dir := stacks[m.StackIdx].Direction

	peers := make([]Interval, 0, 2)
	for i, s := range stacks {
		if s.Direction != dir {
			continue
		}
		if i == m.StackIdx {
			projected := models.Stack{Direction: dir, Cards: []models.Card{m.Card}}
			peers = append(peers, RangeInterval(&projected))
		} else {
			peers = append(peers, RangeInterval(s))
		}
	}

	if len(peers) != 2 {
		return 0, fmt.Errorf("widest range requires exactly 2 %s stacks, got %d", dir, len(peers))
	}

	sum := peers[0].Len() + peers[1].Len()
	diff := peers[0].Len() - peers[1].Len()
	if diff < 0 {
		diff = -diff
	}
	return sum*sum + diff, nil
}
