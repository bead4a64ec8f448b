package strategy

import "github.com/louisrli/destroy98cards/internal/models"

// Dumb takes the first legal move without scoring anything. It exists to
// validate the engine plumbing and to act as a baseline in evaluations.
type Dumb struct{}

func (*Dumb) Name() string { return "dumb" }

func (*Dumb) Choose(moves []models.Move, _ []models.Card, _ []*models.Stack, _ []models.Card) (models.Move, error) {
	return moves[0], nil
}
