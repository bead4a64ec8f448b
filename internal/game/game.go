// internal/game/game.go
package game

import (
	"math/rand"
	"slices"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/louisrli/destroy98cards/constants"
	"github.com/louisrli/destroy98cards/internal/models"
	"github.com/louisrli/destroy98cards/internal/strategy"
)

// RenderFunc receives the board before a move is applied: the four stacks,
// the current hand (sorted), and the move the strategy chose. It is purely
// presentational and must not mutate its arguments.
type RenderFunc func(stacks []*models.Stack, hand []models.Card, next models.Move)

// Game holds the entire state for a single simulated game: the shuffled deck,
// the four stacks (two up, two down), and the hand. State is owned
// exclusively by this instance; independent games never share anything, so
// batches can run in parallel.
type Game struct {
	ID uuid.UUID

	deck   []models.Card
	stacks []*models.Stack
	hand   map[models.Card]struct{}

	seed  int64
	turns int
	stuck bool

	// Logger, when set, receives per-turn debug output.
	Logger *logrus.Logger

	// RenderFn, when set, is invoked once per turn with the chosen move.
	RenderFn RenderFunc
}

// New creates a game from a deterministic seed: a fully shuffled deck, four
// empty stacks, and a hand drawn down from the deck. The random source is
// owned by the game and never touches process-wide state.
func New(seed int64) *Game {
	rng := rand.New(rand.NewSource(seed))

	deck := make([]models.Card, 0, constants.DeckSize)
	for c := constants.LowestCard; c <= constants.HighestCard; c++ {
		deck = append(deck, models.Card(c))
	}
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	g := &Game{
		ID:   uuid.New(),
		seed: seed,
		deck: deck,
		stacks: []*models.Stack{
			models.NewStack(models.Ascending),
			models.NewStack(models.Ascending),
			models.NewStack(models.Descending),
			models.NewStack(models.Descending),
		},
		hand: make(map[models.Card]struct{}, constants.HandSize),
	}
	g.draw(constants.HandSize)
	return g
}

// Play runs the turn loop until no legal move remains and returns the
// terminal result. An empty deck is not itself terminal: play continues on
// the remaining hand until the game is stuck.
func (g *Game) Play(strat strategy.Strategy) (models.GameResult, error) {
	if g.Logger != nil {
		g.Logger.WithFields(logrus.Fields{
			"game_id":  g.ID,
			"seed":     g.seed,
			"strategy": strat.Name(),
		}).Debug("starting game")
	}

	for {
		done, err := g.step(strat)
		if err != nil {
			return models.GameResult{}, err
		}
		if done {
			break
		}
	}

	res := models.GameResult{
		GameID: g.ID,
		Seed:   g.seed,
		Score:  g.score(),
		Turns:  g.turns,
	}
	if g.Logger != nil {
		g.Logger.WithFields(logrus.Fields{
			"game_id": g.ID,
			"score":   res.Score,
			"turns":   res.Turns,
		}).Debug("stuck")
	}
	return res, nil
}

// step plays one turn. It returns true once the game is stuck.
func (g *Game) step(strat strategy.Strategy) (bool, error) {
	hand := g.handCards()
	moves := LegalMoves(hand, g.stacks)
	if len(moves) == 0 {
		g.stuck = true
		return true, nil
	}

	move, err := strat.Choose(moves, hand, g.stacks, g.deck)
	if err != nil {
		return false, err
	}

	if g.RenderFn != nil {
		g.RenderFn(g.stacks, hand, move)
	}

	g.stacks[move.StackIdx].Push(move.Card)
	delete(g.hand, move.Card)
	g.turns++

	// One-shot top-up: only when the hand has dropped to exactly
	// HandSize−RedrawMargin, not on every depletion below it.
	if constants.HandSize-len(g.hand) == constants.RedrawMargin && len(g.deck) > 0 {
		g.draw(constants.RedrawMargin)
	}
	return false, nil
}

// draw pops up to n cards off the deck into the hand.
func (g *Game) draw(n int) {
	for i := 0; i < n && len(g.deck) > 0; i++ {
		card := g.deck[len(g.deck)-1]
		g.deck = g.deck[:len(g.deck)-1]
		g.hand[card] = struct{}{}
	}
}

// score is the terminal metric: cards neither played nor playable.
func (g *Game) score() int {
	return len(g.deck) + len(g.hand)
}

// handCards returns the hand as a sorted slice. The hand itself is a set;
// sorting here is what makes move enumeration, and therefore tie-breaking,
// deterministic.
func (g *Game) handCards() []models.Card {
	cards := make([]models.Card, 0, len(g.hand))
	for c := range g.hand {
		cards = append(cards, c)
	}
	slices.Sort(cards)
	return cards
}

// Play simulates one full game with the given strategy and seed and returns
// the terminal score. Deterministic for a given (strategy, seed) pair.
func Play(strat strategy.Strategy, seed int64) (int, error) {
	res, err := New(seed).Play(strat)
	if err != nil {
		return 0, err
	}
	return res.Score, nil
}
