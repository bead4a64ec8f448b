// internal/game/game_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louisrli/destroy98cards/constants"
	"github.com/louisrli/destroy98cards/internal/models"
	"github.com/louisrli/destroy98cards/internal/strategy"
)

// handOf builds a hand set from explicit cards, for tests that craft engine
// state directly.
func handOf(cards ...models.Card) map[models.Card]struct{} {
	hand := make(map[models.Card]struct{}, len(cards))
	for _, c := range cards {
		hand[c] = struct{}{}
	}
	return hand
}

func freshStacks() []*models.Stack {
	return []*models.Stack{
		models.NewStack(models.Ascending),
		models.NewStack(models.Ascending),
		models.NewStack(models.Descending),
		models.NewStack(models.Descending),
	}
}

func TestNewGameDealsFullHand(t *testing.T) {
	g := New(0)
	assert.Len(t, g.hand, constants.HandSize)
	assert.Len(t, g.deck, constants.DeckSize-constants.HandSize)
	for _, s := range g.stacks {
		assert.Empty(t, s.Cards)
	}
}

// Every strategy must produce the identical score when replaying the same
// seed: the deal is seeded, the tie-break is ordered, nothing else is random.
func TestPlayDeterministicPerSeed(t *testing.T) {
	for _, name := range strategy.Names() {
		t.Run(name, func(t *testing.T) {
			for seed := int64(0); seed < 50; seed++ {
				first, err := strategy.Get(name)
				require.NoError(t, err)
				second, err := strategy.Get(name)
				require.NoError(t, err)

				a, err := Play(first, seed)
				require.NoError(t, err)
				b, err := Play(second, seed)
				require.NoError(t, err)

				require.Equal(t, a, b, "seed %d replayed differently", seed)
				assert.GreaterOrEqual(t, a, 0)
				assert.LessOrEqual(t, a, constants.DeckSize)
			}
		})
	}
}

// The deck, hand, and stacks must partition the full card range at every
// turn. The render hook fires once per turn before the move is applied, which
// makes it a convenient probe.
func TestConservationInvariant(t *testing.T) {
	strat, err := strategy.Get("widest")
	require.NoError(t, err)

	g := New(42)
	g.RenderFn = func(_ []*models.Stack, _ []models.Card, _ models.Move) {
		require.LessOrEqual(t, len(g.hand), constants.HandSize)

		seen := make(map[models.Card]int, constants.DeckSize)
		for _, c := range g.deck {
			seen[c]++
		}
		for c := range g.hand {
			seen[c]++
		}
		for _, s := range g.stacks {
			for _, c := range s.Cards {
				seen[c]++
			}
		}
		require.Len(t, seen, constants.DeckSize)
		for c := constants.LowestCard; c <= constants.HighestCard; c++ {
			require.Equal(t, 1, seen[models.Card(c)], "card %d lost or duplicated", c)
		}
	}

	_, err = g.Play(strat)
	require.NoError(t, err)
}

func TestRedrawTriggersAtExactMargin(t *testing.T) {
	strat, err := strategy.Get("dumb")
	require.NoError(t, err)

	// Playing from a 7-card hand lands exactly on HandSize−RedrawMargin and
	// must top the hand back up.
	g := New(0)
	g.stacks = freshStacks()
	g.hand = handOf(90, 91, 92, 93, 94, 95, 96)
	g.deck = []models.Card{20, 21, 22, 23}

	done, err := g.step(strat)
	require.NoError(t, err)
	require.False(t, done)
	assert.Len(t, g.hand, constants.HandSize)
	assert.Len(t, g.deck, 2)
}

func TestNoRedrawBelowMargin(t *testing.T) {
	strat, err := strategy.Get("dumb")
	require.NoError(t, err)

	// A 6-card hand drops to 5 after playing; the threshold was crossed, not
	// hit, so no top-up happens.
	g := New(0)
	g.stacks = freshStacks()
	g.hand = handOf(90, 91, 92, 93, 94, 95)
	g.deck = []models.Card{20, 21, 22, 23}

	done, err := g.step(strat)
	require.NoError(t, err)
	require.False(t, done)
	assert.Len(t, g.hand, 5)
	assert.Len(t, g.deck, 4)
}

func TestRedrawDrawsFewerWhenDeckShort(t *testing.T) {
	strat, err := strategy.Get("dumb")
	require.NoError(t, err)

	g := New(0)
	g.stacks = freshStacks()
	g.hand = handOf(90, 91, 92, 93, 94, 95, 96)
	g.deck = []models.Card{20}

	done, err := g.step(strat)
	require.NoError(t, err)
	require.False(t, done)
	assert.Len(t, g.hand, constants.HandSize-1)
	assert.Empty(t, g.deck)
}

// An exhausted deck is not terminal: the remaining hand keeps playing until
// no move exists. With a fresh board every card is playable, so this hand
// runs out entirely and the game ends at score 0.
func TestDeckEmptyIsNotTerminal(t *testing.T) {
	strat, err := strategy.Get("dumb")
	require.NoError(t, err)

	g := New(0)
	g.stacks = freshStacks()
	g.hand = handOf(10, 20, 30)
	g.deck = nil

	res, err := g.Play(strat)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 3, res.Turns)
	assert.True(t, g.stuck)
}

func TestGameResultCountsDeckAndHand(t *testing.T) {
	strat, err := strategy.Get("dumb")
	require.NoError(t, err)

	// Stuck immediately: every stack top blocks the single card in hand.
	g := New(0)
	g.stacks = []*models.Stack{
		stackWith(models.Ascending, 98),
		stackWith(models.Ascending, 99),
		stackWith(models.Descending, 3),
		stackWith(models.Descending, 2),
	}
	g.hand = handOf(50)
	g.deck = []models.Card{60, 61, 62}

	res, err := g.Play(strat)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Score)
	assert.Equal(t, 0, res.Turns)
}

// The widest-range invariant failure propagates out of Play instead of being
// swallowed mid-game.
func TestPlaySurfacesStrategyError(t *testing.T) {
	strat, err := strategy.Get("widest")
	require.NoError(t, err)

	g := New(0)
	g.stacks = []*models.Stack{
		models.NewStack(models.Ascending),
		models.NewStack(models.Ascending),
		models.NewStack(models.Ascending),
		models.NewStack(models.Descending),
	}
	g.hand = handOf(50)
	g.deck = nil

	_, err = g.Play(strat)
	require.Error(t, err)
}
