package constants

// Card values span [LowestCard, HighestCard] inclusive; a deck holds each
// value exactly once.
const (
	LowestCard  = 2
	HighestCard = 99

	// DifferenceRule is the "rule of 10s": a card may always be placed on a
	// stack whose top differs from it by exactly this amount.
	DifferenceRule = 10

	// HandSize is the maximum number of cards held at once.
	HandSize = 8

	// RedrawMargin is the number of cards missing from a full hand before the
	// engine tops the hand back up from the deck.
	RedrawMargin = 2
)

// DeckSize is the number of cards in a full deck.
const DeckSize = HighestCard - LowestCard + 1

// Environment overrides read by the CLI.
const (
	EnvGames       = "DESTROY98_GAMES"
	EnvParallelism = "DESTROY98_PARALLELISM"
)

// DefaultEvalGames is the evaluation batch size when DESTROY98_GAMES is unset.
const DefaultEvalGames = 1500
