package models

import "github.com/google/uuid"

// Move pairs a hand card with the index of the stack it targets. Moves are
// ephemeral: the engine recomputes the legal set every turn.
type Move struct {
	Card     Card
	StackIdx int
}

// GameResult is the terminal outcome of one game. Score counts the cards that
// were never played (remaining deck plus remaining hand) at the moment no
// legal move existed; lower is better, 0 means every card was placed.
type GameResult struct {
	GameID uuid.UUID `json:"game_id"`
	Seed   int64     `json:"seed"`
	Score  int       `json:"score"`
	Turns  int       `json:"turns"`
}
