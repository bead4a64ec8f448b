// internal/models/stack.go
package models

import "fmt"

// Direction is the ordering a stack enforces on appended cards.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// String returns "up" or "down".
func (d Direction) String() string {
	if d == Ascending {
		return "up"
	}
	return "down"
}

// Stack is one pile of played cards. Cards are append-only; the last card is
// the most recently added and the only one future moves are judged against.
type Stack struct {
	Direction Direction
	Cards     []Card
}

// NewStack returns an empty stack with the given direction.
func NewStack(d Direction) *Stack {
	return &Stack{Direction: d}
}

// Top returns the most recently added card, or false if the stack is empty.
func (s *Stack) Top() (Card, bool) {
	if len(s.Cards) == 0 {
		return 0, false
	}
	return s.Cards[len(s.Cards)-1], true
}

// Push appends a card to the stack.
func (s *Stack) Push(c Card) {
	s.Cards = append(s.Cards, c)
}

// String renders the stack as e.g. "up(37)" or "down(EMPTY)".
func (s *Stack) String() string {
	if top, ok := s.Top(); ok {
		return fmt.Sprintf("%s(%d)", s.Direction, top)
	}
	return fmt.Sprintf("%s(EMPTY)", s.Direction)
}
