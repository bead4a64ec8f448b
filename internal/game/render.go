// internal/game/render.go
package game

import (
	"fmt"
	"strings"

	"github.com/louisrli/destroy98cards/internal/models"
)

const (
	ansiGreen = "\033[92m"
	ansiReset = "\033[0m"
)

func highlight(s string) string {
	return ansiGreen + s + ansiReset
}

// FormatBoard renders the board for debugging: two stacks per line, the
// targeted stack and the chosen hand card highlighted in green. Never affects
// game state.
func FormatBoard(stacks []*models.Stack, hand []models.Card, next models.Move) string {
	var b strings.Builder
	b.WriteString("\n")

	for i, s := range stacks {
		stackStr := fmt.Sprintf("%12s", s.String())
		if i == next.StackIdx {
			stackStr = highlight(stackStr)
		}
		b.WriteString(stackStr)
		if i == len(stacks)/2-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	handStrs := make([]string, len(hand))
	for i, c := range hand {
		handStrs[i] = fmt.Sprintf("%d", c)
		if c == next.Card {
			handStrs[i] = highlight(handStrs[i])
		}
	}
	b.WriteString(strings.Join(handStrs, " "))
	b.WriteString("\n")
	return b.String()
}
