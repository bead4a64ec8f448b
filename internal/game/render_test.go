package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/louisrli/destroy98cards/internal/models"
)

func TestFormatBoard(t *testing.T) {
	stacks := []*models.Stack{
		stackWith(models.Ascending, 37),
		stackWith(models.Ascending),
		stackWith(models.Descending, 80),
		stackWith(models.Descending),
	}
	hand := []models.Card{12, 45, 90}

	out := FormatBoard(stacks, hand, models.Move{Card: 45, StackIdx: 0})

	assert.Contains(t, out, "up(37)")
	assert.Contains(t, out, "up(EMPTY)")
	assert.Contains(t, out, "down(80)")
	// The targeted stack and the chosen card are highlighted.
	assert.Contains(t, out, highlight(strings.Repeat(" ", 12-len("up(37)"))+"up(37)"))
	assert.Contains(t, out, highlight("45"))
	assert.NotContains(t, out, highlight("12"))
	// Two stacks per line.
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 4)
}
