package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The serialized form is what the CLI dumps at debug level when a single game
// finishes.
func TestGameResultJSON(t *testing.T) {
	res := GameResult{
		GameID: uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		Seed:   7,
		Score:  4,
		Turns:  83,
	}

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"game_id":"6ba7b810-9dad-11d1-80b4-00c04fd430c8","seed":7,"score":4,"turns":83}`, string(data))
}
