package server

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/folletto/vault/internal/game/vault"
)

func TestGenerateNickname(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		nick := GenerateNickname()
		assert.NotEmpty(t, nick)
		assert.LessOrEqual(t, len([]rune(nick)), vault.MaxNickLen,
			"generated nicknames must fit the seat nickname cap")
		seen[nick] = true
	}
	// Two word lists of twenty entries make collisions across 100 draws
	// likely but a single repeated value vanishingly so.
	assert.Greater(t, len(seen), 10)
}
