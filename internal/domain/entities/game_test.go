package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charbot/internal/domain"
	"charbot/internal/domain/entities"
)

func TestNewGameMasksEveryLetter(t *testing.T) {
	game := entities.NewGame("42", "Ava", "Banana")

	assert.Equal(t, "banana", game.Word)
	assert.Equal(t, "------", game.Mask())
	assert.Equal(t, entities.FailStates[0], game.FailState())
	assert.False(t, game.Over())
}

func TestGuessRevealsLetters(t *testing.T) {
	game := entities.NewGame("42", "Ava", "banana")

	require.NoError(t, game.Guess("a"))
	assert.Equal(t, "-a-a-a", game.Mask())
	assert.Zero(t, game.Mistakes)

	require.NoError(t, game.Guess("B"))
	assert.Equal(t, "ba-a-a", game.Mask())
}

func TestGuessValidation(t *testing.T) {
	tests := []struct {
		name   string
		letter string
		want   error
	}{
		{"empty", "", domain.ErrInvalidGuess},
		{"digit", "7", domain.ErrInvalidGuess},
		{"multiple letters", "ab", domain.ErrInvalidGuess},
		{"punctuation", "!", domain.ErrInvalidGuess},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			game := entities.NewGame("42", "Ava", "banana")
			assert.ErrorIs(t, game.Guess(tc.letter), tc.want)
		})
	}
}

func TestGuessRejectsDuplicates(t *testing.T) {
	game := entities.NewGame("42", "Ava", "banana")

	require.NoError(t, game.Guess("z"))
	assert.ErrorIs(t, game.Guess("z"), domain.ErrAlreadyGuessed)
	assert.Equal(t, 1, game.Mistakes)
}

func TestMistakesBuildTheShrug(t *testing.T) {
	game := entities.NewGame("42", "Ava", "a")

	wrong := []string{"b", "c", "d", "e", "f", "g", "h", "i", "j"}
	for n, letter := range wrong {
		require.NoError(t, game.Guess(letter))
		assert.Equal(t, entities.FailStates[n+1], game.FailState())
	}

	assert.True(t, game.Dead)
	assert.True(t, game.Over())
	assert.Equal(t, `¯\_(ツ)_/¯`, game.FailState())
	assert.ErrorIs(t, game.Guess("a"), domain.ErrGameOver)
}

func TestWinWhenWordRevealed(t *testing.T) {
	game := entities.NewGame("42", "Ava", "go")

	require.NoError(t, game.Guess("g"))
	assert.False(t, game.Won)

	require.NoError(t, game.Guess("o"))
	assert.True(t, game.Won)
	assert.True(t, game.Over())
	assert.Equal(t, "go", game.Mask())
	assert.ErrorIs(t, game.Guess("x"), domain.ErrGameOver)
}

func TestStopEndsTheRound(t *testing.T) {
	game := entities.NewGame("42", "Ava", "banana")

	game.Stop()
	assert.True(t, game.Over())
	assert.ErrorIs(t, game.Guess("a"), domain.ErrGameOver)
}
