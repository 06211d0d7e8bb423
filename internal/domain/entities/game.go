package entities

import (
	"strings"
	"time"

	"charbot/internal/domain"
)

// FailStates is the shrug built up one piece per mistake: index 0 is the
// pristine state, the last entry the completed shrug.
var FailStates = [...]string{
	"<:KHattip:896043110717608009>",
	`¯`,
	`¯\`,
	`¯\_`,
	`¯\_(`,
	`¯\_(ツ`,
	`¯\_(ツ)`,
	`¯\_(ツ)_`,
	`¯\_(ツ)_/`,
	`¯\_(ツ)_/¯`,
}

// MaxMistakes ends the game: the shrug is complete.
const MaxMistakes = len(FailStates) - 1

// Game is one shrugman round: a hidden word and the guesses made so far.
// It is a plain state machine; persistence and rendering live elsewhere.
type Game struct {
	PlayerID   string
	PlayerName string
	MessageID  string
	Word       string
	Guesses    []string
	Mistakes   int
	Won        bool
	Dead       bool
	Stopped    bool
	StartedAt  time.Time
}

// NewGame starts a round for a player over the given word.
func NewGame(playerID, playerName, word string) *Game {
	return &Game{
		PlayerID:   playerID,
		PlayerName: playerName,
		Word:       strings.ToLower(word),
		StartedAt:  time.Now(),
	}
}

// Over reports whether the round has finished (won, lost or stopped).
func (g *Game) Over() bool {
	return g.Won || g.Dead || g.Stopped
}

// Guess plays one letter. A wrong letter advances the fail state; the round
// is lost once the shrug is complete and won once every letter is revealed.
func (g *Game) Guess(letter string) error {
	if g.Over() {
		return domain.ErrGameOver
	}
	letter = strings.ToLower(letter)
	if len(letter) != 1 || letter[0] < 'a' || letter[0] > 'z' {
		return domain.ErrInvalidGuess
	}
	for _, prev := range g.Guesses {
		if prev == letter {
			return domain.ErrAlreadyGuessed
		}
	}
	g.Guesses = append(g.Guesses, letter)

	if !strings.Contains(g.Word, letter) {
		g.Mistakes++
		if g.Mistakes >= MaxMistakes {
			g.Dead = true
		}
		return nil
	}
	if !strings.Contains(g.Mask(), "-") {
		g.Won = true
	}
	return nil
}

// Stop cancels the round without recording a result.
func (g *Game) Stop() {
	g.Stopped = true
}

// Mask returns the word with unguessed letters replaced by hyphens.
func (g *Game) Mask() string {
	var b strings.Builder
	for _, r := range g.Word {
		if g.guessed(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// FailState renders the shrug for the current mistake count.
func (g *Game) FailState() string {
	return FailStates[g.Mistakes]
}

func (g *Game) guessed(r rune) bool {
	for _, prev := range g.Guesses {
		if prev == string(r) {
			return true
		}
	}
	return false
}
