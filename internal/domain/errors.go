package domain

import "errors"

// Domain errors.
var (
	ErrGameNotFound      = errors.New("no game is running on this message")
	ErrGameOver          = errors.New("the game is already over")
	ErrNotYourGame       = errors.New("only the invoker of the game can do that")
	ErrInvalidGuess      = errors.New("guess must be a single letter from a to z")
	ErrAlreadyGuessed    = errors.New("letter was already guessed")
	ErrGameInProgress    = errors.New("a game is already running for this player")
	ErrUnsupportedLocale = errors.New("locale is not in the supported set")
	ErrLocaleNotSet      = errors.New("no locale override stored for this guild")
)
