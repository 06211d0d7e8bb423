package discord

import (
	"errors"

	"charbot/internal/domain"
)

// MessageKey maps a domain error to the catalog key of its user-facing
// message. The adapter translates the key for the interaction's locale.
func MessageKey(err error) string {
	switch {
	case errors.Is(err, domain.ErrGameNotFound):
		return "shrugman.expired"
	case errors.Is(err, domain.ErrGameOver):
		return "shrugman.guess.dead"
	case errors.Is(err, domain.ErrNotYourGame):
		return "shrugman.only_invoker"
	case errors.Is(err, domain.ErrInvalidGuess):
		return "shrugman.guess.invalid"
	case errors.Is(err, domain.ErrAlreadyGuessed):
		return "shrugman.guess.duplicate"
	case errors.Is(err, domain.ErrGameInProgress):
		return "shrugman.already_playing"
	case errors.Is(err, domain.ErrUnsupportedLocale):
		return "language.unsupported"
	default:
		return "error.generic"
	}
}
