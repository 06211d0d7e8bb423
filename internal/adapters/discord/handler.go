package discord

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	"charbot/internal/ports/input"
	"charbot/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	gameUseCase   input.GameUseCase
	localeUseCase input.LocaleUseCase
	translator    output.Translator
}

// NewHandler creates a Handler.
func NewHandler(
	gameUseCase input.GameUseCase,
	localeUseCase input.LocaleUseCase,
	translator output.Translator,
) *Handler {
	return &Handler{
		gameUseCase:   gameUseCase,
		localeUseCase: localeUseCase,
		translator:    translator,
	}
}

// t renders key for locale, degrading to the raw key when the translator
// fails: an interaction should never die on a missing message.
func (h *Handler) t(locale, key string, args map[string]any) string {
	msg, err := h.translator.Translate(locale, key, args)
	if err != nil {
		log.Printf("⚠️ i18n (key=%s, locale=%s): %v", key, locale, err)
		return key
	}
	return msg
}

// localeFor picks the locale an interaction is answered in.
func (h *Handler) localeFor(i *discordgo.InteractionCreate) string {
	return h.localeUseCase.ResolveLocale(context.Background(), i.GuildID, string(i.Locale))
}
