package discord

import (
	"context"
	"errors"
	"log"

	"github.com/bwmarrin/discordgo"

	"charbot/internal/domain"
)

// HandleLanguage shows the effective server language, or stores a per-guild
// override when the locale option is given.
func (h *Handler) HandleLanguage(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := h.localeFor(i)

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		respondEphemeral(s, i.Interaction, h.t(locale, "language.current", map[string]any{"locale": locale}))
		return
	}

	if i.GuildID == "" {
		respondEphemeral(s, i.Interaction, h.t(locale, "language.guild_only", nil))
		return
	}

	requested := options[0].StringValue()
	if err := h.localeUseCase.SetGuildLocale(ctx, i.GuildID, requested); err != nil {
		if errors.Is(err, domain.ErrUnsupportedLocale) {
			respondEphemeral(s, i.Interaction, h.t(locale, "language.unsupported", nil))
			return
		}
		log.Printf("❌ set guild locale (guild=%s): %v", i.GuildID, err)
		respondEphemeral(s, i.Interaction, h.t(locale, "language.update_failed", nil))
		return
	}

	// Confirm in the language that was just chosen.
	respondEphemeral(s, i.Interaction, h.t(requested, "language.updated", map[string]any{"locale": requested}))
}
