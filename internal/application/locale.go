package application

import (
	"context"
	"errors"
	"log"

	"charbot/internal/domain"
	"charbot/internal/ports/output"
)

// LocaleService decides which locale an interaction is answered in and
// manages the per-guild overrides.
type LocaleService struct {
	guildLocaleRepo output.GuildLocaleRepository
	translator      output.Translator
	defaultLocale   string
}

func NewLocaleService(
	guildLocaleRepo output.GuildLocaleRepository,
	translator output.Translator,
	defaultLocale string,
) *LocaleService {
	return &LocaleService{
		guildLocaleRepo: guildLocaleRepo,
		translator:      translator,
		defaultLocale:   defaultLocale,
	}
}

// ResolveLocale picks the locale for an interaction: the guild override if
// one is stored, else the interaction's own locale tag, else the configured
// default. The result may be a tag the translator does not support; the
// translator falls back silently in that case.
func (s *LocaleService) ResolveLocale(ctx context.Context, guildID, interactionLocale string) string {
	if guildID != "" {
		locale, err := s.guildLocaleRepo.Get(ctx, guildID)
		if err == nil {
			return locale
		}
		if !errors.Is(err, domain.ErrLocaleNotSet) {
			log.Printf("⚠️ guild locale lookup (guild=%s): %v", guildID, err)
		}
	}
	if interactionLocale != "" {
		return interactionLocale
	}
	return s.defaultLocale
}

// SetGuildLocale stores a guild override after checking it against the
// translator's supported set.
func (s *LocaleService) SetGuildLocale(ctx context.Context, guildID, locale string) error {
	ok := false
	for _, supported := range s.translator.SupportedLocales() {
		if supported == locale {
			ok = true
			break
		}
	}
	if !ok {
		return domain.ErrUnsupportedLocale
	}
	return s.guildLocaleRepo.Set(ctx, guildID, locale)
}
