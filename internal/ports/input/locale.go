package input

import "context"

type LocaleUseCase interface {
	ResolveLocale(ctx context.Context, guildID, interactionLocale string) string
	SetGuildLocale(ctx context.Context, guildID, locale string) error
}
