package output

import "context"

type GuildLocaleRepository interface {
	// Get returns the guild's stored locale tag, or domain.ErrLocaleNotSet
	// when no override exists.
	Get(ctx context.Context, guildID string) (string, error)
	Set(ctx context.Context, guildID, locale string) error
}
