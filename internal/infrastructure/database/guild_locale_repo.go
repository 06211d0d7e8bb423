package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"charbot/internal/domain"
	"charbot/internal/ports/output"
)

var _ output.GuildLocaleRepository = (*GuildLocaleRepository)(nil)

// GuildLocaleRepository stores per-guild locale overrides.
type GuildLocaleRepository struct {
	pool *pgxpool.Pool
}

// NewGuildLocaleRepository creates a GuildLocaleRepository.
func NewGuildLocaleRepository(pool *pgxpool.Pool) *GuildLocaleRepository {
	return &GuildLocaleRepository{pool: pool}
}

const getGuildLocaleSQL = `SELECT locale FROM guild_locales WHERE guild_id = $1`

func (r *GuildLocaleRepository) Get(ctx context.Context, guildID string) (string, error) {
	var locale string
	err := r.pool.QueryRow(ctx, getGuildLocaleSQL, guildID).Scan(&locale)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrLocaleNotSet
	}
	if err != nil {
		return "", fmt.Errorf("get guild locale: %w", err)
	}
	return locale, nil
}

const setGuildLocaleSQL = `
INSERT INTO guild_locales (guild_id, locale)
VALUES ($1, $2)
ON CONFLICT (guild_id) DO UPDATE SET
    locale = EXCLUDED.locale,
    updated_at = now()`

func (r *GuildLocaleRepository) Set(ctx context.Context, guildID, locale string) error {
	if _, err := r.pool.Exec(ctx, setGuildLocaleSQL, guildID, locale); err != nil {
		return fmt.Errorf("set guild locale: %w", err)
	}
	return nil
}
