package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"charbot/internal/domain/entities"
	"charbot/internal/ports/output"
)

var _ output.PlayerRepository = (*PlayerRepository)(nil)

// PlayerRepository persists minigame results using pgx.
type PlayerRepository struct {
	pool *pgxpool.Pool
}

// NewPlayerRepository creates a PlayerRepository.
func NewPlayerRepository(pool *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{pool: pool}
}

const recordResultSQL = `
INSERT INTO players (user_id, points, wins, losses)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO UPDATE SET
    points = players.points + EXCLUDED.points,
    wins = players.wins + EXCLUDED.wins,
    losses = players.losses + EXCLUDED.losses,
    updated_at = now()
RETURNING user_id, points, wins, losses, created_at, updated_at`

func (r *PlayerRepository) RecordResult(ctx context.Context, userID string, won bool, points int) (*entities.Player, error) {
	wins, losses := 0, 1
	if won {
		wins, losses = 1, 0
	}

	var (
		p                    entities.Player
		createdAt, updatedAt pgtype.Timestamptz
	)
	row := r.pool.QueryRow(ctx, recordResultSQL, userID, points, wins, losses)
	if err := row.Scan(&p.UserID, &p.Points, &p.Wins, &p.Losses, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("record game result: %w", err)
	}
	p.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	p.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return &p, nil
}
