package output

import (
	"context"

	"charbot/internal/domain/entities"
)

type PlayerRepository interface {
	// RecordResult upserts the player's row with one finished game and
	// returns the updated totals.
	RecordResult(ctx context.Context, userID string, won bool, points int) (*entities.Player, error)
}
