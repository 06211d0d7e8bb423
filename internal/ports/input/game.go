package input

import (
	"context"

	"charbot/internal/domain/entities"
)

type GameUseCase interface {
	StartGame(ctx context.Context, playerID, playerName string) (*entities.Game, error)
	AttachMessage(game *entities.Game, messageID string)
	DiscardGame(game *entities.Game)
	Game(messageID string) (*entities.Game, error)
	Guess(ctx context.Context, messageID, playerID, letter string) (*entities.Game, *entities.Player, error)
	StopGame(ctx context.Context, messageID, playerID string) (*entities.Game, error)
}
