package application

import (
	"context"
	_ "embed"
	"log"
	"math/rand/v2"
	"strings"
	"sync"

	"charbot/internal/domain"
	"charbot/internal/domain/entities"
	"charbot/internal/ports/output"
)

// Points awarded when a round ends. Losing still pays out: participation is
// always worth something.
const (
	WinPoints  = 5
	LossPoints = 1
)

//go:embed words.txt
var wordsFile string

var words = strings.Fields(wordsFile)

// GameService runs shrugman rounds. Running games live in memory keyed by
// the Discord message that hosts them; only finished rounds touch the
// database, through the player repository.
type GameService struct {
	playerRepo output.PlayerRepository

	mu      sync.Mutex
	games   map[string]*entities.Game
	pending map[string]*entities.Game
}

func NewGameService(playerRepo output.PlayerRepository) *GameService {
	return &GameService{
		playerRepo: playerRepo,
		games:      make(map[string]*entities.Game),
		pending:    make(map[string]*entities.Game),
	}
}

// StartGame creates a round over a random word. A player runs at most one
// round at a time; the player is reserved immediately, before the round is
// attached to a message, so two rapid starts cannot slip past the check.
func (s *GameService) StartGame(_ context.Context, playerID, playerName string) (*entities.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pending[playerID]; ok {
		return nil, domain.ErrGameInProgress
	}
	for _, g := range s.games {
		if g.PlayerID == playerID && !g.Over() {
			return nil, domain.ErrGameInProgress
		}
	}
	word := words[rand.IntN(len(words))]
	game := entities.NewGame(playerID, playerName, word)
	s.pending[playerID] = game
	return game, nil
}

// AttachMessage indexes the round under the message that displays it, once
// the adapter knows the message ID.
func (s *GameService) AttachMessage(game *entities.Game, messageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, game.PlayerID)
	game.MessageID = messageID
	s.games[messageID] = game
}

// DiscardGame releases a round that never made it onto a message, freeing
// the player to start again.
func (s *GameService) DiscardGame(game *entities.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending[game.PlayerID] == game {
		delete(s.pending, game.PlayerID)
	}
}

// Game returns the running round hosted by the given message.
func (s *GameService) Game(messageID string) (*entities.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[messageID]
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	return game, nil
}

// Guess plays one letter. When the round ends the result is recorded and
// the updated player totals are returned; otherwise the player is nil.
func (s *GameService) Guess(ctx context.Context, messageID, playerID, letter string) (*entities.Game, *entities.Player, error) {
	s.mu.Lock()
	game, ok := s.games[messageID]
	if !ok {
		s.mu.Unlock()
		return nil, nil, domain.ErrGameNotFound
	}
	if game.PlayerID != playerID {
		s.mu.Unlock()
		return nil, nil, domain.ErrNotYourGame
	}
	err := game.Guess(letter)
	over := game.Over()
	if over {
		delete(s.games, messageID)
	}
	s.mu.Unlock()

	if err != nil {
		return game, nil, err
	}
	if !over {
		return game, nil, nil
	}

	points := LossPoints
	if game.Won {
		points = WinPoints
	}
	player, err := s.playerRepo.RecordResult(ctx, playerID, game.Won, points)
	if err != nil {
		// The round itself is done; losing the payout is not worth failing
		// the interaction over.
		log.Printf("⚠️ record game result (player=%s): %v", playerID, err)
		return game, nil, nil
	}
	return game, player, nil
}

// StopGame cancels a running round. No result is recorded.
func (s *GameService) StopGame(_ context.Context, messageID, playerID string) (*entities.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[messageID]
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	if game.PlayerID != playerID {
		return nil, domain.ErrNotYourGame
	}
	game.Stop()
	delete(s.games, messageID)
	return game, nil
}
