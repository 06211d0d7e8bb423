package entities

import "time"

// Player accumulates minigame results for one Discord user.
type Player struct {
	UserID    string
	Points    int
	Wins      int
	Losses    int
	CreatedAt time.Time
	UpdatedAt time.Time
}
