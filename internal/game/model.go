package game

import "time"

type BoardGame struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Category    string    `db:"category" json:"category"`
	MinPlayers  int       `db:"min_players" json:"min_players"`
	MaxPlayers  int       `db:"max_players" json:"max_players"`
	IsAvailable bool      `db:"is_available" json:"is_available"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type CreateBoardGameRequest struct {
	Title      string `json:"title" binding:"required"`
	Category   string `json:"category" binding:"required"`
	MinPlayers int    `json:"min_players" binding:"required,min=1"`
	MaxPlayers int    `json:"max_players" binding:"required,gtefield=MinPlayers"`
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}
