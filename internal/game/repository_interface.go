package game

import "context"

type Repository interface {
	CreateGame(ctx context.Context, title, category string, minPlayers, maxPlayers int) (*BoardGame, error)
	GetAllGames(ctx context.Context) ([]BoardGame, error)
	GetGameByID(ctx context.Context, id int) (*BoardGame, error)
	SetAvailability(ctx context.Context, id int, available bool) error
}
