package game

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrGameNotFound = errors.New("board game not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateGame(ctx context.Context, title, category string, minPlayers, maxPlayers int) (*BoardGame, error) {
	query := `
		INSERT INTO board_games (title, category, min_players, max_players)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, category, min_players, max_players, is_available, created_at
	`

	var game BoardGame
	err := r.db.GetContext(ctx, &game, query, title, category, minPlayers, maxPlayers)
	if err != nil {
		return nil, err
	}

	return &game, nil
}

func (r *repository) GetAllGames(ctx context.Context) ([]BoardGame, error) {
	query := `
		SELECT id, title, category, min_players, max_players, is_available, created_at
		FROM board_games
		ORDER BY title ASC
	`

	var games []BoardGame
	err := r.db.SelectContext(ctx, &games, query)
	if err != nil {
		return nil, err
	}

	return games, nil
}

func (r *repository) GetGameByID(ctx context.Context, id int) (*BoardGame, error) {
	query := `
		SELECT id, title, category, min_players, max_players, is_available, created_at
		FROM board_games
		WHERE id = $1
	`

	var game BoardGame
	err := r.db.GetContext(ctx, &game, query, id)
	if err != nil {
		return nil, err
	}

	return &game, nil
}

func (r *repository) SetAvailability(ctx context.Context, id int, available bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE board_games SET is_available = $2 WHERE id = $1`, id, available)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrGameNotFound
	}

	return nil
}
