package game

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

var gameCols = []string{"id", "title", "category", "min_players", "max_players", "is_available", "created_at"}

func TestCreateGame(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`INSERT INTO board_games.*`).
		WithArgs("Catan", "Strategy", 3, 4).
		WillReturnRows(sqlmock.NewRows(gameCols).
			AddRow(1, "Catan", "Strategy", 3, 4, true, time.Now()))

	game, err := repo.CreateGame(context.Background(), "Catan", "Strategy", 3, 4)
	assert.NoError(t, err)
	assert.Equal(t, 1, game.ID)
	assert.Equal(t, "Catan", game.Title)
	assert.True(t, game.IsAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllGames(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`SELECT id, title, category, min_players, max_players, is_available, created_at FROM board_games.*`).
		WillReturnRows(sqlmock.NewRows(gameCols).
			AddRow(1, "Catan", "Strategy", 3, 4, true, time.Now()).
			AddRow(2, "Codenames", "Party", 4, 8, false, time.Now()))

	games, err := repo.GetAllGames(context.Background())
	assert.NoError(t, err)
	assert.Len(t, games, 2)
	assert.False(t, games[1].IsAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGameByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`SELECT id, title, category, min_players, max_players, is_available, created_at FROM board_games WHERE id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(gameCols).
			AddRow(1, "Catan", "Strategy", 3, 4, true, time.Now()))

	game, err := repo.GetGameByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "Catan", game.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetAvailability(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectExec(`UPDATE board_games SET is_available = \$2 WHERE id = \$1`).
		WithArgs(1, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SetAvailability(context.Background(), 1, false)
	assert.NoError(t, err)

	mock.ExpectExec(`UPDATE board_games SET is_available = \$2 WHERE id = \$1`).
		WithArgs(99, true).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.SetAvailability(context.Background(), 99, true)
	assert.ErrorIs(t, err, ErrGameNotFound)
}
