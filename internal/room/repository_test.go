package room

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestCreateRoom(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`INSERT INTO rooms.*`).
		WithArgs("Study Room A", "First Floor", 8).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location", "capacity", "created_at"}).
			AddRow(1, "Study Room A", "First Floor", 8, time.Now()))

	room, err := repo.CreateRoom(context.Background(), "Study Room A", "First Floor", 8)
	assert.NoError(t, err)
	assert.Equal(t, 1, room.ID)
	assert.Equal(t, "Study Room A", room.Name)
	assert.Equal(t, 8, room.Capacity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllRooms(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`SELECT id, name, location, capacity, created_at FROM rooms.*`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location", "capacity", "created_at"}).
			AddRow(1, "Study Room A", "First Floor", 8, time.Now()).
			AddRow(2, "Study Room B", "Second Floor", 4, time.Now()))

	rooms, err := repo.GetAllRooms(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rooms, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRoomByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`SELECT id, name, location, capacity, created_at FROM rooms WHERE id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location", "capacity", "created_at"}).
			AddRow(1, "Study Room A", "First Floor", 8, time.Now()))

	room, err := repo.GetRoomByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "Study Room A", room.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRoom(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`UPDATE rooms.*`).
		WithArgs(1, "Study Room A", "Third Floor", 12).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location", "capacity", "created_at"}).
			AddRow(1, "Study Room A", "Third Floor", 12, time.Now()))

	room, err := repo.UpdateRoom(context.Background(), 1, "Study Room A", "Third Floor", 12)
	assert.NoError(t, err)
	assert.Equal(t, "Third Floor", room.Location)
	assert.Equal(t, 12, room.Capacity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRoomByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`SELECT id, name, location, capacity, created_at FROM rooms WHERE id = \$1`).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location", "capacity", "created_at"}))

	room, err := repo.GetRoomByID(context.Background(), 99)
	assert.Error(t, err)
	assert.Nil(t, room)
}
