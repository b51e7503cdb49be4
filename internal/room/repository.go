package room

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateRoom(ctx context.Context, name, location string, capacity int) (*Room, error) {
	query := `
		INSERT INTO rooms (name, location, capacity)
		VALUES ($1, $2, $3)
		RETURNING id, name, location, capacity, created_at
	`

	var room Room
	err := r.db.GetContext(ctx, &room, query, name, location, capacity)
	if err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *repository) GetAllRooms(ctx context.Context) ([]Room, error) {
	query := `
		SELECT id, name, location, capacity, created_at
		FROM rooms
		ORDER BY name ASC
	`

	var rooms []Room
	err := r.db.SelectContext(ctx, &rooms, query)
	if err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *repository) UpdateRoom(ctx context.Context, id int, name, location string, capacity int) (*Room, error) {
	query := `
		UPDATE rooms
		SET name = $2, location = $3, capacity = $4
		WHERE id = $1
		RETURNING id, name, location, capacity, created_at
	`

	var room Room
	err := r.db.GetContext(ctx, &room, query, id, name, location, capacity)
	if err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *repository) GetRoomByID(ctx context.Context, id int) (*Room, error) {
	query := `
		SELECT id, name, location, capacity, created_at
		FROM rooms
		WHERE id = $1
	`

	var room Room
	err := r.db.GetContext(ctx, &room, query, id)
	if err != nil {
		return nil, err
	}

	return &room, nil
}
