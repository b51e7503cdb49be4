package room

import "context"

type Repository interface {
	CreateRoom(ctx context.Context, name, location string, capacity int) (*Room, error)
	GetAllRooms(ctx context.Context) ([]Room, error)
	GetRoomByID(ctx context.Context, id int) (*Room, error)
	UpdateRoom(ctx context.Context, id int, name, location string, capacity int) (*Room, error)
}
