package room

import (
	"context"
	"errors"
)

var ErrRoomNotFound = errors.New("room not found")

type Service interface {
	CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error)
	GetAllRooms(ctx context.Context) ([]Room, error)
	GetRoomByID(ctx context.Context, id int) (*Room, error)
	UpdateRoom(ctx context.Context, id int, req CreateRoomRequest) (*Room, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error) {
	return s.repo.CreateRoom(ctx, req.Name, req.Location, req.Capacity)
}

func (s *service) GetAllRooms(ctx context.Context) ([]Room, error) {
	return s.repo.GetAllRooms(ctx)
}

func (s *service) GetRoomByID(ctx context.Context, id int) (*Room, error) {
	room, err := s.repo.GetRoomByID(ctx, id)
	if err != nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

func (s *service) UpdateRoom(ctx context.Context, id int, req CreateRoomRequest) (*Room, error) {
	room, err := s.repo.UpdateRoom(ctx, id, req.Name, req.Location, req.Capacity)
	if err != nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}
