package room

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepo struct{ mock.Mock }

func (m *MockRepo) CreateRoom(ctx context.Context, name, location string, capacity int) (*Room, error) {
	args := m.Called(ctx, name, location, capacity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Room), args.Error(1)
}

func (m *MockRepo) GetAllRooms(ctx context.Context) ([]Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Room), args.Error(1)
}

func (m *MockRepo) GetRoomByID(ctx context.Context, id int) (*Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Room), args.Error(1)
}

func (m *MockRepo) UpdateRoom(ctx context.Context, id int, name, location string, capacity int) (*Room, error) {
	args := m.Called(ctx, id, name, location, capacity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Room), args.Error(1)
}

func TestService_CreateRoom(t *testing.T) {
	repo := new(MockRepo)
	repo.On("CreateRoom", mock.Anything, "Study Room A", "First Floor", 8).
		Return(&Room{ID: 1, Name: "Study Room A", Location: "First Floor", Capacity: 8}, nil)

	room, err := NewService(repo).CreateRoom(context.Background(), CreateRoomRequest{
		Name:     "Study Room A",
		Location: "First Floor",
		Capacity: 8,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, room.ID)
	repo.AssertExpectations(t)
}

func TestService_UpdateRoom(t *testing.T) {
	repo := new(MockRepo)
	repo.On("UpdateRoom", mock.Anything, 1, "Study Room A", "Third Floor", 12).
		Return(&Room{ID: 1, Name: "Study Room A", Location: "Third Floor", Capacity: 12}, nil)

	room, err := NewService(repo).UpdateRoom(context.Background(), 1, CreateRoomRequest{
		Name:     "Study Room A",
		Location: "Third Floor",
		Capacity: 12,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Third Floor", room.Location)
	repo.AssertExpectations(t)
}

func TestService_UpdateRoom_NotFound(t *testing.T) {
	repo := new(MockRepo)
	repo.On("UpdateRoom", mock.Anything, 99, "Study Room A", "Third Floor", 12).
		Return(nil, errors.New("sql: no rows in result set"))

	room, err := NewService(repo).UpdateRoom(context.Background(), 99, CreateRoomRequest{
		Name:     "Study Room A",
		Location: "Third Floor",
		Capacity: 12,
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.Nil(t, room)
}

func TestService_GetRoomByID(t *testing.T) {
	repo := new(MockRepo)
	repo.On("GetRoomByID", mock.Anything, 99).Return(nil, errors.New("sql: no rows in result set"))

	room, err := NewService(repo).GetRoomByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.Nil(t, room)
}
