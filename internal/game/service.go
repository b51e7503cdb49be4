package game

import "context"

type Service interface {
	CreateGame(ctx context.Context, req CreateBoardGameRequest) (*BoardGame, error)
	GetAllGames(ctx context.Context) ([]BoardGame, error)
	GetGameByID(ctx context.Context, id int) (*BoardGame, error)
	SetAvailability(ctx context.Context, id int, available bool) (*BoardGame, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateGame(ctx context.Context, req CreateBoardGameRequest) (*BoardGame, error) {
	return s.repo.CreateGame(ctx, req.Title, req.Category, req.MinPlayers, req.MaxPlayers)
}

func (s *service) GetAllGames(ctx context.Context) ([]BoardGame, error) {
	return s.repo.GetAllGames(ctx)
}

func (s *service) GetGameByID(ctx context.Context, id int) (*BoardGame, error) {
	game, err := s.repo.GetGameByID(ctx, id)
	if err != nil {
		return nil, ErrGameNotFound
	}
	return game, nil
}

func (s *service) SetAvailability(ctx context.Context, id int, available bool) (*BoardGame, error) {
	if err := s.repo.SetAvailability(ctx, id, available); err != nil {
		return nil, err
	}
	return s.repo.GetGameByID(ctx, id)
}
