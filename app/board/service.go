package board

import (
	"errors"

	"go.uber.org/zap"
)

// ErrBoardNotFound is returned when no board has the requested id.
var ErrBoardNotFound = errors.New("board not found")

// Service implements the board use cases.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger.Named("board")}
}

// List returns every board, newest first.
func (s *Service) List() []Response {
	boards := s.repo.FindAll()
	out := make([]Response, 0, len(boards))
	for _, b := range boards {
		out = append(out, toResponse(b))
	}
	return out
}

// Create stores a new board.
func (s *Service) Create(req CreateRequest) Response {
	b := s.repo.Save(&Board{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
	})
	s.logger.Info("board created", zap.Int64("id", b.ID), zap.String("author", b.Author))
	return toResponse(b)
}

// Get returns the board with id.
func (s *Service) Get(id int64) (Response, error) {
	b, ok := s.repo.FindByID(id)
	if !ok {
		return Response{}, ErrBoardNotFound
	}
	return toResponse(b), nil
}

// Update changes the title and content of an existing board.
func (s *Service) Update(req UpdateRequest) (UpdateResponse, error) {
	b, ok := s.repo.FindByID(req.ID)
	if !ok {
		return UpdateResponse{}, ErrBoardNotFound
	}
	b.Update(req.Title, req.Content)
	saved := s.repo.Save(b)
	s.logger.Info("board updated", zap.Int64("id", saved.ID))
	return UpdateResponse{ID: saved.ID, Title: saved.Title, Content: saved.Content}, nil
}

// Delete removes the board with id.
func (s *Service) Delete(id int64) error {
	if !s.repo.DeleteByID(id) {
		return ErrBoardNotFound
	}
	s.logger.Info("board deleted", zap.Int64("id", id))
	return nil
}
