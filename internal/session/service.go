package session

import (
	"context"
	"errors"
	"fmt"

	"librarycatalog/internal/metrics"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Start stores s and returns it with its ID filled in.
func (s *Service) Start(ctx context.Context, sess Session) (Session, error) {
	if err := s.repo.Create(ctx, &sess); err != nil {
		return Session{}, fmt.Errorf("create session: %w", err)
	}
	s.observe(ctx)
	return sess, nil
}

func (s *Service) Get(ctx context.Context, id string) (Session, error) {
	if id == "" {
		return Session{}, ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

// End removes the session. Ending an unknown session is not an error.
func (s *Service) End(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}
	s.observe(ctx)
	return nil
}

func (s *Service) observe(ctx context.Context) {
	if n, err := s.repo.Count(ctx); err == nil {
		metrics.ActiveSessions.Set(float64(n))
	}
}
