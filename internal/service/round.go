package service

import (
	"context"
	"fmt"

	"github.com/gosimple/slug"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/repository"
)

var ErrRoundNotFound = repository.ErrRoundNotFound

type RoundRepository interface {
	FindAll(ctx context.Context) ([]domain.Round, error)
	FindByID(ctx context.Context, id string) (domain.Round, error)
	Create(ctx context.Context, round domain.Round) (domain.Round, error)
	Update(ctx context.Context, round domain.Round) (domain.Round, error)
	Delete(ctx context.Context, id string) error
}

type RoundService struct {
	repo RoundRepository
}

func NewRoundService(repo RoundRepository) *RoundService {
	return &RoundService{
		repo: repo,
	}
}

func (s *RoundService) List(ctx context.Context) ([]domain.Round, error) {
	rounds, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return rounds, nil
}

func (s *RoundService) Get(ctx context.Context, id string) (domain.Round, error) {
	round, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Round{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return round, nil
}

func (s *RoundService) Create(ctx context.Context, round domain.Round) (domain.Round, error) {
	if round.ID == "" {
		round.ID = slug.Make(round.Name)
	}

	created, err := s.repo.Create(ctx, round)
	if err != nil {
		return domain.Round{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *RoundService) Update(ctx context.Context, round domain.Round) (domain.Round, error) {
	updated, err := s.repo.Update(ctx, round)
	if err != nil {
		return domain.Round{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *RoundService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
