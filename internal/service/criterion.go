package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/repository"
)

var ErrInvalidMaxPoints = errors.New("maxPoints must be positive")

type CriterionRepository interface {
	FindAll(ctx context.Context) ([]domain.Criterion, error)
	FindActive(ctx context.Context) ([]domain.Criterion, error)
	FindActiveByRound(ctx context.Context, round domain.RoundType) ([]domain.Criterion, error)
	FindByID(ctx context.Context, id string) (domain.Criterion, error)
	Create(ctx context.Context, criterion domain.Criterion) (domain.Criterion, error)
	Update(ctx context.Context, criterion domain.Criterion) (domain.Criterion, error)
	SoftDelete(ctx context.Context, id string) error
	Reorder(ctx context.Context, orderedIDs []string) error
}

type CriterionService struct {
	repo CriterionRepository
}

func NewCriterionService(repo CriterionRepository) *CriterionService {
	return &CriterionService{
		repo: repo,
	}
}

func (s *CriterionService) ListAll(ctx context.Context) ([]domain.Criterion, error) {
	criteria, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return criteria, nil
}

// ListForRound returns active criteria tagged for the phase - the set the
// score-entry screen renders columns for.
func (s *CriterionService) ListForRound(ctx context.Context, round domain.RoundType) ([]domain.Criterion, error) {
	if !round.Valid() {
		return nil, ErrInvalidRound
	}

	criteria, err := s.repo.FindActiveByRound(ctx, round)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindActiveByRound -> %w", err)
	}

	return criteria, nil
}

func (s *CriterionService) Get(ctx context.Context, id string) (domain.Criterion, error) {
	criterion, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Criterion{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return criterion, nil
}

// Create slugs the name into a stable id, appends a uuid fragment on
// collision, and places the criterion at the end of the display order.
func (s *CriterionService) Create(ctx context.Context, criterion domain.Criterion) (domain.Criterion, error) {
	if criterion.MaxPoints <= 0 {
		return domain.Criterion{}, ErrInvalidMaxPoints
	}

	if criterion.ID == "" {
		criterion.ID = slug.Make(criterion.Name)
		if _, err := s.repo.FindByID(ctx, criterion.ID); err == nil {
			criterion.ID = fmt.Sprintf("%s-%s", criterion.ID, uuid.NewString()[:8])
		} else if !errors.Is(err, repository.ErrCriterionNotFound) {
			return domain.Criterion{}, fmt.Errorf("s.repo.FindByID -> %w", err)
		}
	}

	if criterion.State == "" {
		criterion.State = domain.StateActive
	}

	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return domain.Criterion{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}
	criterion.DisplayOrder = len(existing)

	created, err := s.repo.Create(ctx, criterion)
	if err != nil {
		return domain.Criterion{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CriterionService) Update(ctx context.Context, criterion domain.Criterion) (domain.Criterion, error) {
	if criterion.MaxPoints <= 0 {
		return domain.Criterion{}, ErrInvalidMaxPoints
	}

	updated, err := s.repo.Update(ctx, criterion)
	if err != nil {
		return domain.Criterion{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// Delete soft-deletes; historical scores keep referencing the criterion.
func (s *CriterionService) Delete(ctx context.Context, id string) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.SoftDelete -> %w", err)
	}

	return nil
}

// Reorder reassigns display order following the submitted sequence.
func (s *CriterionService) Reorder(ctx context.Context, orderedIDs []string) error {
	if err := s.repo.Reorder(ctx, orderedIDs); err != nil {
		return fmt.Errorf("s.repo.Reorder -> %w", err)
	}

	return nil
}
