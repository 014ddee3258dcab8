package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
)

type JudgeRepository interface {
	FindAll(ctx context.Context) ([]domain.Judge, error)
	FindActive(ctx context.Context) ([]domain.Judge, error)
	FindByID(ctx context.Context, id string) (domain.Judge, error)
	Create(ctx context.Context, judge domain.Judge) (domain.Judge, error)
	Update(ctx context.Context, judge domain.Judge) (domain.Judge, error)
	SoftDelete(ctx context.Context, id string) error
}

type JudgeService struct {
	repo JudgeRepository
}

func NewJudgeService(repo JudgeRepository) *JudgeService {
	return &JudgeService{
		repo: repo,
	}
}

// ListAll includes inactive judges for the admin screen; deleted ones
// stay hidden everywhere.
func (s *JudgeService) ListAll(ctx context.Context) ([]domain.Judge, error) {
	judges, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return judges, nil
}

func (s *JudgeService) ListActive(ctx context.Context) ([]domain.Judge, error) {
	judges, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindActive -> %w", err)
	}

	return judges, nil
}

func (s *JudgeService) Get(ctx context.Context, id string) (domain.Judge, error) {
	judge, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Judge{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return judge, nil
}

func (s *JudgeService) Create(ctx context.Context, judge domain.Judge) (domain.Judge, error) {
	if judge.ID == "" {
		judge.ID = uuid.NewString()
	}
	if judge.State == "" {
		judge.State = domain.StateActive
	}

	created, err := s.repo.Create(ctx, judge)
	if err != nil {
		return domain.Judge{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *JudgeService) Update(ctx context.Context, judge domain.Judge) (domain.Judge, error) {
	updated, err := s.repo.Update(ctx, judge)
	if err != nil {
		return domain.Judge{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// Delete flips the judge to the deleted state; the row and its scores stay.
func (s *JudgeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.SoftDelete -> %w", err)
	}

	return nil
}
