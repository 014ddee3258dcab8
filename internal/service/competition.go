package service

import (
	"context"
	"fmt"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/repository"
)

var ErrCompetitionInfoNotFound = repository.ErrCompetitionInfoNotFound

type CompetitionRepository interface {
	Find(ctx context.Context) (domain.CompetitionInfo, error)
	Save(ctx context.Context, info domain.CompetitionInfo) error
}

type CompetitionPlayerCounter interface {
	CountActive(ctx context.Context) (int64, error)
}

type CompetitionRoundLister interface {
	FindAll(ctx context.Context) ([]domain.Round, error)
}

type CompetitionService struct {
	repo    CompetitionRepository
	players CompetitionPlayerCounter
	rounds  CompetitionRoundLister
}

func NewCompetitionService(
	repo CompetitionRepository,
	players CompetitionPlayerCounter,
	rounds CompetitionRoundLister,
) *CompetitionService {
	return &CompetitionService{
		repo:    repo,
		players: players,
		rounds:  rounds,
	}
}

// Summary builds the public landing payload. ErrCompetitionInfoNotFound is
// returned until an admin has saved the info record.
func (s *CompetitionService) Summary(ctx context.Context) (domain.CompetitionSummary, error) {
	info, err := s.repo.Find(ctx)
	if err != nil {
		return domain.CompetitionSummary{}, fmt.Errorf("s.repo.Find -> %w", err)
	}

	totalPlayers, err := s.players.CountActive(ctx)
	if err != nil {
		return domain.CompetitionSummary{}, fmt.Errorf("s.players.CountActive -> %w", err)
	}

	rounds, err := s.rounds.FindAll(ctx)
	if err != nil {
		return domain.CompetitionSummary{}, fmt.Errorf("s.rounds.FindAll -> %w", err)
	}

	// Position of the round in progress; 1 before anything starts.
	currentRound := 1
	for _, round := range rounds {
		if round.Status == "active" {
			currentRound = round.DisplayOrder

			break
		}
	}

	return domain.CompetitionSummary{
		Name:         info.Name,
		Description:  info.Description,
		Status:       info.Status,
		StartDate:    info.StartDate,
		EndDate:      info.EndDate,
		Theme:        info.Theme,
		PrizePool:    info.PrizePool,
		TotalPlayers: totalPlayers,
		TotalRounds:  len(rounds),
		CurrentRound: currentRound,
	}, nil
}

func (s *CompetitionService) Update(ctx context.Context, info domain.CompetitionInfo) (domain.CompetitionInfo, error) {
	if err := s.repo.Save(ctx, info); err != nil {
		return domain.CompetitionInfo{}, fmt.Errorf("s.repo.Save -> %w", err)
	}

	saved, err := s.repo.Find(ctx)
	if err != nil {
		return domain.CompetitionInfo{}, fmt.Errorf("s.repo.Find -> %w", err)
	}

	return saved, nil
}
