package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/repository"
)

const defaultPageSize = 10

type PlayerRepository interface {
	FindByID(ctx context.Context, id string) (domain.Player, error)
	FindActive(ctx context.Context, limit, offset int) ([]domain.Player, error)
	FindActiveByScore(ctx context.Context, round domain.RoundType, limit, offset int) ([]domain.Player, error)
	CountActive(ctx context.Context) (int64, error)
	Create(ctx context.Context, player domain.Player) (domain.Player, error)
	Update(ctx context.Context, player domain.Player) (domain.Player, error)
	Upsert(ctx context.Context, player domain.Player) (domain.Player, error)
	Delete(ctx context.Context, id string) error
}

type PlayerScoreRepository interface {
	DeleteByPlayer(ctx context.Context, playerID string) error
}

// RosterStats summarises a roster upload.
type RosterStats struct {
	Added   int   `json:"added"`
	Updated int   `json:"updated"`
	Total   int64 `json:"total"`
}

type PlayerService struct {
	repo   PlayerRepository
	scores PlayerScoreRepository
}

func NewPlayerService(repo PlayerRepository, scores PlayerScoreRepository) *PlayerService {
	return &PlayerService{
		repo:   repo,
		scores: scores,
	}
}

// List pages through active players. orderBy "score" sorts by the
// qualification-round total; anything else keeps registration order.
func (s *PlayerService) List(ctx context.Context, orderBy string, page, pageSize int) ([]domain.Player, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	offset := (page - 1) * pageSize

	var (
		players []domain.Player
		err     error
	)
	if strings.EqualFold(orderBy, "score") {
		players, err = s.repo.FindActiveByScore(ctx, domain.RoundQualification, pageSize, offset)
	} else {
		players, err = s.repo.FindActive(ctx, pageSize, offset)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.FindActive -> %w", err)
	}

	total, err := s.repo.CountActive(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("s.repo.CountActive -> %w", err)
	}

	return players, total, nil
}

func (s *PlayerService) Get(ctx context.Context, id string) (domain.Player, error) {
	player, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Player{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return player, nil
}

func (s *PlayerService) Create(ctx context.Context, player domain.Player) (domain.Player, error) {
	if player.ID == "" {
		player.ID = uuid.NewString()
	}
	if player.Status == "" {
		player.Status = domain.PlayerStatusActive
	}

	created, err := s.repo.Create(ctx, player)
	if err != nil {
		return domain.Player{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *PlayerService) Update(ctx context.Context, player domain.Player) (domain.Player, error) {
	updated, err := s.repo.Update(ctx, player)
	if err != nil {
		return domain.Player{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// Delete removes the player and their score rows. Players are hard-deleted,
// unlike judges and criteria, because nothing else references them once
// their scores are gone. Scores go first: if either delete fails, the tree
// never holds score rows pointing at a missing player.
func (s *PlayerService) Delete(ctx context.Context, id string) error {
	if err := s.scores.DeleteByPlayer(ctx, id); err != nil {
		return fmt.Errorf("s.scores.DeleteByPlayer -> %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// ImportRoster upserts parsed roster rows and reports how many were new.
// Rows without an id or username were already dropped by the parser.
func (s *PlayerService) ImportRoster(ctx context.Context, players []domain.Player) (RosterStats, error) {
	var stats RosterStats
	for _, player := range players {
		_, err := s.repo.FindByID(ctx, player.ID)
		switch {
		case err == nil:
			stats.Updated++
		case errors.Is(err, repository.ErrPlayerNotFound):
			stats.Added++
		default:
			return RosterStats{}, fmt.Errorf("s.repo.FindByID -> %w", err)
		}

		if _, err = s.repo.Upsert(ctx, player); err != nil {
			return RosterStats{}, fmt.Errorf("s.repo.Upsert -> %w", err)
		}
	}

	total, err := s.repo.CountActive(ctx)
	if err != nil {
		return RosterStats{}, fmt.Errorf("s.repo.CountActive -> %w", err)
	}
	stats.Total = total

	return stats, nil
}
