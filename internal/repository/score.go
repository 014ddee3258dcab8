package repository

import (
	"context"
	"fmt"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/repository/dao"
)

type ScoreDAO interface {
	FindByRound(ctx context.Context, round string) ([]dao.Score, error)
	FindByPlayerAndRound(ctx context.Context, playerID, round string) ([]dao.Score, error)
	Upsert(ctx context.Context, score dao.Score) (dao.Score, error)
	DeleteByPlayer(ctx context.Context, playerID string) error
}

type ScoreRepository struct {
	dao ScoreDAO
}

func NewScoreRepository(dao ScoreDAO) *ScoreRepository {
	return &ScoreRepository{
		dao: dao,
	}
}

func (r *ScoreRepository) FindByRound(ctx context.Context, round domain.RoundType) ([]domain.Score, error) {
	found, err := r.dao.FindByRound(ctx, string(round))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByRound -> %w", err)
	}

	return r.daoToDomainAll(found), nil
}

func (r *ScoreRepository) FindByPlayerAndRound(ctx context.Context, playerID string, round domain.RoundType) ([]domain.Score, error) {
	found, err := r.dao.FindByPlayerAndRound(ctx, playerID, string(round))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByPlayerAndRound -> %w", err)
	}

	return r.daoToDomainAll(found), nil
}

func (r *ScoreRepository) Upsert(ctx context.Context, score domain.Score) (domain.Score, error) {
	upserted, err := r.dao.Upsert(ctx, dao.Score{
		PlayerID:    score.PlayerID,
		JudgeID:     score.JudgeID,
		CriterionID: score.CriterionID,
		Round:       string(score.Round),
		Points:      score.Points,
		EnteredBy:   score.EnteredBy,
	})
	if err != nil {
		return domain.Score{}, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return r.daoToDomain(upserted), nil
}

func (r *ScoreRepository) DeleteByPlayer(ctx context.Context, playerID string) error {
	if err := r.dao.DeleteByPlayer(ctx, playerID); err != nil {
		return fmt.Errorf("r.dao.DeleteByPlayer -> %w", err)
	}

	return nil
}

func (r *ScoreRepository) daoToDomain(s dao.Score) domain.Score {
	return domain.Score{
		ID:          s.ID,
		PlayerID:    s.PlayerID,
		JudgeID:     s.JudgeID,
		CriterionID: s.CriterionID,
		Round:       domain.RoundType(s.Round),
		Points:      s.Points,
		EnteredBy:   s.EnteredBy,
		EnteredAt:   s.EnteredAt,
	}
}

func (r *ScoreRepository) daoToDomainAll(scores []dao.Score) []domain.Score {
	converted := make([]domain.Score, 0, len(scores))
	for _, s := range scores {
		converted = append(converted, r.daoToDomain(s))
	}

	return converted
}
