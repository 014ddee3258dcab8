package repository

import (
	"context"
	"fmt"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/repository/dao"
)

var ErrCompetitionInfoNotFound = dao.ErrCompetitionInfoNotFound

type CompetitionDAO interface {
	Find(ctx context.Context) (dao.CompetitionInfo, error)
	Upsert(ctx context.Context, info dao.CompetitionInfo) error
}

type CompetitionRepository struct {
	dao CompetitionDAO
}

func NewCompetitionRepository(dao CompetitionDAO) *CompetitionRepository {
	return &CompetitionRepository{
		dao: dao,
	}
}

func (r *CompetitionRepository) Find(ctx context.Context) (domain.CompetitionInfo, error) {
	found, err := r.dao.Find(ctx)
	if err != nil {
		return domain.CompetitionInfo{}, fmt.Errorf("r.dao.Find -> %w", err)
	}

	return domain.CompetitionInfo{
		Name:        found.Name,
		Description: found.Description,
		StartDate:   found.StartDate,
		EndDate:     found.EndDate,
		MaxPlayers:  found.MaxPlayers,
		Status:      found.Status,
		Theme:       found.Theme,
		PrizePool:   found.PrizePool,
		UpdatedAt:   found.UpdatedAt,
	}, nil
}

func (r *CompetitionRepository) Save(ctx context.Context, info domain.CompetitionInfo) error {
	err := r.dao.Upsert(ctx, dao.CompetitionInfo{
		Name:        info.Name,
		Description: info.Description,
		StartDate:   info.StartDate,
		EndDate:     info.EndDate,
		MaxPlayers:  info.MaxPlayers,
		Status:      info.Status,
		Theme:       info.Theme,
		PrizePool:   info.PrizePool,
	})
	if err != nil {
		return fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return nil
}
