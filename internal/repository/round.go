package repository

import (
	"context"
	"fmt"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/repository/dao"
)

var ErrRoundNotFound = dao.ErrRoundNotFound

type RoundDAO interface {
	FindAll(ctx context.Context) ([]dao.Round, error)
	FindByID(ctx context.Context, id string) (dao.Round, error)
	Insert(ctx context.Context, round dao.Round) (dao.Round, error)
	Update(ctx context.Context, round dao.Round) (dao.Round, error)
	Delete(ctx context.Context, id string) error
}

type RoundRepository struct {
	dao RoundDAO
}

func NewRoundRepository(dao RoundDAO) *RoundRepository {
	return &RoundRepository{
		dao: dao,
	}
}

func (r *RoundRepository) FindAll(ctx context.Context) ([]domain.Round, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	converted := make([]domain.Round, 0, len(found))
	for _, round := range found {
		converted = append(converted, r.daoToDomain(round))
	}

	return converted, nil
}

func (r *RoundRepository) FindByID(ctx context.Context, id string) (domain.Round, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Round{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *RoundRepository) Create(ctx context.Context, round domain.Round) (domain.Round, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(round))
	if err != nil {
		return domain.Round{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *RoundRepository) Update(ctx context.Context, round domain.Round) (domain.Round, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(round))
	if err != nil {
		return domain.Round{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *RoundRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *RoundRepository) daoToDomain(round dao.Round) domain.Round {
	return domain.Round{
		ID:           round.ID,
		Name:         round.Name,
		Description:  round.Description,
		Theme:        round.Theme,
		TimeLimit:    round.TimeLimit,
		Status:       round.Status,
		StartDate:    round.StartDate,
		EndDate:      round.EndDate,
		DisplayOrder: round.DisplayOrder,
		CreatedAt:    round.CreatedAt,
	}
}

func (r *RoundRepository) domainToDAO(round domain.Round) dao.Round {
	return dao.Round{
		ID:           round.ID,
		Name:         round.Name,
		Description:  round.Description,
		Theme:        round.Theme,
		TimeLimit:    round.TimeLimit,
		Status:       round.Status,
		StartDate:    round.StartDate,
		EndDate:      round.EndDate,
		DisplayOrder: round.DisplayOrder,
	}
}
