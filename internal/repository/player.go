package repository

import (
	"context"
	"fmt"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/repository/dao"
)

var ErrPlayerNotFound = dao.ErrPlayerNotFound

type PlayerDAO interface {
	FindByID(ctx context.Context, id string) (dao.Player, error)
	FindActive(ctx context.Context, limit, offset int) ([]dao.Player, error)
	FindActiveByScore(ctx context.Context, round string, limit, offset int) ([]dao.Player, error)
	CountActive(ctx context.Context) (int64, error)
	Insert(ctx context.Context, player dao.Player) (dao.Player, error)
	Update(ctx context.Context, player dao.Player) (dao.Player, error)
	Upsert(ctx context.Context, player dao.Player) (dao.Player, error)
	Delete(ctx context.Context, id string) error
}

type PlayerRepository struct {
	dao PlayerDAO
}

func NewPlayerRepository(dao PlayerDAO) *PlayerRepository {
	return &PlayerRepository{
		dao: dao,
	}
}

func (r *PlayerRepository) FindByID(ctx context.Context, id string) (domain.Player, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Player{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *PlayerRepository) FindActive(ctx context.Context, limit, offset int) ([]domain.Player, error) {
	found, err := r.dao.FindActive(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindActive -> %w", err)
	}

	return r.daoToDomainAll(found), nil
}

func (r *PlayerRepository) FindActiveByScore(ctx context.Context, round domain.RoundType, limit, offset int) ([]domain.Player, error) {
	found, err := r.dao.FindActiveByScore(ctx, string(round), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindActiveByScore -> %w", err)
	}

	return r.daoToDomainAll(found), nil
}

func (r *PlayerRepository) CountActive(ctx context.Context) (int64, error) {
	count, err := r.dao.CountActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountActive -> %w", err)
	}

	return count, nil
}

func (r *PlayerRepository) Create(ctx context.Context, player domain.Player) (domain.Player, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(player))
	if err != nil {
		return domain.Player{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PlayerRepository) Update(ctx context.Context, player domain.Player) (domain.Player, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(player))
	if err != nil {
		return domain.Player{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *PlayerRepository) Upsert(ctx context.Context, player domain.Player) (domain.Player, error) {
	upserted, err := r.dao.Upsert(ctx, r.domainToDAO(player))
	if err != nil {
		return domain.Player{}, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return r.daoToDomain(upserted), nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *PlayerRepository) daoToDomain(p dao.Player) domain.Player {
	return domain.Player{
		ID:              p.ID,
		Username:        p.Username,
		IGN:             p.IGN,
		DiscordUsername: p.DiscordUsername,
		Team:            p.Team,
		Status:          p.Status,
		CreatedAt:       p.CreatedAt,
	}
}

func (r *PlayerRepository) daoToDomainAll(players []dao.Player) []domain.Player {
	converted := make([]domain.Player, 0, len(players))
	for _, p := range players {
		converted = append(converted, r.daoToDomain(p))
	}

	return converted
}

func (r *PlayerRepository) domainToDAO(p domain.Player) dao.Player {
	return dao.Player{
		ID:              p.ID,
		Username:        p.Username,
		IGN:             p.IGN,
		DiscordUsername: p.DiscordUsername,
		Team:            p.Team,
		Status:          p.Status,
	}
}
