package repository

import (
	"context"
	"fmt"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/repository/dao"
)

var ErrJudgeNotFound = dao.ErrJudgeNotFound

type JudgeDAO interface {
	FindAll(ctx context.Context) ([]dao.Judge, error)
	FindActive(ctx context.Context) ([]dao.Judge, error)
	FindByID(ctx context.Context, id string) (dao.Judge, error)
	Insert(ctx context.Context, judge dao.Judge) (dao.Judge, error)
	Update(ctx context.Context, judge dao.Judge) (dao.Judge, error)
	SoftDelete(ctx context.Context, id string) error
}

type JudgeRepository struct {
	dao JudgeDAO
}

func NewJudgeRepository(dao JudgeDAO) *JudgeRepository {
	return &JudgeRepository{
		dao: dao,
	}
}

func (r *JudgeRepository) FindAll(ctx context.Context) ([]domain.Judge, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daoToDomainAll(found), nil
}

func (r *JudgeRepository) FindActive(ctx context.Context) ([]domain.Judge, error) {
	found, err := r.dao.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindActive -> %w", err)
	}

	return r.daoToDomainAll(found), nil
}

func (r *JudgeRepository) FindByID(ctx context.Context, id string) (domain.Judge, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Judge{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *JudgeRepository) Create(ctx context.Context, judge domain.Judge) (domain.Judge, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(judge))
	if err != nil {
		return domain.Judge{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *JudgeRepository) Update(ctx context.Context, judge domain.Judge) (domain.Judge, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(judge))
	if err != nil {
		return domain.Judge{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *JudgeRepository) SoftDelete(ctx context.Context, id string) error {
	if err := r.dao.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.SoftDelete -> %w", err)
	}

	return nil
}

func (r *JudgeRepository) daoToDomain(j dao.Judge) domain.Judge {
	return domain.Judge{
		ID:        j.ID,
		Name:      j.Name,
		Specialty: j.Specialty,
		Avatar:    j.Avatar,
		Bio:       j.Bio,
		State:     stateFromDAO(j.State),
		CreatedAt: j.CreatedAt,
	}
}

func (r *JudgeRepository) daoToDomainAll(judges []dao.Judge) []domain.Judge {
	converted := make([]domain.Judge, 0, len(judges))
	for _, j := range judges {
		converted = append(converted, r.daoToDomain(j))
	}

	return converted
}

func (r *JudgeRepository) domainToDAO(j domain.Judge) dao.Judge {
	return dao.Judge{
		ID:        j.ID,
		Name:      j.Name,
		Specialty: j.Specialty,
		Avatar:    j.Avatar,
		Bio:       j.Bio,
		State:     stateToDAO(j.State),
	}
}
