package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/repository/dao"
)

var ErrCriterionNotFound = dao.ErrCriterionNotFound

type CriterionDAO interface {
	FindAll(ctx context.Context) ([]dao.Criterion, error)
	FindActive(ctx context.Context) ([]dao.Criterion, error)
	FindByID(ctx context.Context, id string) (dao.Criterion, error)
	Insert(ctx context.Context, criterion dao.Criterion) (dao.Criterion, error)
	Update(ctx context.Context, criterion dao.Criterion) (dao.Criterion, error)
	SoftDelete(ctx context.Context, id string) error
	Reorder(ctx context.Context, orderedIDs []string) error
}

type CriterionRepository struct {
	dao CriterionDAO
}

func NewCriterionRepository(dao CriterionDAO) *CriterionRepository {
	return &CriterionRepository{
		dao: dao,
	}
}

func (r *CriterionRepository) FindAll(ctx context.Context) ([]domain.Criterion, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daoToDomainAll(found), nil
}

func (r *CriterionRepository) FindActive(ctx context.Context) ([]domain.Criterion, error) {
	found, err := r.dao.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindActive -> %w", err)
	}

	return r.daoToDomainAll(found), nil
}

// FindActiveByRound returns active criteria tagged for the given phase.
// The round tags live in a JSON column, so filtering happens here rather
// than in SQL to stay portable across databases.
func (r *CriterionRepository) FindActiveByRound(ctx context.Context, round domain.RoundType) ([]domain.Criterion, error) {
	active, err := r.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Criterion, 0, len(active))
	for _, c := range active {
		if c.AppliesTo(round) {
			filtered = append(filtered, c)
		}
	}

	return filtered, nil
}

func (r *CriterionRepository) FindByID(ctx context.Context, id string) (domain.Criterion, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Criterion{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CriterionRepository) Create(ctx context.Context, criterion domain.Criterion) (domain.Criterion, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(criterion))
	if err != nil {
		return domain.Criterion{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CriterionRepository) Update(ctx context.Context, criterion domain.Criterion) (domain.Criterion, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(criterion))
	if err != nil {
		return domain.Criterion{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *CriterionRepository) SoftDelete(ctx context.Context, id string) error {
	if err := r.dao.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.SoftDelete -> %w", err)
	}

	return nil
}

func (r *CriterionRepository) Reorder(ctx context.Context, orderedIDs []string) error {
	if err := r.dao.Reorder(ctx, orderedIDs); err != nil {
		return fmt.Errorf("r.dao.Reorder -> %w", err)
	}

	return nil
}

func (r *CriterionRepository) daoToDomain(c dao.Criterion) domain.Criterion {
	var rounds []domain.RoundType
	// Legacy rows may hold malformed JSON; treat them as untagged.
	_ = json.Unmarshal([]byte(c.Rounds), &rounds)

	return domain.Criterion{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		MaxPoints:    c.MaxPoints,
		DisplayOrder: c.DisplayOrder,
		State:        stateFromDAO(c.State),
		Rounds:       rounds,
		CreatedAt:    c.CreatedAt,
	}
}

func (r *CriterionRepository) daoToDomainAll(criteria []dao.Criterion) []domain.Criterion {
	converted := make([]domain.Criterion, 0, len(criteria))
	for _, c := range criteria {
		converted = append(converted, r.daoToDomain(c))
	}

	return converted
}

func (r *CriterionRepository) domainToDAO(c domain.Criterion) dao.Criterion {
	rounds, err := json.Marshal(c.Rounds)
	if err != nil {
		rounds = []byte("[]")
	}

	return dao.Criterion{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		MaxPoints:    c.MaxPoints,
		DisplayOrder: c.DisplayOrder,
		State:        stateToDAO(c.State),
		Rounds:       string(rounds),
	}
}
