package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/repository/dao"
)

var (
	ErrAdminUsernameExists = dao.ErrAdminUsernameExists
	ErrAdminNotFound       = dao.ErrAdminNotFound
)

type AdminDAO interface {
	Insert(ctx context.Context, admin dao.Admin) (dao.Admin, error)
	FindAll(ctx context.Context) ([]dao.Admin, error)
	FindByID(ctx context.Context, id string) (dao.Admin, error)
	FindByUsername(ctx context.Context, username string) (dao.Admin, error)
	Update(ctx context.Context, admin dao.Admin) (dao.Admin, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type AdminRepository struct {
	dao AdminDAO
}

func NewAdminRepository(dao AdminDAO) *AdminRepository {
	return &AdminRepository{
		dao: dao,
	}
}

func (r *AdminRepository) Create(ctx context.Context, admin domain.Admin) (domain.Admin, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(admin))
	if err != nil {
		return domain.Admin{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *AdminRepository) FindAll(ctx context.Context) ([]domain.Admin, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	converted := make([]domain.Admin, 0, len(found))
	for _, a := range found {
		converted = append(converted, r.daoToDomain(a))
	}

	return converted, nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id string) (domain.Admin, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (domain.Admin, error) {
	found, err := r.dao.FindByUsername(ctx, username)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("r.dao.FindByUsername -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AdminRepository) Update(ctx context.Context, admin domain.Admin) (domain.Admin, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(admin))
	if err != nil {
		return domain.Admin{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	if err := r.dao.UpdateLastLogin(ctx, id, at); err != nil {
		return fmt.Errorf("r.dao.UpdateLastLogin -> %w", err)
	}

	return nil
}

func (r *AdminRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *AdminRepository) daoToDomain(a dao.Admin) domain.Admin {
	return domain.Admin{
		ID:                    a.ID,
		Name:                  a.Name,
		Username:              a.Username,
		Password:              a.Password,
		Email:                 a.Email,
		Role:                  a.Role,
		Status:                a.Status,
		RequirePasswordChange: a.RequirePasswordChange,
		LastLogin:             a.LastLogin,
		CreatedAt:             a.CreatedAt,
	}
}

func (r *AdminRepository) domainToDAO(a domain.Admin) dao.Admin {
	return dao.Admin{
		ID:                    a.ID,
		Name:                  a.Name,
		Username:              a.Username,
		Password:              a.Password,
		Email:                 a.Email,
		Role:                  a.Role,
		Status:                a.Status,
		RequirePasswordChange: a.RequirePasswordChange,
		LastLogin:             a.LastLogin,
	}
}
