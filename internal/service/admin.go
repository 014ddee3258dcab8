package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/repository"
)

var ErrAdminUsernameExists = repository.ErrAdminUsernameExists

type AdminRepository interface {
	Create(ctx context.Context, admin domain.Admin) (domain.Admin, error)
	FindAll(ctx context.Context) ([]domain.Admin, error)
	FindByID(ctx context.Context, id string) (domain.Admin, error)
	Update(ctx context.Context, admin domain.Admin) (domain.Admin, error)
	Delete(ctx context.Context, id string) error
}

type AdminService struct {
	repo AdminRepository
}

func NewAdminService(repo AdminRepository) *AdminService {
	return &AdminService{
		repo: repo,
	}
}

func (s *AdminService) List(ctx context.Context) ([]domain.Admin, error) {
	admins, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return admins, nil
}

// Create hashes the initial password and forces a change on first login.
func (s *AdminService) Create(ctx context.Context, admin domain.Admin, password string) (domain.Admin, error) {
	hashed, err := hashPassword(password)
	if err != nil {
		return domain.Admin{}, err
	}

	admin.ID = uuid.NewString()
	admin.Password = hashed
	admin.RequirePasswordChange = true
	if admin.Role == "" {
		admin.Role = domain.AdminRoleNormal
	}
	if admin.Status == "" {
		admin.Status = "active"
	}

	created, err := s.repo.Create(ctx, admin)
	if err != nil {
		if errors.Is(err, repository.ErrAdminUsernameExists) {
			return domain.Admin{}, ErrAdminUsernameExists
		}

		return domain.Admin{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AdminService) Update(ctx context.Context, admin domain.Admin) (domain.Admin, error) {
	existing, err := s.repo.FindByID(ctx, admin.ID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domain.Admin{}, ErrAdminNotFound
		}

		return domain.Admin{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	// Password rotations go through AuthService.ChangePassword.
	admin.Password = existing.Password
	admin.LastLogin = existing.LastLogin

	updated, err := s.repo.Update(ctx, admin)
	if err != nil {
		return domain.Admin{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *AdminService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
