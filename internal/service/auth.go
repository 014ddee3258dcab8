package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/repository"
)

var (
	ErrAdminNotFound = repository.ErrAdminNotFound
	ErrWrongPassword = errors.New("wrong password")
	ErrAdminInactive = errors.New("admin account is inactive")
)

type AuthAdminRepository interface {
	FindByID(ctx context.Context, id string) (domain.Admin, error)
	FindByUsername(ctx context.Context, username string) (domain.Admin, error)
	Update(ctx context.Context, admin domain.Admin) (domain.Admin, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

type AuthService struct {
	repo AuthAdminRepository
}

func NewAuthService(repo AuthAdminRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

// Login verifies credentials, rejects inactive accounts and records the
// login time. The returned admin carries the requirePasswordChange flag so
// the UI can force a rotation on first login.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.Admin, error) {
	admin, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domain.Admin{}, ErrAdminNotFound
		}

		return domain.Admin{}, fmt.Errorf("s.repo.FindByUsername -> %w", err)
	}

	if admin.Status != "active" {
		return domain.Admin{}, ErrAdminInactive
	}

	if err = bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return domain.Admin{}, ErrWrongPassword
	}

	now := time.Now().UTC()
	if err = s.repo.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		return domain.Admin{}, fmt.Errorf("s.repo.UpdateLastLogin -> %w", err)
	}
	admin.LastLogin = &now

	return admin, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, adminID, currentPassword, newPassword string) error {
	admin, err := s.repo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return ErrAdminNotFound
		}

		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(currentPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	admin.Password = hashed
	admin.RequirePasswordChange = false
	if _, err = s.repo.Update(ctx, admin); err != nil {
		return fmt.Errorf("s.repo.Update -> %w", err)
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}
