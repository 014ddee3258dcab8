package service

import (
	"context"
	"fmt"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
)

type SettingsRepository interface {
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
}

// SettingsUpdate carries partial updates; nil fields stay untouched.
type SettingsUpdate struct {
	ResultsPublished    *bool
	FinalsEnabled       *bool
	QualificationLocked *bool
	CurrentRound        *domain.RoundType
}

type SettingsService struct {
	repo SettingsRepository
}

func NewSettingsService(repo SettingsRepository) *SettingsService {
	return &SettingsService{
		repo: repo,
	}
}

func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	settings, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("s.repo.Load -> %w", err)
	}

	return settings, nil
}

// Update applies a partial update and persists the whole snapshot in one
// write. Toggling finalsEnabled always drags qualificationLocked with it:
// the two flags are one admin action, and a request that set them apart
// would leave finals scoring open against an unlocked qualification round.
func (s *SettingsService) Update(ctx context.Context, update SettingsUpdate) (domain.Settings, error) {
	settings, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("s.repo.Load -> %w", err)
	}

	if update.ResultsPublished != nil {
		settings.ResultsPublished = *update.ResultsPublished
	}
	if update.QualificationLocked != nil {
		settings.QualificationLocked = *update.QualificationLocked
	}
	if update.FinalsEnabled != nil {
		settings.FinalsEnabled = *update.FinalsEnabled
		settings.QualificationLocked = *update.FinalsEnabled
	}
	if update.CurrentRound != nil {
		if !update.CurrentRound.Valid() {
			return domain.Settings{}, ErrInvalidRound
		}
		settings.CurrentRound = *update.CurrentRound
	}

	if err = s.repo.Save(ctx, settings); err != nil {
		return domain.Settings{}, fmt.Errorf("s.repo.Save -> %w", err)
	}

	return settings, nil
}

// EnableFinals locks qualification and opens finals scoring as one action.
func (s *SettingsService) EnableFinals(ctx context.Context) (domain.Settings, error) {
	enabled := true
	round := domain.RoundFinals

	return s.Update(ctx, SettingsUpdate{FinalsEnabled: &enabled, CurrentRound: &round})
}

// DisableFinals is the symmetric inverse: finals scoring closes and
// qualification reopens.
func (s *SettingsService) DisableFinals(ctx context.Context) (domain.Settings, error) {
	enabled := false
	round := domain.RoundQualification

	return s.Update(ctx, SettingsUpdate{FinalsEnabled: &enabled, CurrentRound: &round})
}
