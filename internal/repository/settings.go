package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/repository/dao"
)

const (
	settingResultsPublished    = "resultsPublished"
	settingFinalsEnabled       = "finalsEnabled"
	settingQualificationLocked = "qualificationLocked"
	settingCurrentRound        = "currentRound"
)

type SettingDAO interface {
	FindAll(ctx context.Context) ([]dao.Setting, error)
	Upsert(ctx context.Context, setting dao.Setting) error
	UpsertAll(ctx context.Context, settings []dao.Setting) error
}

type SettingsRepository struct {
	dao SettingDAO
}

func NewSettingsRepository(dao SettingDAO) *SettingsRepository {
	return &SettingsRepository{
		dao: dao,
	}
}

// Load reads every settings row and folds it into the typed snapshot.
// Missing keys fall back to the initial competition state.
func (r *SettingsRepository) Load(ctx context.Context) (domain.Settings, error) {
	rows, err := r.dao.FindAll(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	settings := domain.Settings{
		CurrentRound: domain.RoundQualification,
	}
	for _, row := range rows {
		switch row.Key {
		case settingResultsPublished:
			settings.ResultsPublished = row.Value == "true"
		case settingFinalsEnabled:
			settings.FinalsEnabled = row.Value == "true"
		case settingQualificationLocked:
			settings.QualificationLocked = row.Value == "true"
		case settingCurrentRound:
			if round := domain.RoundType(row.Value); round.Valid() {
				settings.CurrentRound = round
			}
		}
	}

	return settings, nil
}

// Save persists the whole snapshot in one transaction, keeping the coupled
// finalsEnabled/qualificationLocked flags consistent on disk.
func (r *SettingsRepository) Save(ctx context.Context, settings domain.Settings) error {
	rows := []dao.Setting{
		{Key: settingResultsPublished, Value: strconv.FormatBool(settings.ResultsPublished)},
		{Key: settingFinalsEnabled, Value: strconv.FormatBool(settings.FinalsEnabled)},
		{Key: settingQualificationLocked, Value: strconv.FormatBool(settings.QualificationLocked)},
		{Key: settingCurrentRound, Value: string(settings.CurrentRound)},
	}

	if err := r.dao.UpsertAll(ctx, rows); err != nil {
		return fmt.Errorf("r.dao.UpsertAll -> %w", err)
	}

	return nil
}
