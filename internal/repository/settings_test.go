package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/repository/dao"
)

type fakeSettingDAO struct {
	rows map[string]string
}

func newFakeSettingDAO() *fakeSettingDAO {
	return &fakeSettingDAO{rows: make(map[string]string)}
}

func (d *fakeSettingDAO) FindAll(_ context.Context) ([]dao.Setting, error) {
	settings := make([]dao.Setting, 0, len(d.rows))
	for k, v := range d.rows {
		settings = append(settings, dao.Setting{Key: k, Value: v})
	}

	return settings, nil
}

func (d *fakeSettingDAO) Upsert(_ context.Context, setting dao.Setting) error {
	d.rows[setting.Key] = setting.Value

	return nil
}

func (d *fakeSettingDAO) UpsertAll(_ context.Context, settings []dao.Setting) error {
	for _, s := range settings {
		d.rows[s.Key] = s.Value
	}

	return nil
}

func TestSettingsRepository_LoadDefaults(t *testing.T) {
	repo := NewSettingsRepository(newFakeSettingDAO())

	settings, err := repo.Load(context.Background())
	require.NoError(t, err)

	// An empty settings table is a fresh competition.
	assert.False(t, settings.ResultsPublished)
	assert.False(t, settings.FinalsEnabled)
	assert.False(t, settings.QualificationLocked)
	assert.Equal(t, domain.RoundQualification, settings.CurrentRound)
}

func TestSettingsRepository_SaveLoadRoundTrip(t *testing.T) {
	repo := NewSettingsRepository(newFakeSettingDAO())
	ctx := context.Background()

	saved := domain.Settings{
		ResultsPublished:    true,
		FinalsEnabled:       true,
		QualificationLocked: true,
		CurrentRound:        domain.RoundFinals,
	}
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestSettingsRepository_LoadIgnoresBogusRound(t *testing.T) {
	fake := newFakeSettingDAO()
	fake.rows["currentRound"] = "semis"
	repo := NewSettingsRepository(fake)

	settings, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.RoundQualification, settings.CurrentRound)
}
