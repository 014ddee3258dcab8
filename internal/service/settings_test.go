package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
)

func TestSettingsService_UpdatePartial(t *testing.T) {
	repo := &stubSettingsRepo{settings: domain.Settings{CurrentRound: domain.RoundQualification}}
	svc := NewSettingsService(repo)
	ctx := context.Background()

	published := true
	settings, err := svc.Update(ctx, SettingsUpdate{ResultsPublished: &published})
	require.NoError(t, err)

	assert.True(t, settings.ResultsPublished)
	assert.False(t, settings.FinalsEnabled)
	assert.False(t, settings.QualificationLocked)
	assert.Equal(t, domain.RoundQualification, settings.CurrentRound)
}

func TestSettingsService_FinalsToggleDragsQualificationLock(t *testing.T) {
	repo := &stubSettingsRepo{settings: domain.Settings{CurrentRound: domain.RoundQualification}}
	svc := NewSettingsService(repo)
	ctx := context.Background()

	enabled := true
	settings, err := svc.Update(ctx, SettingsUpdate{FinalsEnabled: &enabled})
	require.NoError(t, err)
	assert.True(t, settings.FinalsEnabled)
	assert.True(t, settings.QualificationLocked)

	enabled = false
	settings, err = svc.Update(ctx, SettingsUpdate{FinalsEnabled: &enabled})
	require.NoError(t, err)
	assert.False(t, settings.FinalsEnabled)
	assert.False(t, settings.QualificationLocked)
}

func TestSettingsService_EnableDisableFinals(t *testing.T) {
	repo := &stubSettingsRepo{settings: domain.Settings{CurrentRound: domain.RoundQualification}}
	svc := NewSettingsService(repo)
	ctx := context.Background()

	settings, err := svc.EnableFinals(ctx)
	require.NoError(t, err)
	assert.True(t, settings.FinalsEnabled)
	assert.True(t, settings.QualificationLocked)
	assert.Equal(t, domain.RoundFinals, settings.CurrentRound)

	settings, err = svc.DisableFinals(ctx)
	require.NoError(t, err)
	assert.False(t, settings.FinalsEnabled)
	assert.False(t, settings.QualificationLocked)
	assert.Equal(t, domain.RoundQualification, settings.CurrentRound)
}

func TestSettingsService_UpdateRejectsInvalidRound(t *testing.T) {
	repo := &stubSettingsRepo{settings: domain.Settings{CurrentRound: domain.RoundQualification}}
	svc := NewSettingsService(repo)

	bogus := domain.RoundType("semis")
	_, err := svc.Update(context.Background(), SettingsUpdate{CurrentRound: &bogus})
	assert.ErrorIs(t, err, ErrInvalidRound)

	// The stored snapshot must be untouched after a rejected update.
	assert.Equal(t, domain.RoundQualification, repo.settings.CurrentRound)
}
