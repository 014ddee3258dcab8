package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
)

type stubCompetitionRepo struct {
	info *domain.CompetitionInfo
}

func (s *stubCompetitionRepo) Find(_ context.Context) (domain.CompetitionInfo, error) {
	if s.info == nil {
		return domain.CompetitionInfo{}, ErrCompetitionInfoNotFound
	}

	return *s.info, nil
}

func (s *stubCompetitionRepo) Save(_ context.Context, info domain.CompetitionInfo) error {
	s.info = &info

	return nil
}

type stubPlayerCounter struct {
	active int64
}

func (s *stubPlayerCounter) CountActive(_ context.Context) (int64, error) {
	return s.active, nil
}

type stubRoundLister struct {
	rounds []domain.Round
}

func (s *stubRoundLister) FindAll(_ context.Context) ([]domain.Round, error) {
	return s.rounds, nil
}

func TestCompetitionSummary(t *testing.T) {
	svc := NewCompetitionService(
		&stubCompetitionRepo{info: &domain.CompetitionInfo{
			Name:      "Summer Build Battle",
			Status:    "active",
			Theme:     "Medieval",
			PrizePool: "$500",
			StartDate: "2026-07-01",
			EndDate:   "2026-07-14",
		}},
		&stubPlayerCounter{active: 12},
		&stubRoundLister{rounds: []domain.Round{
			{ID: "r1", Status: "completed", DisplayOrder: 1},
			{ID: "r2", Status: "active", DisplayOrder: 2},
			{ID: "r3", Status: "upcoming", DisplayOrder: 3},
		}},
	)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Summer Build Battle", summary.Name)
	assert.Equal(t, "$500", summary.PrizePool)
	assert.Equal(t, int64(12), summary.TotalPlayers)
	assert.Equal(t, 3, summary.TotalRounds)
	assert.Equal(t, 2, summary.CurrentRound)
}

func TestCompetitionSummaryNoRoundInProgress(t *testing.T) {
	svc := NewCompetitionService(
		&stubCompetitionRepo{info: &domain.CompetitionInfo{Name: "Summer Build Battle"}},
		&stubPlayerCounter{},
		&stubRoundLister{rounds: []domain.Round{
			{ID: "r1", Status: "upcoming", DisplayOrder: 1},
		}},
	)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.CurrentRound)
}

func TestCompetitionSummaryMissingInfo(t *testing.T) {
	svc := NewCompetitionService(&stubCompetitionRepo{}, &stubPlayerCounter{}, &stubRoundLister{})

	_, err := svc.Summary(context.Background())
	assert.ErrorIs(t, err, ErrCompetitionInfoNotFound)
}

func TestCompetitionUpdate(t *testing.T) {
	repo := &stubCompetitionRepo{}
	svc := NewCompetitionService(repo, &stubPlayerCounter{}, &stubRoundLister{})

	saved, err := svc.Update(context.Background(), domain.CompetitionInfo{
		Name:       "Summer Build Battle",
		MaxPlayers: 64,
	})
	require.NoError(t, err)

	assert.Equal(t, "Summer Build Battle", saved.Name)
	assert.Equal(t, 64, saved.MaxPlayers)
	require.NotNil(t, repo.info)
}
