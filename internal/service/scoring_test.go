package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
)

type entryKey struct {
	playerID    string
	judgeID     string
	criterionID string
	round       domain.RoundType
}

type stubScoreRepo struct {
	entries map[entryKey]domain.Score
}

func newStubScoreRepo() *stubScoreRepo {
	return &stubScoreRepo{entries: make(map[entryKey]domain.Score)}
}

func (r *stubScoreRepo) FindByRound(_ context.Context, round domain.RoundType) ([]domain.Score, error) {
	var scores []domain.Score
	for k, s := range r.entries {
		if k.round == round {
			scores = append(scores, s)
		}
	}

	return scores, nil
}

func (r *stubScoreRepo) FindByPlayerAndRound(_ context.Context, playerID string, round domain.RoundType) ([]domain.Score, error) {
	var scores []domain.Score
	for k, s := range r.entries {
		if k.playerID == playerID && k.round == round {
			scores = append(scores, s)
		}
	}

	return scores, nil
}

func (r *stubScoreRepo) Upsert(_ context.Context, score domain.Score) (domain.Score, error) {
	key := entryKey{score.PlayerID, score.JudgeID, score.CriterionID, score.Round}
	r.entries[key] = score

	return score, nil
}

type stubCriterionRepo struct {
	criteria map[string]domain.Criterion
}

func (r *stubCriterionRepo) FindByID(_ context.Context, id string) (domain.Criterion, error) {
	criterion, ok := r.criteria[id]
	if !ok {
		return domain.Criterion{}, ErrCriterionNotFound
	}

	return criterion, nil
}

type stubPlayerRepo struct {
	players map[string]domain.Player
}

func (r *stubPlayerRepo) FindByID(_ context.Context, id string) (domain.Player, error) {
	player, ok := r.players[id]
	if !ok {
		return domain.Player{}, ErrPlayerNotFound
	}

	return player, nil
}

type stubJudgeRepo struct {
	judges map[string]domain.Judge
}

func (r *stubJudgeRepo) FindByID(_ context.Context, id string) (domain.Judge, error) {
	judge, ok := r.judges[id]
	if !ok {
		return domain.Judge{}, ErrJudgeNotFound
	}

	return judge, nil
}

type stubSettingsRepo struct {
	settings domain.Settings
}

func (r *stubSettingsRepo) Load(_ context.Context) (domain.Settings, error) {
	return r.settings, nil
}

func (r *stubSettingsRepo) Save(_ context.Context, settings domain.Settings) error {
	r.settings = settings

	return nil
}

type scoringFixture struct {
	scores   *stubScoreRepo
	settings *stubSettingsRepo
	svc      *ScoringService
}

func newScoringFixture() *scoringFixture {
	scores := newStubScoreRepo()
	settings := &stubSettingsRepo{settings: domain.Settings{CurrentRound: domain.RoundQualification}}

	svc := NewScoringService(
		scores,
		&stubCriterionRepo{criteria: map[string]domain.Criterion{
			"creativity": {ID: "creativity", MaxPoints: 20, State: domain.StateActive,
				Rounds: []domain.RoundType{domain.RoundQualification, domain.RoundFinals}},
			"finals-polish": {ID: "finals-polish", MaxPoints: 10, State: domain.StateActive,
				Rounds: []domain.RoundType{domain.RoundFinals}},
			"retired": {ID: "retired", MaxPoints: 20, State: domain.StateDeleted},
		}},
		&stubPlayerRepo{players: map[string]domain.Player{
			"p1": {ID: "p1", Username: "steve"},
			"p2": {ID: "p2", Username: "alex"},
		}},
		&stubJudgeRepo{judges: map[string]domain.Judge{
			"j1": {ID: "j1", Name: "Judge One"},
			"j2": {ID: "j2", Name: "Judge Two"},
		}},
		settings,
	)

	return &scoringFixture{scores: scores, settings: settings, svc: svc}
}

func TestScoringService_SubmitScore(t *testing.T) {
	tests := []struct {
		name    string
		entry   ScoreEntry
		wantErr error
	}{
		{
			name:  "zero points is a valid entry",
			entry: ScoreEntry{PlayerID: "p1", JudgeID: "j1", CriterionID: "creativity", Points: 0},
		},
		{
			name:  "max points is a valid entry",
			entry: ScoreEntry{PlayerID: "p1", JudgeID: "j1", CriterionID: "creativity", Points: 20},
		},
		{
			name:    "negative points rejected",
			entry:   ScoreEntry{PlayerID: "p1", JudgeID: "j1", CriterionID: "creativity", Points: -1},
			wantErr: ErrPointsOutOfRange,
		},
		{
			name:    "points above the cap rejected",
			entry:   ScoreEntry{PlayerID: "p1", JudgeID: "j1", CriterionID: "creativity", Points: 21},
			wantErr: ErrPointsOutOfRange,
		},
		{
			name:    "unknown criterion rejected",
			entry:   ScoreEntry{PlayerID: "p1", JudgeID: "j1", CriterionID: "nope", Points: 5},
			wantErr: ErrCriterionNotFound,
		},
		{
			name:    "retired criterion rejected",
			entry:   ScoreEntry{PlayerID: "p1", JudgeID: "j1", CriterionID: "retired", Points: 5},
			wantErr: ErrCriterionNotFound,
		},
		{
			name:    "criterion not tagged for the round rejected",
			entry:   ScoreEntry{PlayerID: "p1", JudgeID: "j1", CriterionID: "finals-polish", Points: 5},
			wantErr: ErrCriterionNotFound,
		},
		{
			name:    "unknown player rejected",
			entry:   ScoreEntry{PlayerID: "ghost", JudgeID: "j1", CriterionID: "creativity", Points: 5},
			wantErr: ErrPlayerNotFound,
		},
		{
			name:    "unknown judge rejected",
			entry:   ScoreEntry{PlayerID: "p1", JudgeID: "ghost", CriterionID: "creativity", Points: 5},
			wantErr: ErrJudgeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newScoringFixture()

			_, err := f.svc.SubmitScore(context.Background(), domain.RoundQualification, tt.entry, "admin-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestScoringService_ResubmitOverwrites(t *testing.T) {
	f := newScoringFixture()
	ctx := context.Background()
	entry := ScoreEntry{PlayerID: "p1", JudgeID: "j1", CriterionID: "creativity", Points: 15}

	_, err := f.svc.SubmitScore(ctx, domain.RoundQualification, entry, "admin-1")
	require.NoError(t, err)

	entry.Points = 18
	_, err = f.svc.SubmitScore(ctx, domain.RoundQualification, entry, "admin-2")
	require.NoError(t, err)

	// The resubmission replaces the cell; totals must not accumulate.
	total, err := f.svc.ComputeGrandTotal(ctx, "p1", domain.RoundQualification)
	require.NoError(t, err)
	assert.Equal(t, 18, total)
}

func TestScoringService_RoundLocks(t *testing.T) {
	f := newScoringFixture()
	ctx := context.Background()
	entry := ScoreEntry{PlayerID: "p1", JudgeID: "j1", CriterionID: "creativity", Points: 10}

	// Finals are locked until enabled.
	_, err := f.svc.SubmitScore(ctx, domain.RoundFinals, entry, "admin-1")
	assert.ErrorIs(t, err, ErrRoundLocked)

	// Entering the finals phase flips both locks.
	f.settings.settings = domain.Settings{
		FinalsEnabled:       true,
		QualificationLocked: true,
		CurrentRound:        domain.RoundFinals,
	}

	_, err = f.svc.SubmitScore(ctx, domain.RoundQualification, entry, "admin-1")
	assert.ErrorIs(t, err, ErrRoundLocked)

	_, err = f.svc.SubmitScore(ctx, domain.RoundFinals, entry, "admin-1")
	assert.NoError(t, err)

	_, err = f.svc.SubmitScore(ctx, domain.RoundType("semis"), entry, "admin-1")
	assert.ErrorIs(t, err, ErrInvalidRound)
}

func TestScoringService_SubmitScoresRejectsWholeBatch(t *testing.T) {
	f := newScoringFixture()
	ctx := context.Background()

	entries := []ScoreEntry{
		{PlayerID: "p1", JudgeID: "j1", CriterionID: "creativity", Points: 10},
		{PlayerID: "p2", JudgeID: "j1", CriterionID: "creativity", Points: 99},
	}

	err := f.svc.SubmitScores(ctx, domain.RoundQualification, entries, "admin-1")
	assert.ErrorIs(t, err, ErrPointsOutOfRange)

	// The valid first entry must not have been written.
	assert.Empty(t, f.scores.entries)
}

func TestScoringService_SavePlayerSheetSkipsNilCells(t *testing.T) {
	f := newScoringFixture()
	ctx := context.Background()

	ten := 10
	five := 5
	sheet := map[string]map[string]*int{
		"j1": {"creativity": &ten},
		"j2": {"creativity": nil, "retired": nil},
	}
	err := f.svc.SavePlayerSheet(ctx, domain.RoundQualification, "p1", sheet, "admin-1")
	require.NoError(t, err)

	got, err := f.svc.GetRoundSheet(ctx, domain.RoundQualification)
	require.NoError(t, err)
	assert.Equal(t, 10, got["p1"]["j1"]["creativity"])
	assert.NotContains(t, got["p1"], "j2")

	// A later partial save only touches the cells it names.
	err = f.svc.SavePlayerSheet(ctx, domain.RoundQualification, "p1", map[string]map[string]*int{
		"j2": {"creativity": &five},
	}, "admin-1")
	require.NoError(t, err)

	got, err = f.svc.GetRoundSheet(ctx, domain.RoundQualification)
	require.NoError(t, err)
	assert.Equal(t, 10, got["p1"]["j1"]["creativity"])
	assert.Equal(t, 5, got["p1"]["j2"]["creativity"])
}

func TestScoringService_ComputeTotals(t *testing.T) {
	f := newScoringFixture()
	ctx := context.Background()

	for _, e := range []ScoreEntry{
		{PlayerID: "p1", JudgeID: "j1", CriterionID: "creativity", Points: 12},
		{PlayerID: "p1", JudgeID: "j2", CriterionID: "creativity", Points: 14},
	} {
		_, err := f.svc.SubmitScore(ctx, domain.RoundQualification, e, "admin-1")
		require.NoError(t, err)
	}

	judgeTotal, err := f.svc.ComputeJudgeTotal(ctx, "p1", "j1", domain.RoundQualification)
	require.NoError(t, err)
	assert.Equal(t, 12, judgeTotal)

	grand, err := f.svc.ComputeGrandTotal(ctx, "p1", domain.RoundQualification)
	require.NoError(t, err)
	assert.Equal(t, 26, grand)

	// No rows means zero, not an error.
	grand, err = f.svc.ComputeGrandTotal(ctx, "p2", domain.RoundQualification)
	require.NoError(t, err)
	assert.Equal(t, 0, grand)
}
