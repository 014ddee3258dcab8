package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
)

// PublicResultsLimit caps the public leaderboard, matching the
// top-10 display on the results page.
const PublicResultsLimit = 10

var ErrResultsNotPublished = errors.New("results are not published")

type ResultsScoreRepository interface {
	FindByRound(ctx context.Context, round domain.RoundType) ([]domain.Score, error)
}

type ResultsPlayerRepository interface {
	FindActive(ctx context.Context, limit, offset int) ([]domain.Player, error)
}

type ResultsSettingsRepository interface {
	Load(ctx context.Context) (domain.Settings, error)
}

// ResultsService derives ranked standings from raw score rows on every
// call. Nothing here is persisted or cached.
type ResultsService struct {
	scores   ResultsScoreRepository
	players  ResultsPlayerRepository
	settings ResultsSettingsRepository
}

func NewResultsService(scores ResultsScoreRepository, players ResultsPlayerRepository, settings ResultsSettingsRepository) *ResultsService {
	return &ResultsService{
		scores:   scores,
		players:  players,
		settings: settings,
	}
}

// PublicResults returns the published finals leaderboard. Until an admin
// flips resultsPublished the public endpoint gets ErrResultsNotPublished,
// regardless of what has been scored.
func (s *ResultsService) PublicResults(ctx context.Context) ([]domain.PlayerResult, error) {
	settings, err := s.settings.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.settings.Load -> %w", err)
	}

	if !settings.ResultsPublished {
		return nil, ErrResultsNotPublished
	}

	return s.RankRound(ctx, domain.RoundFinals, PublicResultsLimit)
}

// RankRound ranks every active player that has score rows in the round.
// Totals sort descending with player id as the deterministic tie-break,
// so equal totals hold distinct adjacent ranks. A positive topN truncates.
func (s *ResultsService) RankRound(ctx context.Context, round domain.RoundType, topN int) ([]domain.PlayerResult, error) {
	if !round.Valid() {
		return nil, ErrInvalidRound
	}

	scores, err := s.scores.FindByRound(ctx, round)
	if err != nil {
		return nil, fmt.Errorf("s.scores.FindByRound -> %w", err)
	}

	active, err := s.players.FindActive(ctx, -1, 0)
	if err != nil {
		return nil, fmt.Errorf("s.players.FindActive -> %w", err)
	}

	usernames := make(map[string]string, len(active))
	for _, p := range active {
		usernames[p.ID] = p.Username
	}

	// Only active players with at least one row are ranked; "no rows" is
	// indistinguishable from zero at this layer and is excluded on purpose.
	totals := make(map[string]int)
	judgeTotals := make(map[string]map[string]int)
	for _, score := range scores {
		if _, ok := usernames[score.PlayerID]; !ok {
			continue
		}

		totals[score.PlayerID] += score.Points

		byJudge, ok := judgeTotals[score.PlayerID]
		if !ok {
			byJudge = make(map[string]int)
			judgeTotals[score.PlayerID] = byJudge
		}
		byJudge[score.JudgeID] += score.Points
	}

	results := make([]domain.PlayerResult, 0, len(totals))
	for playerID, total := range totals {
		results = append(results, domain.PlayerResult{
			PlayerID:   playerID,
			Username:   usernames[playerID],
			TotalScore: total,
			Rounds: []domain.RoundResult{
				{
					Round:      round,
					TotalScore: total,
					Scores:     judgeTotals[playerID],
				},
			},
		})
	}

	return domain.Rank(results, topN), nil
}
